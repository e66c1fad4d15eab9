package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/prevlav/cumplimiento-api/internal/application/dto"
	"github.com/prevlav/cumplimiento-api/internal/domain"
	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
	"github.com/prevlav/cumplimiento-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: alta de trabajadores y login.
type AuthUseCase struct {
	workerRepo repository.WorkerRepository
	jwtCfg     JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(workerRepo repository.WorkerRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{workerRepo: workerRepo, jwtCfg: jwtCfg}
}

// RegisterWorker crea un trabajador: hashea el password con bcrypt y persiste.
// El rol se almacena tal cual llega; Role() lo normaliza al leer, de modo que
// un rol desconocido opera como visualizador (mínimo privilegio).
func (uc *AuthUseCase) RegisterWorker(in dto.RegisterWorkerRequest) (*dto.WorkerResponse, error) {
	existing, _ := uc.workerRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolVisualizador
	}
	worker := &entity.Worker{
		ID:        uuid.New().String(),
		Rol:       rol,
		Email:     in.Email,
		CreatedAt: time.Now(),
	}
	if err := uc.workerRepo.Create(worker, string(hash)); err != nil {
		return nil, err
	}
	return ToWorkerResponse(worker), nil
}

// Login verifica email/password, genera JWT con el rol normalizado y retorna token + trabajador.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	worker, err := uc.workerRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, domain.ErrWorkerNotFound
	}
	hash, err := uc.workerRepo.GetPasswordHash(worker.ID)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, worker.ID, worker.Role(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:      token,
		Trabajador: *ToWorkerResponse(worker),
	}, nil
}

// GetWorker devuelve la proyección del trabajador autenticado.
func (uc *AuthUseCase) GetWorker(id string) (*dto.WorkerResponse, error) {
	worker, err := uc.workerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, nil
	}
	return ToWorkerResponse(worker), nil
}

// ToWorkerResponse proyecta un trabajador con su rol normalizado y el resumen
// de permisos que consume el portal.
func ToWorkerResponse(w *entity.Worker) *dto.WorkerResponse {
	if w == nil {
		return nil
	}
	return &dto.WorkerResponse{
		ID:    w.ID,
		Email: w.Email,
		Rol:   w.Role(),
		Permissions: dto.WorkerPermissions{
			ManageDonations: w.CanManageDonations(),
			ViewReports:     w.CanViewReports(),
		},
	}
}
