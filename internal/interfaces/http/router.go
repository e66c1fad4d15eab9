package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prevlav/cumplimiento-api/internal/application/auth"
	"github.com/prevlav/cumplimiento-api/internal/application/donativos"
	"github.com/prevlav/cumplimiento-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	DonorUC        *usecase.DonorUseCase
	BankAccountUC  *usecase.BankAccountUseCase
	OrganizationUC *usecase.OrganizationUseCase
	AnnouncementUC *usecase.AnnouncementUseCase
	DashboardUC    *usecase.DashboardUseCase
	RegisterUC     *donativos.RegisterDonationUseCase
	DonationQuery  *donativos.DonationQueryUseCase
	TrackingQuery  *donativos.TrackingQueryUseCase
	ReciboUC       *donativos.ReciboUseCase
	AvisoUC        *donativos.AvisoSATUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Get)

	// Donantes (protegido)
	donantes := protected.Group("/donantes")
	donorHandler := NewDonorHandler(deps.DonorUC, deps.BankAccountUC, deps.DonationQuery, deps.TrackingQuery)
	donantes.Post("/", donorHandler.Create)
	donantes.Get("/", donorHandler.List)
	donantes.Get("/:id", donorHandler.GetByID)
	donantes.Get("/:id/cuentas", donorHandler.ListCuentas)
	donantes.Get("/:id/donativos", donorHandler.ListDonativos)
	donantes.Get("/:id/seguimientos", donorHandler.ListSeguimientos)

	// Cuentas receptoras (protegido; respuestas siempre enmascaradas)
	cuentas := protected.Group("/cuentas")
	cuentaHandler := NewBankAccountHandler(deps.BankAccountUC)
	cuentas.Post("/", cuentaHandler.Create)
	cuentas.Get("/", cuentaHandler.List)
	cuentas.Get("/:id", cuentaHandler.GetByID)

	// OSCs (protegido)
	organizaciones := protected.Group("/organizaciones")
	orgHandler := NewOrganizationHandler(deps.OrganizationUC)
	organizaciones.Post("/", orgHandler.Create)
	organizaciones.Get("/", orgHandler.List)
	organizaciones.Get("/:id", orgHandler.GetByID)
	organizaciones.Get("/:id/contacto", orgHandler.GetContacto)

	// Donativos (protegido; el registro exige el permiso del rol)
	donativosGroup := protected.Group("/donativos")
	donationHandler := NewDonationHandler(deps.RegisterUC, deps.DonationQuery, deps.ReciboUC)
	donativosGroup.Post("/", RequirePermission("create:donations"), donationHandler.Create)
	donativosGroup.Get("/", donationHandler.List)
	donativosGroup.Get("/:id", donationHandler.GetByID)
	donativosGroup.Get("/:id/recibo", donationHandler.Recibo)

	// Seguimientos PLD (protegido; el aviso XML exige permiso de avisos)
	seguimientos := protected.Group("/seguimientos")
	trackingHandler := NewTrackingHandler(deps.TrackingQuery, deps.AvisoUC)
	seguimientos.Get("/", trackingHandler.List)
	seguimientos.Get("/:id", trackingHandler.GetByID)
	seguimientos.Get("/:id/aviso", RequirePermission("create:avisos"), trackingHandler.Aviso)

	// Avisos / comunicados (protegido; crear exige permiso de avisos)
	avisos := protected.Group("/avisos")
	announcementHandler := NewAnnouncementHandler(deps.AnnouncementUC)
	avisos.Post("/", RequirePermission("create:avisos"), announcementHandler.Create)
	avisos.Get("/", announcementHandler.List)
	avisos.Get("/:id", announcementHandler.GetByID)
	avisos.Patch("/:id/estado", announcementHandler.UpdateEstado)
}
