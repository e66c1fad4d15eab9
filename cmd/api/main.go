package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/prevlav/cumplimiento-api/internal/application/auth"
	"github.com/prevlav/cumplimiento-api/internal/application/donativos"
	"github.com/prevlav/cumplimiento-api/internal/application/usecase"
	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
	"github.com/prevlav/cumplimiento-api/internal/infrastructure/memoria"
	infrapdf "github.com/prevlav/cumplimiento-api/internal/infrastructure/pdf"
	"github.com/prevlav/cumplimiento-api/internal/infrastructure/postgres"
	"github.com/prevlav/cumplimiento-api/internal/infrastructure/sat"
	httpRouter "github.com/prevlav/cumplimiento-api/internal/interfaces/http"
	"github.com/prevlav/cumplimiento-api/pkg/config"
	"github.com/prevlav/cumplimiento-api/pkg/logger"
)

// repos agrupa los puertos de persistencia, sea cual sea el driver.
type repos struct {
	donor        repository.DonorRepository
	bankAccount  repository.BankAccountRepository
	organization repository.OrganizationRepository
	donation     repository.DonationRepository
	tracking     repository.TrackingRepository
	announcement repository.AnnouncementRepository
	worker       repository.WorkerRepository
	txRunner     donativos.TxRunner
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var r repos
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		r = repos{
			donor:        postgres.NewDonorRepository(pool),
			bankAccount:  postgres.NewBankAccountRepository(pool),
			organization: postgres.NewOrganizationRepository(pool),
			donation:     postgres.NewDonationRepository(pool),
			tracking:     postgres.NewTrackingRepository(pool),
			announcement: postgres.NewAnnouncementRepository(pool),
			worker:       postgres.NewWorkerRepository(pool),
			txRunner:     postgres.NewTxRunner(pool),
		}
	default: // memory
		store := memoria.NewStore()
		donationRepo := memoria.NewDonationRepo(store)
		trackingRepo := memoria.NewTrackingRepo(store)
		r = repos{
			donor:        memoria.NewDonorRepo(store),
			bankAccount:  memoria.NewBankAccountRepo(store),
			organization: memoria.NewOrganizationRepo(store),
			donation:     donationRepo,
			tracking:     trackingRepo,
			announcement: memoria.NewAnnouncementRepo(store),
			worker:       memoria.NewWorkerRepo(store),
			txRunner:     memoria.NewTxRunner(donationRepo, trackingRepo),
		}
	}

	pldCfg := donativos.PLDConfig{
		LimiteIdentificacion: cfg.PLD.LimiteIdentificacion(),
		LimiteAviso:          cfg.PLD.LimiteAviso(),
		PeriodoMeses:         cfg.PLD.PeriodoMeses,
	}
	log.Info().
		Str("limite_identificacion", pldCfg.LimiteIdentificacion.StringFixed(2)).
		Str("limite_aviso", pldCfg.LimiteAviso.StringFixed(2)).
		Int("periodo_meses", pldCfg.PeriodoMeses).
		Msg("umbrales PLD")

	authUC := auth.NewAuthUseCase(r.worker, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	donorUC := usecase.NewDonorUseCase(r.donor)
	bankAccountUC := usecase.NewBankAccountUseCase(r.bankAccount, r.donor)
	organizationUC := usecase.NewOrganizationUseCase(r.organization)
	announcementUC := usecase.NewAnnouncementUseCase(r.announcement, r.organization)
	dashboardUC := usecase.NewDashboardUseCase(r.donation, r.donor, r.organization, r.tracking)

	registerUC := donativos.NewRegisterDonationUseCase(r.txRunner, r.donor, r.bankAccount, pldCfg, log)
	donationQuery := donativos.NewDonationQueryUseCase(r.donation)
	trackingQuery := donativos.NewTrackingQueryUseCase(r.tracking)
	reciboUC := donativos.NewReciboUseCase(r.donation, infrapdf.NewReciboGenerator(cfg.App.Name))
	avisoUC := donativos.NewAvisoSATUseCase(r.tracking, sat.NewAvisoBuilder(cfg.PLD.RFCObligado))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Portal de Cumplimiento OSC",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		DonorUC:        donorUC,
		BankAccountUC:  bankAccountUC,
		OrganizationUC: organizationUC,
		AnnouncementUC: announcementUC,
		DashboardUC:    dashboardUC,
		RegisterUC:     registerUC,
		DonationQuery:  donationQuery,
		TrackingQuery:  trackingQuery,
		ReciboUC:       reciboUC,
		AvisoUC:        avisoUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
