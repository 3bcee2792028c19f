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

	"github.com/correduria/backoffice/internal/application/auth"
	"github.com/correduria/backoffice/internal/application/scope"
	"github.com/correduria/backoffice/internal/application/usecase"
	"github.com/correduria/backoffice/internal/infrastructure/postgres"
	httpRouter "github.com/correduria/backoffice/internal/interfaces/http"
	"github.com/correduria/backoffice/pkg/config"
	"github.com/correduria/backoffice/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	insuranceRepo := postgres.NewInsuranceRepository(pool)
	issueRepo := postgres.NewIssueRepository(pool)
	tokenRepo := postgres.NewTokenRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := scope.NewResolver(userRepo, employeeRepo, customerRepo, insuranceRepo, issueRepo)

	authUC := auth.NewUsecase(userRepo, tokenRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpDays)
	userUC := usecase.NewUserUsecase(userRepo, employeeRepo, customerRepo, insuranceRepo, resolver, txRunner)
	companyUC := usecase.NewCompanyUsecase(companyRepo, employeeRepo, resolver)
	employeeUC := usecase.NewEmployeeUsecase(employeeRepo, userRepo, insuranceRepo, resolver)
	customerUC := usecase.NewCustomerUsecase(customerRepo, userRepo, insuranceRepo, resolver)
	insuranceUC := usecase.NewInsuranceUsecase(insuranceRepo, customerRepo, employeeRepo, userRepo, issueRepo, resolver)
	issueUC := usecase.NewIssueUsecase(issueRepo, insuranceRepo, customerRepo, employeeRepo, userRepo, resolver)

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
		Title:    "Correduría API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		CompanyUC:   companyUC,
		EmployeeUC:  employeeUC,
		CustomerUC:  customerUC,
		InsuranceUC: insuranceUC,
		IssueUC:     issueUC,
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
