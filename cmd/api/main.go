package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/garments-tracker-api/internal/application/analytics"
	"github.com/jhoicas/garments-tracker-api/internal/application/auth"
	"github.com/jhoicas/garments-tracker-api/internal/application/order"
	"github.com/jhoicas/garments-tracker-api/internal/application/payment"
	"github.com/jhoicas/garments-tracker-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/garments-tracker-api/internal/infrastructure/pdf"
	"github.com/jhoicas/garments-tracker-api/internal/infrastructure/postgres"
	infrastripe "github.com/jhoicas/garments-tracker-api/internal/infrastructure/stripe"
	httpRouter "github.com/jhoicas/garments-tracker-api/internal/interfaces/http"
	"github.com/jhoicas/garments-tracker-api/pkg/config"
	"github.com/jhoicas/garments-tracker-api/pkg/logger"
)

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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	stripeClient := infrastripe.NewClient(cfg.Stripe.SecretKey)
	webhookVerifier := infrastripe.NewWebhookVerifier(cfg.Stripe.WebhookSecret)
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()

	authUC := auth.NewUseCase(auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	orderUC := order.NewUseCase(orderRepo, receiptGenerator)
	paymentUC := payment.NewUseCase(stripeClient, webhookVerifier, orderRepo)
	statsUC := analytics.NewStatsUseCase(statsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// La cookie de credencial viaja cross-site, así que CORS necesita
	// credenciales y un origen explícito (el wildcard no las permite).
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.AllowOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		ProductUC:     productUC,
		OrderUC:       orderUC,
		PaymentUC:     paymentUC,
		StatsUC:       statsUC,
		JWTSecret:     cfg.JWT.Secret,
		SecureCookies: !cfg.App.IsDevelopment(),
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
