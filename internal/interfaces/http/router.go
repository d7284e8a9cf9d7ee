package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/garments-tracker-api/internal/application/analytics"
	"github.com/jhoicas/garments-tracker-api/internal/application/auth"
	"github.com/jhoicas/garments-tracker-api/internal/application/order"
	"github.com/jhoicas/garments-tracker-api/internal/application/payment"
	"github.com/jhoicas/garments-tracker-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	UserUC        *usecase.UserUseCase
	ProductUC     *usecase.ProductUseCase
	OrderUC       *order.UseCase
	PaymentUC     *payment.UseCase
	StatsUC       *analytics.StatsUseCase
	JWTSecret     string
	SecureCookies bool
}

// Router registra las rutas de la API. Las rutas cuelgan de la raíz, sin
// prefijo de versión: el contrato con los clientes existentes manda.
func Router(app *fiber.App, deps RouterDeps) {
	protected := AuthMiddleware(deps.JWTSecret)

	// Credenciales (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.SecureCookies)
	app.Post("/jwt", authHandler.IssueToken)
	app.Post("/logout", authHandler.Logout)

	// Cuentas
	userHandler := NewUserHandler(deps.UserUC)
	app.Post("/users", userHandler.Register)
	app.Get("/users", userHandler.GetByEmail)
	app.Get("/users/all", protected, userHandler.ListAll)
	app.Patch("/users/:id", protected, userHandler.Patch)

	// Catálogo (lectura pública, escritura protegida)
	productHandler := NewProductHandler(deps.ProductUC)
	app.Get("/products", productHandler.Search)
	app.Get("/products/home", productHandler.Home)
	app.Get("/products/:id", productHandler.GetByID)
	app.Post("/products", protected, productHandler.Create)
	app.Patch("/products/:id", protected, productHandler.Patch)
	app.Delete("/products/:id", protected, productHandler.Delete)

	// Pedidos (todo protegido). Las rutas literales van antes que :id para
	// que Fiber no capture "all" o "approved" como id.
	orderHandler := NewOrderHandler(deps.OrderUC)
	app.Post("/orders", protected, orderHandler.Create)
	app.Get("/orders", protected, orderHandler.ListForBuyer)
	app.Get("/orders/all", protected, orderHandler.ListAll)
	app.Get("/orders/approved", protected, orderHandler.ListApproved)
	app.Get("/orders/:id", protected, orderHandler.GetByID)
	app.Patch("/orders/:id", protected, orderHandler.SetStatus)
	app.Post("/orders/:id/production-updates", protected, orderHandler.AppendUpdate)
	app.Get("/orders/:id/receipt", protected, orderHandler.Receipt)

	// Pagos. El intent lleva rate limit propio; el webhook es público
	// porque lo firma el procesador, no el usuario.
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	app.Post("/create-payment-intent", protected, limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
	}), paymentHandler.CreateIntent)
	app.Post("/payments/webhook", paymentHandler.Webhook)

	// Panel administrativo
	adminHandler := NewAdminHandler(deps.StatsUC)
	app.Get("/admin-stats", protected, adminHandler.Stats)
}
