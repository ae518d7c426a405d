package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nebula-eats-be/api/handlers"
	"nebula-eats-be/internal/cart"
	"nebula-eats-be/internal/config"
	"nebula-eats-be/internal/logger"
	"nebula-eats-be/internal/menu"
	"nebula-eats-be/internal/middleware"
	"nebula-eats-be/internal/order"
	"nebula-eats-be/internal/payment"
	"nebula-eats-be/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	menuRepo := menu.NewRepository(menu.DefaultMenu())
	menuSvc := menu.NewService(menuRepo)

	cartSvc := cart.NewService()

	gateway := payment.NewSimulator(cfg.CheckoutDelay, cfg.PaymentSuccessRate)

	orderRepo := order.NewRepository()
	orderSvc := order.NewService(orderRepo, cartSvc, gateway)

	userSvc := user.NewService(cfg.JWTSecret)

	authHandler := handlers.NewAuthHandler(userSvc)
	menuHandler := handlers.NewMenuHandler(menuSvc)
	cartHandler := handlers.NewCartHandler(cartSvc, menuSvc)
	orderHandler := handlers.NewOrderHandler(orderSvc)

	router := setupRouter(cfg, authHandler, menuHandler, cartHandler, orderHandler)

	server := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.L().Info("🚀 server running", zap.String("port", cfg.AppPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L().Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.L().Fatal("forced shutdown", zap.Error(err))
	}

	logger.L().Info("server shutdown complete")
}

func setupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	menuHandler *handlers.MenuHandler,
	cartHandler *handlers.CartHandler,
	orderHandler *handlers.OrderHandler,
) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.Logging())
	router.Use(middleware.RateLimit())

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/signup", authHandler.Signup)
		}

		// Anyone logged in can browse the menu.
		api.GET("/menu", middleware.RequireAuth(), menuHandler.List)

		customer := api.Group("", middleware.RequireRole(user.RoleCustomer))
		{
			customer.GET("/cart", cartHandler.GetCart)
			customer.POST("/cart/items", cartHandler.AddItem)
			customer.PATCH("/cart/items/:item_id", cartHandler.UpdateQuantity)
			customer.DELETE("/cart", cartHandler.Clear)

			customer.POST("/checkout", orderHandler.Checkout)
			customer.GET("/orders", orderHandler.History)
		}

		admin := api.Group("/admin", middleware.RequireRole(user.RoleAdmin))
		{
			admin.POST("/menu", menuHandler.AddItem)
			admin.PATCH("/menu/:id/availability", menuHandler.SetAvailability)
			admin.DELETE("/menu/:id", menuHandler.RemoveItem)

			admin.GET("/orders/kitchen", orderHandler.KitchenQueue)
			admin.GET("/orders/delivery", orderHandler.DeliveryQueue)
			admin.POST("/orders/:id/advance", orderHandler.Advance)
		}

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}

	return router
}
