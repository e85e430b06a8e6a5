package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"healthpulse/cmd/fx/account_fx"
	"healthpulse/cmd/fx/controllers_fx"
	"healthpulse/cmd/fx/health_ai_fx"
	"healthpulse/cmd/fx/lifestyle_fx"
	"healthpulse/cmd/fx/store_fx"
	"healthpulse/cmd/fx/weather_fx"
	"healthpulse/internal/api/controllers"
	"healthpulse/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET is required")
	}

	app := fx.New(
		store_fx.Module,
		account_fx.Module,
		lifestyle_fx.Module,
		health_ai_fx.Module,
		weather_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{Addr: ":" + port, Handler: engine}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	lifestyleController *controllers.LifestyleController,
	dashboardController *controllers.DashboardController,
	healthTipsController *controllers.HealthTipsController,
	chatController *controllers.ChatController,
) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, lifestyleController, dashboardController, healthTipsController, chatController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	lifestyleController *controllers.LifestyleController,
	dashboardController *controllers.DashboardController,
	healthTipsController *controllers.HealthTipsController,
	chatController *controllers.ChatController,
) {
	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())

	authed.GET("/dashboard", dashboardController.GetDashboard)
	authed.POST("/lifestyle/logs", lifestyleController.AddLog)
	authed.GET("/lifestyle/logs", lifestyleController.ListLogs)
	authed.GET("/health-tips", healthTipsController.ComprehensiveTips)
	authed.GET("/alerts", healthTipsController.DetailedAlerts)
	authed.POST("/api/chat", chatController.Chat)
	authed.GET("/api/lifestyle-chart", lifestyleController.ChartData)
}
