package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/voltkart/voltkart-api/initializers"
	"github.com/voltkart/voltkart-api/routes"
	"github.com/voltkart/voltkart-api/utils"
	"go.uber.org/zap"
)

func allowedOrigins() []string {
	origins := initializers.GetEnv("ALLOWED_ORIGINS", "http://localhost:5173")
	return strings.Split(origins, ",")
}

func main() {
	initializers.LoadEnv()
	utils.InitLogger(initializers.GetEnv("LOG_LEVEL", "info"))
	defer utils.Logger.Sync()

	ctx := context.Background()
	st, err := initializers.ConnectToStore(ctx)
	if err != nil {
		utils.Logger.Fatal("failed to connect to store", zap.Error(err))
	}

	if err := initializers.SeedProducts(ctx, st); err != nil {
		utils.Logger.Error("product seeding failed", zap.Error(err))
	}

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, st)
	routes.ProductRoutes(server, st)
	routes.CartRoutes(server, st)
	routes.OrderRoutes(server, st)
	routes.AddressRoutes(server, st)
	routes.PaymentRoutes(server)
	routes.AdminRoutes(server, st)

	srv := &http.Server{
		Addr:    ":" + initializers.GetEnv("PORT", "5001"),
		Handler: server,
	}

	go func() {
		utils.Logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.Logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Logger.Error("server forced to shut down", zap.Error(err))
	}
	if err := st.Close(shutdownCtx); err != nil {
		utils.Logger.Error("store teardown failed", zap.Error(err))
	}
}
