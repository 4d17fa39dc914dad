package main

import (
	"os"
	"time"

	"go-hris-leave/internal/app"
	"go-hris-leave/internal/bootstrap"
	"go-hris-leave/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	r := gin.Default()

	if err := app.BuildApp(r, app.LoadConfig()); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	auditLogger := bootstrap.NewStdoutAuditLogger()
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	err = bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:            port,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		auditLogger,
	)
	if err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}
}
