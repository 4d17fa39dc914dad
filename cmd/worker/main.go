package main

import (
	"go-hris-leave/internal/app"
	"go-hris-leave/internal/shared/apperror"

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

	if err := app.RunWorker(app.LoadConfig()); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}
