package main

import (
	"context"

	"github.com/locvowork/hospitality_backoffice/internal/bootstrap"
	"github.com/locvowork/hospitality_backoffice/internal/logger"
)

func main() {
	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		panic(err)
	}

	logger.InfoLog(ctx, "Hospitality back-office gateway starting")
	if err := app.Run(ctx); err != nil {
		logger.ErrorLog(ctx, "Server stopped: %v", err)
		panic(err)
	}
}
