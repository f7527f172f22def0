package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"mlbbstore/internal/adapter/api"
	"mlbbstore/internal/adapter/api/handler"
	"mlbbstore/internal/adapter/api/router"
	"mlbbstore/internal/adapter/repository"
	"mlbbstore/internal/usecase"
	"mlbbstore/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment variable (production), file path
	// (local development), or neither (application default credentials /
	// emulator).
	if cfg.ServiceAccountJSON != "" {
		log.Printf("Using service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON)))
	} else if cfg.ServiceAccountPath != "" {
		if _, err := os.Stat(cfg.ServiceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", cfg.ServiceAccountPath)
		}
		log.Printf("Using service account from file: %s", cfg.ServiceAccountPath)
		opts = append(opts, option.WithCredentialsFile(cfg.ServiceAccountPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	accountRepo := repository.NewFirestoreAccountRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)

	accountUseCase := usecase.NewAccountUseCase(accountRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, accountRepo)

	handler.Setup(accountUseCase, orderUseCase)
	handler.SetupHealthHandler(firestoreClient, cfg.FirebaseProject)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
