package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/chandru-wp/portfolio-server/internal/api"
	"github.com/chandru-wp/portfolio-server/internal/config"
	"github.com/chandru-wp/portfolio-server/internal/repositories"
	"github.com/chandru-wp/portfolio-server/internal/utils"
)

func main() {
	cfg := config.Envs
	log := utils.NewLogger(cfg.Environment)

	repositories.ConnectDatabase()

	if cfg.MediaEnabled() {
		repositories.InitMedia(
			cfg.R2.AccessKeyID,
			cfg.R2.SecretAccessKey,
			cfg.R2.AccountID,
			cfg.R2.BucketName,
			cfg.R2.Region,
		)
	} else {
		log.Warn("media storage not configured, presign endpoints disabled")
	}

	handler := api.SetupRouter(log)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: handler,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting portfolio server on port: %s", cfg.Port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on port %s: %v", cfg.Port, err)
	}
}
