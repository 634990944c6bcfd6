package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"huffman_coding_go/internal/config"
	"huffman_coding_go/internal/handler"
	"huffman_coding_go/internal/repo"
	"huffman_coding_go/internal/router"
	"huffman_coding_go/internal/service"
	"huffman_coding_go/pkg/logger"
)

func main() {
	cfg := config.Load()
	logg := logger.New()

	ctx := context.Background()
	var runRepo repo.RunRepo
	if cfg.DatabaseURL != "" {
		pool, err := repo.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		if err := repo.Migrate(ctx, pool); err != nil {
			log.Fatal(err)
		}
		runRepo = repo.NewRunRepoPG(pool)
	} else {
		runRepo = repo.NewRunRepoInMemory()
	}

	coderSvc := service.NewCoderService(runRepo, logg)
	coderH := handler.NewCoderHandler(coderSvc)

	r := gin.Default()
	router.Register(r, router.Dependencies{
		CoderHandler: coderH,
	})

	addr := ":" + cfg.Port
	log.Printf("starting server at %s\n", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
