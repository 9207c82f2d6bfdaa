package main

import (
	"context"
	"log"

	"github.com/hibiken/asynq"

	"foodgram-backend/internal/domains/recipe/job"
	"foodgram-backend/internal/domains/recipe/model"
	"foodgram-backend/internal/infrastructure/queue"
	"foodgram-backend/pkg/container"
)

// asynqServer wraps asynq.Server for graceful shutdown
type asynqServer struct {
	*asynq.Server
}

// setupAsynqServer configures the worker and starts it in the background
func setupAsynqServer(c *container.Container) *asynqServer {
	mux := asynq.NewServeMux()
	mux.Handle(model.TypeImageCleanup, job.NewImageCleanupHandler(c.Storage))

	srv := asynq.NewServer(
		queue.RedisConnOpt(c.Config.Redis),
		asynq.Config{
			Queues: map[string]int{
				"default": 10,
				"low":     5,
			},
			Concurrency: 10,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Printf("[Asynq] ❌ Task failed - Type: %s, Error: %v", task.Type(), err)
			}),
		},
	)

	go func() {
		log.Println("[Worker] Starting...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[Worker] Failed: %v", err)
		}
	}()

	return &asynqServer{Server: srv}
}

// Shutdown drains in-flight tasks before stopping
func (s *asynqServer) Shutdown() {
	log.Println("[Worker] Shutting down...")
	s.Server.Shutdown()
	log.Println("[Worker] ✓ Gracefully stopped")
}
