package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"foodgram-backend/internal/domains/recipe/model"
)

// ObjectDeleter removes an object from storage by its public URL
type ObjectDeleter interface {
	DeleteByURL(ctx context.Context, url string) error
}

// ImageCleanupHandler deletes orphaned recipe images from object storage
type ImageCleanupHandler struct {
	storage ObjectDeleter
}

func NewImageCleanupHandler(storage ObjectDeleter) *ImageCleanupHandler {
	return &ImageCleanupHandler{storage: storage}
}

func (h *ImageCleanupHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload model.ImageCleanupPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal ImageCleanup payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Str("image_url", payload.ImageURL).
		Msg("Deleting recipe image")

	if err := h.storage.DeleteByURL(ctx, payload.ImageURL); err != nil {
		log.Error().
			Err(err).
			Str("image_url", payload.ImageURL).
			Msg("Failed to delete recipe image")
		return fmt.Errorf("delete image: %w", err)
	}

	return nil
}
