package model

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// TypeImageCleanup removes an orphaned recipe image from object storage
// after the recipe was deleted or its image replaced
const TypeImageCleanup = "recipe:image_cleanup"

type ImageCleanupPayload struct {
	ImageURL string `json:"image_url"`
}

func NewImageCleanupTask(imageURL string) (*asynq.Task, error) {
	payload, err := json.Marshal(ImageCleanupPayload{ImageURL: imageURL})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeImageCleanup, payload, asynq.MaxRetry(5)), nil
}
