package tasks

import (
	"encoding/json"
	"time"

	"rentride/models"

	"github.com/hibiken/asynq"
)

const TypeHoldRelease = "hold:release"

// NewHoldReleaseTask builds the task that clears a car's hold mirror once
// the hold TTL lapses.
func NewHoldReleaseTask(payload models.HoldReleasePayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeHoldRelease, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
