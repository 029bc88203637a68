package activity

import (
	"context"
	"time"
)

type Activity struct {
	ID             uint64        `json:"id" yaml:"id"`
	Type           string        `json:"type,omitempty" yaml:"type,omitempty"`
	StartDateLocal time.Time     `json:"start_date_local" yaml:"start_date_local"`
	ElapsedTime    time.Duration `json:"elapsed_time,omitempty" yaml:"elapsed_time,omitempty"`
	Distance       float64       `json:"distance,omitempty" yaml:"distance,omitempty"`
}

// Storage keeps an activity log. All returns activities ordered by start time.
type Storage interface {
	Add(ctx context.Context, activities ...Activity) (ids []uint64, err error)
	Get(ctx context.Context, id uint64) (Activity, error)
	All(ctx context.Context) (Frame, error)
	Remove(ctx context.Context, id uint64) error
}
