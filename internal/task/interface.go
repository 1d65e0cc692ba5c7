package task

import (
	"context"
)

// Tracker defines the interface for task management.
type Tracker interface {
	Init(ctx context.Context) (bool, error)
	Add(ctx context.Context, name string) (Task, error)
	Update(ctx context.Context, id int, name string) (Task, error)
	Delete(ctx context.Context, id int) (Task, error)
	Mark(ctx context.Context, id int, status Status) (Task, error)
	MarkInProgress(ctx context.Context, id int) (Task, error)
	MarkDone(ctx context.Context, id int) (Task, error)
	Get(ctx context.Context, id int) (Task, error)
	List(ctx context.Context, status *Status) ([]Task, error)
}
