// Package task provides the task model and its file-backed store.
package task

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Statuses lists every known status in lifecycle order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// ParseStatus converts a raw string into a Status.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want todo|in-progress|done)", ErrInvalidStatus, s)
}

func (s Status) String() string {
	return string(s)
}

// Task describes a task record.
type Task struct {
	ID        int       `json:"id"        yaml:"id"        validate:"gt=0"`
	Name      string    `json:"name"      yaml:"name"      validate:"required,notblank"`
	Status    Status    `json:"status"    yaml:"status"    validate:"oneof=todo in-progress done"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt" validate:"required"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt" validate:"required,gtefield=CreatedAt"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("notblank", validators.NotBlank)
	})
	return validate
}

// Validate checks the record invariants enforced before every save.
func (t Task) Validate() error {
	if err := recordValidator().Struct(t); err != nil {
		return fmt.Errorf("%w: task %d: %w", ErrInvalidTask, t.ID, err)
	}
	return nil
}

// filter returns the tasks with the given status, keeping their relative order.
func filter(tasks []Task, status Status) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

func indexOf(tasks []Task, id int) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
