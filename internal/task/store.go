package task

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultFile is the tasks file used when no path is configured.
const DefaultFile = "tasks.json"

// Options configures a Store. An empty Path means DefaultFile and a nil Now means time.Now.
type Options struct {
	Path       string
	IDStrategy IDStrategy
	Lock       LockOptions
	Now        func() time.Time
}

// Store manages task persistence in a single JSON file.
//
// Every operation re-reads the file, applies one change and rewrites the whole file.
// Nothing is cached between calls.
type Store struct {
	path string
	ids  IDStrategy
	lock LockOptions
	now  func() time.Time
}

var _ Tracker = (*Store)(nil)

// NewStore creates a task store.
func NewStore(opts Options) *Store {
	path := opts.Path
	if strings.TrimSpace(path) == "" {
		path = DefaultFile
	}
	ids := opts.IDStrategy
	if ids == "" {
		ids = IDStrategyMax
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{path: path, ids: ids, lock: opts.Lock, now: now}
}

// Path returns the tasks file path.
func (s *Store) Path() string {
	return s.path
}

// Init creates the tasks file with an empty list if it does not exist.
// It reports whether the file was created.
func (s *Store) Init(ctx context.Context) (bool, error) {
	var created bool
	err := s.withLock(ctx, func() error {
		var err error
		created, err = s.initIfAbsent()
		return err
	})
	if err != nil {
		return false, err
	}
	if created {
		log.Debug().Str("file", s.path).Msg("tasks file created")
	}
	return created, nil
}

// Add appends a new todo task.
func (s *Store) Add(ctx context.Context, name string) (Task, error) {
	if strings.TrimSpace(name) == "" {
		return Task{}, fmt.Errorf("%w: description is required", ErrInvalidTask)
	}
	var added Task
	err := s.withLock(ctx, func() error {
		if _, err := s.initIfAbsent(); err != nil {
			return err
		}
		tasks, err := s.load()
		if err != nil {
			return err
		}
		now := s.timestamp()
		added = Task{
			ID:        s.ids.next(tasks),
			Name:      name,
			Status:    StatusTodo,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := added.Validate(); err != nil {
			return err
		}
		return s.save(append(tasks, added))
	})
	if err != nil {
		return Task{}, fmt.Errorf("Error adding task: %w", err) //nolint:staticcheck // user-facing message
	}
	log.Debug().Str("file", s.path).Int("task_id", added.ID).Msg("task added")
	return added, nil
}

// Update replaces the name of a task.
func (s *Store) Update(ctx context.Context, id int, name string) (Task, error) {
	if strings.TrimSpace(name) == "" {
		return Task{}, fmt.Errorf("%w: description is required", ErrInvalidTask)
	}
	updated, err := s.modify(ctx, id, func(t *Task) {
		t.Name = name
	})
	if err != nil {
		return Task{}, err
	}
	log.Debug().Str("file", s.path).Int("task_id", id).Msg("task updated")
	return updated, nil
}

// MarkInProgress sets a task status to in-progress.
func (s *Store) MarkInProgress(ctx context.Context, id int) (Task, error) {
	return s.Mark(ctx, id, StatusInProgress)
}

// MarkDone sets a task status to done.
func (s *Store) MarkDone(ctx context.Context, id int) (Task, error) {
	return s.Mark(ctx, id, StatusDone)
}

// Mark sets a task status. Only in-progress and done are accepted, from any current status.
func (s *Store) Mark(ctx context.Context, id int, status Status) (Task, error) {
	if status != StatusInProgress && status != StatusDone {
		return Task{}, fmt.Errorf("%w: cannot mark task as %q", ErrInvalidStatus, status)
	}
	marked, err := s.modify(ctx, id, func(t *Task) {
		t.Status = status
	})
	if err != nil {
		return Task{}, err
	}
	log.Debug().Str("file", s.path).Int("task_id", id).Str("status", string(status)).Msg("task marked")
	return marked, nil
}

// Delete removes a task and returns it as it was before removal.
func (s *Store) Delete(ctx context.Context, id int) (Task, error) {
	var removed Task
	err := s.withLock(ctx, func() error {
		tasks, err := s.load()
		if err != nil {
			return err
		}
		idx := indexOf(tasks, id)
		if idx < 0 {
			return fmt.Errorf("%w: %d", ErrNotFound, id)
		}
		removed = tasks[idx]
		return s.save(append(tasks[:idx], tasks[idx+1:]...))
	})
	if err != nil {
		return Task{}, err
	}
	log.Debug().Str("file", s.path).Int("task_id", id).Msg("task deleted")
	return removed, nil
}

// Get fetches a task by id.
func (s *Store) Get(ctx context.Context, id int) (Task, error) {
	var found Task
	err := s.withLock(ctx, func() error {
		tasks, err := s.load()
		if err != nil {
			return err
		}
		idx := indexOf(tasks, id)
		if idx < 0 {
			return fmt.Errorf("%w: %d", ErrNotFound, id)
		}
		found = tasks[idx]
		return nil
	})
	if err != nil {
		return Task{}, err
	}
	return found, nil
}

// List returns tasks in file order, filtered by status (optional).
// An empty file list is not an error; an unreadable file is.
func (s *Store) List(ctx context.Context, status *Status) ([]Task, error) {
	var out []Task
	err := s.withLock(ctx, func() error {
		tasks, err := readTasks(s.path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUnreadable, err)
		}
		out = tasks
		return nil
	})
	if err != nil {
		return nil, err
	}
	if status != nil {
		out = filter(out, *status)
	}
	log.Debug().Str("file", s.path).Int("count", len(out)).Msg("tasks listed")
	return out, nil
}

// modify applies fn to the task with the given id, refreshes UpdatedAt and saves.
// Nothing is written when the task does not exist.
func (s *Store) modify(ctx context.Context, id int, fn func(*Task)) (Task, error) {
	var changed Task
	err := s.withLock(ctx, func() error {
		tasks, err := s.load()
		if err != nil {
			return err
		}
		idx := indexOf(tasks, id)
		if idx < 0 {
			return fmt.Errorf("%w: %d", ErrNotFound, id)
		}
		fn(&tasks[idx])
		tasks[idx].UpdatedAt = s.timestamp()
		if err := tasks[idx].Validate(); err != nil {
			return err
		}
		changed = tasks[idx]
		return s.save(tasks)
	})
	if err != nil {
		return Task{}, err
	}
	return changed, nil
}

func (s *Store) withLock(ctx context.Context, fn func() error) (err error) {
	if !s.lock.Enabled {
		return fn()
	}
	l, err := acquireLock(ctx, s.path+".lock", s.lock)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := l.Release(); releaseErr != nil && err == nil {
			err = fmt.Errorf("%w: release lock: %w", ErrReadWrite, releaseErr)
		}
	}()
	return fn()
}

func (s *Store) initIfAbsent() (bool, error) {
	_, err := os.Stat(s.path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("%w: stat %s: %w", ErrReadWrite, s.path, err)
	}
	if err := writeTasks(s.path, nil); err != nil {
		return false, fmt.Errorf("%w: %w", ErrReadWrite, err)
	}
	return true, nil
}

func (s *Store) load() ([]Task, error) {
	tasks, err := readTasks(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadWrite, err)
	}
	return tasks, nil
}

// save rewrites the whole file. Callers validate the record they changed;
// the others are written back as loaded.
func (s *Store) save(tasks []Task) error {
	if err := writeTasks(s.path, tasks); err != nil {
		return fmt.Errorf("%w: %w", ErrReadWrite, err)
	}
	return nil
}

// timestamp returns the current time in UTC at millisecond precision.
func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}
