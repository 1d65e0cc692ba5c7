package task

import "errors"

var (
	// ErrNotFound is returned when no task has the requested id.
	ErrNotFound = errors.New("task not found")

	// ErrReadWrite is returned when the tasks file cannot be created, read, parsed or written.
	ErrReadWrite = errors.New("tasks file read/write failure")

	// ErrUnreadable is returned by List when the tasks file cannot be read or parsed.
	ErrUnreadable = errors.New("no tasks found")

	// ErrInvalidStatus is returned for a status outside the known set.
	ErrInvalidStatus = errors.New("invalid task status")

	// ErrInvalidTask is returned when a record fails validation.
	ErrInvalidTask = errors.New("invalid task")

	// ErrLocked is returned when the tasks file lock is held past the timeout.
	ErrLocked = errors.New("tasks file is locked by another process")
)
