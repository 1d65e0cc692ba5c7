// Package config provides configuration loading and management for tasktracker.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/metalagman/tasktracker/internal/task"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "tasktracker.yaml"

// EnvPrefix prefixes every environment override, e.g. TASKTRACKER_LOCK_TIMEOUT.
const EnvPrefix = "TASKTRACKER"

// DefaultYAML is written by `tasktracker init`.
const DefaultYAML = `# tasktracker configuration
file: tasks.json
# max: next id is max(existing ids)+1
# length: next id is len(tasks)+1, as in the original tool
id_strategy: max
lock:
  enabled: true
  timeout: 5s
  retry_delay: 50ms
`

// Config is the root configuration.
type Config struct {
	File       string          `json:"file"        mapstructure:"file"`
	IDStrategy task.IDStrategy `json:"id_strategy" mapstructure:"id_strategy"`
	Lock       LockConfig      `json:"lock"        mapstructure:"lock"`
}

// LockConfig describes the advisory lock around tasks file access.
type LockConfig struct {
	Enabled    bool          `json:"enabled"     mapstructure:"enabled"`
	Timeout    time.Duration `json:"timeout"     mapstructure:"timeout"`
	RetryDelay time.Duration `json:"retry_delay" mapstructure:"retry_delay"`
}

// Validate checks semantic constraints the schema cannot express.
func (c Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return fmt.Errorf("file must not be empty")
	}
	if c.Lock.Timeout < 0 {
		return fmt.Errorf("lock.timeout must be >= 0")
	}
	if c.Lock.RetryDelay < 0 {
		return fmt.Errorf("lock.retry_delay must be >= 0")
	}
	return nil
}

// StoreOptions maps the config onto task store options.
func (c Config) StoreOptions() task.Options {
	return task.Options{
		Path:       c.File,
		IDStrategy: c.IDStrategy,
		Lock: task.LockOptions{
			Enabled:    c.Lock.Enabled,
			Timeout:    c.Lock.Timeout,
			RetryDelay: c.Lock.RetryDelay,
		},
	}
}
