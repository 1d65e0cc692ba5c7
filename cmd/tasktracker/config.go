package main

import (
	"github.com/metalagman/tasktracker/internal/config"
	"github.com/metalagman/tasktracker/internal/task"
	"github.com/rs/zerolog/log"
)

// loadConfig resolves settings and builds the task store for this invocation.
func (a *app) loadConfig() error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.tracker = task.NewStore(cfg.StoreOptions())
	log.Debug().
		Str("file", cfg.File).
		Str("id_strategy", string(cfg.IDStrategy)).
		Bool("lock", cfg.Lock.Enabled).
		Msg("config loaded")
	return nil
}
