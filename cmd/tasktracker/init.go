package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/metalagman/tasktracker/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the tasks file and a default config",
		Long:  "Initialize tasktracker by creating an empty tasks file and installing a default config, leaving existing files untouched.",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := a.tracker.Init(cmd.Context())
			if err != nil {
				return err
			}
			if created {
				log.Info().Str("path", a.cfg.File).Msg("tasks file created")
			} else {
				log.Info().Str("path", a.cfg.File).Msg("tasks file already exists, skipping")
			}

			if err := installDefaultConfig(a.cfgFile); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "tasktracker initialized successfully")
			return err
		},
	}
}

func installDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		log.Info().Str("path", path).Msg("config already exists, skipping")
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}
	log.Info().Str("path", path).Msg("installing default config")
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(config.DefaultYAML), 0o644); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}
