package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Value:   "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error { return nil },
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		for _, level := range []string{"DEBUG", "Info", "WaRn"} {
			t.Run(level, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "shouting"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("alias -l works", func(t *testing.T) {
		err := newApp().Run([]string{"test", "-l", "debug"})
		require.NoError(t, err)
	})
}

func TestLoadConfig(t *testing.T) {
	newContext := func(args ...string) *cli.Context {
		var captured *cli.Context
		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "db"},
				&cli.StringFlag{Name: "config"},
			},
			Action: func(c *cli.Context) error {
				captured = c
				return nil
			},
		}
		require.NoError(t, app.Run(append([]string{"test"}, args...)))
		return captured
	}

	t.Run("db flag becomes store path", func(t *testing.T) {
		cfg, err := loadConfig(newContext("--db", "/tmp/store"))
		require.NoError(t, err)
		assert.Equal(t, "/tmp/store", cfg.StorePath)
		assert.Equal(t, 10, cfg.MaxResults)
	})

	t.Run("config file overlays defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "forkful.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max_results: 3\n"), 0644))

		cfg, err := loadConfig(newContext("--db", "/tmp/store", "--config", path))
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.MaxResults)
		assert.Equal(t, "/tmp/store", cfg.StorePath)
	})

	t.Run("missing config file fails", func(t *testing.T) {
		_, err := loadConfig(newContext("--db", "/tmp/store", "--config", "/does/not/exist.yaml"))
		require.Error(t, err)
	})
}
