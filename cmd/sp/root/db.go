package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gonga3/study-planner/internal/config"
	"github.com/Gonga3/study-planner/internal/engine"
	"github.com/Gonga3/study-planner/internal/storage"
	"github.com/Gonga3/study-planner/internal/ui"
)

func loadConfig() (*config.Config, error) {
	path := flags.configPath
	if path == "" {
		p, err := config.ResolvePath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if flags.backend != "" {
		cfg.Storage.Backend = flags.backend
	}
	if flags.dataPath != "" {
		cfg.Storage.Path = flags.dataPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openPort(ctx context.Context, cfg *config.Config) (storage.Port, func(), error) {
	path, err := cfg.DataPath()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Storage.Backend == config.BackendSQLite {
		s, err := storage.OpenSQLiteStore(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	}
	return storage.NewFileStore(path), func() {}, nil
}

// openService wires config, logging and storage, then loads the state.
// A load failure is printed as a warning and the command continues with
// defaults.
func openService(ctx context.Context, cmd *cobra.Command) (*engine.Service, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger := setupLogger(cfg.Logging, cmd.ErrOrStderr())

	port, cleanup, err := openPort(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	opts := []engine.Option{engine.WithLogger(logger)}
	anchor, ok, err := cfg.EvenWeekAnchor()
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if ok {
		opts = append(opts, engine.WithEvenWeekAnchor(anchor))
	}

	svc := engine.NewService(port, opts...)
	if err := svc.Load(ctx); err != nil {
		warn(cmd, fmt.Sprintf("could not read saved data, using defaults: %v", err))
	}
	return svc, cleanup, nil
}

func warn(cmd *cobra.Command, msg string) {
	fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn.Render(ui.IconWarn+" "+msg))
}

// reportSave turns a save failure into a warning: the change happened but
// is not on disk.
func reportSave(cmd *cobra.Command, err error) error {
	var saveErr *engine.SaveError
	if errors.As(err, &saveErr) {
		warn(cmd, saveErr.Error())
		return nil
	}
	return err
}
