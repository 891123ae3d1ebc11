package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/treekeep/internal/config"
	"github.com/vvka-141/treekeep/internal/logging"
	"github.com/vvka-141/treekeep/internal/manager"
	"github.com/vvka-141/treekeep/internal/store"
	"github.com/vvka-141/treekeep/pkg/treekeep"
)

// StoreEnvVar overrides the store directory when no --store flag is given.
const StoreEnvVar = "TREEKEEP_STORE"

// loadProjectConfig reads treekeep.yaml from the working directory. A
// missing file is not an error; every setting has a default.
func loadProjectConfig() (*config.ProjectConfig, error) {
	cfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return &config.ProjectConfig{}, nil
		}
		return nil, fmt.Errorf("%w: %v", treekeep.ErrInvalidConfig, err)
	}
	return cfg, nil
}

// resolveStoreDir applies the precedence flag > environment > config file >
// default.
func resolveStoreDir(flagValue string, cfg *config.ProjectConfig) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(StoreEnvVar); env != "" {
		return env
	}
	if cfg.Store != "" {
		return cfg.Store
	}
	return treekeep.DefaultStoreDir
}

// commandContext bundles everything a command needs after setup.
type commandContext struct {
	manager *manager.Manager
	config  *config.ProjectConfig
	logger  treekeep.Logger
}

// setup loads the optional .env file and project config, resolves the store
// directory, and opens the manager over it.
func setup(cmd *cobra.Command) (*commandContext, error) {
	if envFile, _ := cmd.Flags().GetString("env-file"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %q: %w", envFile, err)
		}
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return nil, err
	}

	logger := logging.NewConsoleLogger(getVerboseFlag(cmd) || cfg.Verbose)

	storeFlag, _ := cmd.Flags().GetString("store")
	st, err := store.New(resolveStoreDir(storeFlag, cfg), logger)
	if err != nil {
		return nil, err
	}

	mgr, err := manager.New(st, logger)
	if err != nil {
		return nil, err
	}

	return &commandContext{manager: mgr, config: cfg, logger: logger}, nil
}

// splitTarget splits a full catalog path into the parent path and the final
// name segment. "root/sub/x.py" becomes ("root/sub", "x.py"); a single
// segment has an empty parent.
func splitTarget(arg string) (parent, name string, err error) {
	var segments []string
	for _, segment := range strings.Split(arg, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	if len(segments) == 0 {
		return "", "", fmt.Errorf("empty path")
	}
	name = segments[len(segments)-1]
	parent = strings.Join(segments[:len(segments)-1], "/")
	return parent, name, nil
}
