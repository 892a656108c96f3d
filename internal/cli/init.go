package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/tweenkit/internal/paths"
	"github.com/mesh-intelligence/tweenkit/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend     string `yaml:"backend"`
	ExportDir   string `yaml:"export_dir,omitempty"`
	ExportFile  string `yaml:"export_file"`
	SampleSteps int    `yaml:"sample_steps"`
	LogLevel    string `yaml:"log_level"`
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long:  "Create the configuration directory and write config.yaml with default values.\nAn existing config.yaml is left untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, a)
		},
	}
}

func runInit(cmd *cobra.Command, a *app) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	path := paths.ConfigFile(configDir)
	created, err := writeConfigIfMissing(path, a.flags.exportDir)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}
	if created {
		a.logger.Debug("wrote config", "path", path)
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether the file was written.
func writeConfigIfMissing(path, exportDir string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	cfg := configFile{
		Backend:     types.BackendSQLite,
		ExportDir:   exportDir,
		ExportFile:  types.DefaultExportFile,
		SampleSteps: types.DefaultSampleSteps,
		LogLevel:    defaultLogLevel,
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	return true, os.WriteFile(path, data, 0o644)
}
