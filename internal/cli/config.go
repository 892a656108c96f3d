package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/tweenkit/internal/paths"
	"github.com/mesh-intelligence/tweenkit/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "TWEENKIT"

	cfgKeyBackend     = "backend"
	cfgKeyExportDir   = "export_dir"
	cfgKeyExportFile  = "export_file"
	cfgKeySampleSteps = "sample_steps"
	cfgKeyLogLevel    = "log_level"

	defaultLogLevel = "info"
)

// newViper returns a viper instance with defaults and environment binding.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetDefault(cfgKeyExportDir, "")
	v.SetDefault(cfgKeyExportFile, types.DefaultExportFile)
	v.SetDefault(cfgKeySampleSteps, types.DefaultSampleSteps)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads config.yaml from the resolved config directory. A missing
// file is not an error. It returns the session config and the log level.
func loadConfig(f rootFlags) (types.Config, string, error) {
	configDir, err := paths.ResolveConfigDir(f.configDir)
	if err != nil {
		return types.Config{}, "", fmt.Errorf("resolve config dir: %w", err)
	}

	v := newViper()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, "", fmt.Errorf("read config: %w", err)
		}
	}

	exportDir, err := paths.ResolveExportDir(f.exportDir, v.GetString(cfgKeyExportDir))
	if err != nil {
		return types.Config{}, "", fmt.Errorf("resolve export dir: %w", err)
	}

	cfg := types.Config{
		Backend:     v.GetString(cfgKeyBackend),
		ExportDir:   exportDir,
		ExportFile:  v.GetString(cfgKeyExportFile),
		SampleSteps: v.GetInt(cfgKeySampleSteps),
	}
	return cfg, v.GetString(cfgKeyLogLevel), nil
}
