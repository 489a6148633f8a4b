package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/morristai/iceberg-mcp/pkg/logging"
)

// Load merges defaults, the optional configuration file, environment
// variables and the flags in flags (see FlagBindings). Either argument may be
// empty. The result is not validated; call Validate before use.
func Load(configFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s to %s: %w", env, key, err)
		}
	}

	if flags != nil {
		for name, key := range FlagBindings {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return Config{}, fmt.Errorf("failed to bind flag --%s: %w", name, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, readError(configFile, err)
		}
		logging.Info("Config", "Loaded configuration from %s", configFile)
	} else {
		logging.Debug("Config", "No configuration file given, using defaults and environment")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, ConfigurationError{
			FilePath:  configFile,
			ErrorType: "decode",
			Message:   "configuration values have the wrong type",
			Details:   err.Error(),
		}
	}
	if cfg.Catalog.Properties == nil {
		cfg.Catalog.Properties = map[string]string{}
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("catalog.kind", string(d.Catalog.Kind))
	v.SetDefault("catalog.name", d.Catalog.Name)
	v.SetDefault("catalog.partitionHistory", string(d.Catalog.PartitionHistory))
	v.SetDefault("rest.uri", d.REST.URI)
	v.SetDefault("rest.warehouse", d.REST.Warehouse)
	v.SetDefault("glue.warehouse", d.Glue.Warehouse)
	v.SetDefault("glue.profile", d.Glue.Profile)
	v.SetDefault("glue.region", d.Glue.Region)
	v.SetDefault("glue.accessKeyID", d.Glue.AccessKeyID)
	v.SetDefault("glue.secretAccessKey", d.Glue.SecretAccessKey)
	v.SetDefault("glue.endpoint", d.Glue.Endpoint)
	v.SetDefault("s3.endpoint", d.S3.Endpoint)
	v.SetDefault("s3.accessKeyID", d.S3.AccessKeyID)
	v.SetDefault("s3.secretAccessKey", d.S3.SecretAccessKey)
	v.SetDefault("s3.region", d.S3.Region)
	v.SetDefault("metastore.uri", d.Metastore.URI)
	v.SetDefault("server.transport", d.Server.Transport)
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("log.level", d.Log.Level)
}

func readError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return ConfigurationError{
			FilePath:    path,
			ErrorType:   "io",
			Message:     "configuration file does not exist",
			Details:     err.Error(),
			Suggestions: []string{"check the --config path", "omit --config to configure through environment variables"},
		}
	}
	var parseErr viper.ConfigParseError
	if errors.As(err, &parseErr) {
		return ConfigurationError{
			FilePath:    path,
			ErrorType:   "parse",
			Message:     "configuration file is not valid YAML",
			Details:     err.Error(),
			Suggestions: []string{"validate the file with a YAML linter"},
		}
	}
	return ConfigurationError{
		FilePath:  path,
		ErrorType: "io",
		Message:   "failed to read configuration file",
		Details:   err.Error(),
	}
}
