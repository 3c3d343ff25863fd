package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/fieldkit/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envPrefix      = "FIELDKIT"

	cfgKeySchemaFile        = "schema_file"
	cfgKeyStore             = "store"
	cfgKeyStrict            = "strict"
	cfgKeyCheckSchemaFields = "check_schema_fields"
	cfgKeyTimezone          = "timezone"
	cfgKeyLogLevel          = "log_level"
)

// envKeys are the config keys that FIELDKIT_<KEY> environment variables
// override.
var envKeys = []string{cfgKeyStore, cfgKeyStrict, cfgKeyCheckSchemaFields, cfgKeyTimezone, cfgKeyLogLevel}

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# fieldkit configuration

# External store whose field names records arrive in.
store: sharepoint

# Fail fields the schema does not declare.
strict: false

# Validate declared fields that are missing from a record.
check_schema_fields: true

# IANA zone dates are displayed in.
timezone: Pacific/Auckland

# debug, info, warn or error.
log_level: warn

# YAML schema file replacing the built-in schemas; relative to this directory.
# schema_file: schemas.yaml
`

// loadConfig reads config.yaml from configDir using Viper and returns the
// resulting Config. It creates the directory and a default config.yaml on
// first run. Values resolve as flag > FIELDKIT_* env > config.yaml > default,
// except schema_file, which is read from config.yaml only.
func loadConfig(configDir string, fs *pflag.FlagSet) (types.Config, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return types.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return types.Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	def := types.DefaultConfig()
	v := viper.New()
	v.SetDefault(cfgKeyStore, def.Store)
	v.SetDefault(cfgKeyStrict, def.Strict)
	v.SetDefault(cfgKeyCheckSchemaFields, def.CheckSchemaFields)
	v.SetDefault(cfgKeyTimezone, def.Timezone)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	// schema_file is left unbound: FIELDKIT_SCHEMA_FILE ranks below
	// config.yaml and is resolved against the working directory by
	// paths.ResolveSchemaFile.
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return types.Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if fs != nil {
		for key, name := range map[string]string{cfgKeyStore: "store", cfgKeyStrict: "strict"} {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return types.Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return types.Config{
		SchemaFile:        v.GetString(cfgKeySchemaFile),
		Store:             v.GetString(cfgKeyStore),
		Strict:            v.GetBool(cfgKeyStrict),
		CheckSchemaFields: v.GetBool(cfgKeyCheckSchemaFields),
		Timezone:          v.GetString(cfgKeyTimezone),
		LogLevel:          strings.ToLower(v.GetString(cfgKeyLogLevel)),
	}, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
