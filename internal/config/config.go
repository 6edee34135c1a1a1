package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/blackwell-systems/repolens/internal/analyzer"
)

// Config is the top-level repolens configuration.
type Config struct {
	SampleSize     int                 `mapstructure:"sample_size"`
	ReadmeMinBytes int                 `mapstructure:"readme_min_bytes"`
	Thresholds     analyzer.Thresholds `mapstructure:"thresholds"`
	Instructions   Instructions        `mapstructure:"instructions"`
	Output         Output              `mapstructure:"output"`
}

// Instructions configures the optional AI grading of instruction files.
type Instructions struct {
	APIKeyEnv string `mapstructure:"api_key_env"`
	Model     string `mapstructure:"model"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	t := DefaultThresholds()
	v.SetDefault("sample_size", DefaultSampleSize)
	v.SetDefault("readme_min_bytes", DefaultReadmeMinBytes)
	v.SetDefault("thresholds.complexity_low", t.ComplexityLow)
	v.SetDefault("thresholds.complexity_mid", t.ComplexityMid)
	v.SetDefault("thresholds.complexity_high", t.ComplexityHigh)
	v.SetDefault("thresholds.complexity_unit_max", t.ComplexityUnitMax)
	v.SetDefault("thresholds.coupling_low", t.CouplingLow)
	v.SetDefault("thresholds.coupling_mid", t.CouplingMid)
	v.SetDefault("thresholds.coupling_high", t.CouplingHigh)
	v.SetDefault("thresholds.coupling_file_max", t.CouplingFileMax)
	v.SetDefault("thresholds.depth_good", t.DepthGood)
	v.SetDefault("thresholds.depth_moderate", t.DepthModerate)
	v.SetDefault("thresholds.depth_high", t.DepthHigh)
	v.SetDefault("instructions.api_key_env", "ANTHROPIC_API_KEY")
	v.SetDefault("instructions.model", DefaultInstructionModel)
	v.SetDefault("output.color", true)
	v.SetDefault("output.width", 80)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Missing config file is not an error; defaults apply.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DBPath returns the full path to the SQLite snapshot database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
