// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/studyaids/internal/credentials"
	"github.com/pdiddy/studyaids/internal/generate"
	"github.com/pdiddy/studyaids/internal/pipeline"
	"github.com/pdiddy/studyaids/internal/planner"
	"github.com/pdiddy/studyaids/pkg/types"
)

const defaultUserAgent = "studyaids/0.1"

// configureViper sets defaults, the config file search path and the
// environment binding (STUDYAIDS_GENERATOR_MODEL and so on).
func configureViper(v *viper.Viper, cfgFile string) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("studyaids")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "studyaids"))
		}
	}

	v.SetDefault("generator.backend", string(types.BackendGemini))
	v.SetDefault("generator.model", generate.DefaultModel)
	v.SetDefault("generator.base_url", "")
	v.SetDefault("generator.temperature", generate.DefaultTemperature)
	v.SetDefault("generator.max_input_chars", generate.DefaultMaxInputChars)
	v.SetDefault("generator.max_retries", 0)
	v.SetDefault("generator.timeout", 0)
	v.SetDefault("generator.user_agent", defaultUserAgent)
	v.SetDefault("generator.lenient", false)
	v.SetDefault("extractor.backend", string(types.ExtractorPDF))
	v.SetDefault("planner.interval_days", planner.DefaultIntervalDays)
	v.SetDefault("output.dir", pipeline.DefaultOutputDir)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetEnvPrefix("STUDYAIDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// loadConfig assembles a types.Config from v and checks its ranges.
func loadConfig(v *viper.Viper) (types.Config, error) {
	cfg := types.Config{
		Generator: types.GeneratorConfig{
			AIConfig: types.AIConfig{
				Model:      v.GetString("generator.model"),
				APIKey:     v.GetString("generator.api_key"),
				MaxRetries: v.GetInt("generator.max_retries"),
			},
			HTTPConfig: types.HTTPConfig{
				Timeout:   v.GetDuration("generator.timeout"),
				UserAgent: v.GetString("generator.user_agent"),
			},
			Backend:       types.GeneratorBackend(v.GetString("generator.backend")),
			BaseURL:       v.GetString("generator.base_url"),
			MaxInputChars: v.GetInt("generator.max_input_chars"),
			Lenient:       v.GetBool("generator.lenient"),
		},
		Extractor: types.ExtractorConfig{
			Backend: types.ExtractorBackend(v.GetString("extractor.backend")),
		},
		Planner: types.PlannerConfig{
			IntervalDays: v.GetInt("planner.interval_days"),
		},
		Output: types.OutputConfig{
			Dir: v.GetString("output.dir"),
		},
		Log: types.LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}
	temperature := v.GetFloat64("generator.temperature")
	cfg.Generator.Temperature = &temperature

	if v.GetBool("verbose") {
		cfg.Log.Level = "debug"
	}

	switch {
	case cfg.Generator.MaxInputChars <= 0:
		return cfg, types.ConfigurationError("load config", fmt.Errorf("generator.max_input_chars must be positive, got %d", cfg.Generator.MaxInputChars))
	case cfg.Generator.MaxRetries < 0:
		return cfg, types.ConfigurationError("load config", fmt.Errorf("generator.max_retries must not be negative, got %d", cfg.Generator.MaxRetries))
	case cfg.Generator.Timeout < 0:
		return cfg, types.ConfigurationError("load config", fmt.Errorf("generator.timeout must not be negative, got %s", cfg.Generator.Timeout))
	case temperature < 0 || temperature > generate.MaxTemperature:
		return cfg, types.ConfigurationError("load config", fmt.Errorf("generator.temperature must be between 0 and %g, got %g", generate.MaxTemperature, temperature))
	case cfg.Planner.IntervalDays <= 0:
		return cfg, types.ConfigurationError("load config", fmt.Errorf("planner.interval_days must be positive, got %d", cfg.Planner.IntervalDays))
	}
	return cfg, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config prints the configuration that run would use, after merging defaults,
the config file, STUDYAIDS_* environment variables and flags. The API key is
masked.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	if cred, err := (credentials.Resolver{}).Resolve(cfg.Generator.APIKey); err == nil {
		cfg.Generator.APIKey = credentials.Mask(cred.Key)
		fmt.Fprintf(cmd.ErrOrStderr(), "API key from %s\n", cred.Source)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
