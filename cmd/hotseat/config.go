package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	award    int
	envFile  string
	logLevel string
	noColor  bool
	seed     uint64
}

func (c *Config) validate() error {
	if c.award < 0 {
		return fmt.Errorf("invalid award (must not be negative): %d", c.award)
	}
	switch c.logLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level (must be debug, info, warn or error): %q", c.logLevel)
	}
	return nil
}

// loadEnvFile reads KEY=value pairs into the environment. A missing default
// file is fine; a missing file the player asked for is not.
func loadEnvFile(path string, required bool) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func newCmd(cfg *Config, run func(context.Context, *Config) error) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("HAKEM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "hotseat",
		Short:         "Hakem, Jalad, Harami, Mofatish: a four player pass-the-device deduction game.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			if err := loadEnvFile(cfg.envFile, fs.Changed("env-file")); err != nil {
				return err
			}

			fs.VisitAll(func(f *pflag.Flag) {
				_ = v.BindPFlag(f.Name, f)
				_ = v.BindEnv(f.Name)
				if !f.Changed && v.IsSet(f.Name) {
					_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
				}
			})
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.IntVarP(&cfg.award, "award", "a", 100, "points banked by each round's winner (env: HAKEM_AWARD)")
	fs.StringVar(&cfg.envFile, "env-file", ".env", "file of KEY=value settings to load first")
	fs.StringVarP(&cfg.logLevel, "log-level", "l", "warn", "debug, info, warn or error; debug logs hidden roles (env: HAKEM_LOG_LEVEL)")
	fs.BoolVar(&cfg.noColor, "no-color", false, "disable coloured output (env: HAKEM_NO_COLOR)")
	fs.Uint64Var(&cfg.seed, "seed", 0, "shuffle seed, 0 for a random game (env: HAKEM_SEED)")

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("hotseat v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
