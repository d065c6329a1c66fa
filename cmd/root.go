package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/cybank/cmd/session"
	"github.com/hance08/cybank/internal/app"
	"github.com/hance08/cybank/internal/config"
	"github.com/hance08/cybank/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const appName = "cybank"

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	cfgFile = configFlag(os.Args[1:])

	if err := initConfig(); err != nil {
		errhandler.Fatal(err)
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		errhandler.Fatal(err)
	}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "cybank is a terminal banking simulator",
		Long: `cybank is a terminal banking simulator.

Run without a subcommand to start an interactive session. All data lives
in memory and is discarded when the program exits.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return session.NewRunner(application.Service).Run(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(session.NewSessionCmd(application.Service))
	rootCmd.AddCommand(NewInfoCmd(application.Config))
	rootCmd.AddCommand(NewDemoCmd(application.Service))

	err = rootCmd.Execute()
	cleanup()
	if err != nil {
		errhandler.Fatal(err)
	}
}

// configFlag pulls --config out of args before cobra runs, since the
// config decides which store the commands are built on.
func configFlag(args []string) string {
	var path string

	flags := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.Usage = func() {}
	flags.SetOutput(io.Discard)
	flags.StringVarP(&path, "config", "c", "", "")
	flags.BoolP("help", "h", false, "")

	if err := flags.Parse(args); err != nil {
		return ""
	}
	return path
}

func initConfig() error {
	defaults := config.NewDefault()
	viper.SetDefault("storage.backend", defaults.Storage.Backend)
	viper.SetDefault("defaults.currency", defaults.Defaults.Currency)
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("transfer.record_failed", defaults.Transfer.RecordFailed)
	viper.SetDefault("limits.min_amount", defaults.Limits.MinAmount)
	viper.SetDefault("limits.max_amount", defaults.Limits.MaxAmount)

	if cfgFile != "" {
		path, err := expandPath(cfgFile)
		if err != nil {
			return fmt.Errorf("invalid config path: %w", err)
		}
		viper.SetConfigFile(path)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			pterm.Warning.Printf("Could not write default config: %v\n", err)
		}
	}

	viper.SetEnvPrefix(strings.ToUpper(appName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+appName), nil
	}

	return filepath.Join(configDir, appName), nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

// createDefaultConfig writes the current defaults to appDir/config.yaml
// unless a config file is already there.
func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
