package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/curtain/internal/app"
	"github.com/five82/curtain/internal/assets"
	"github.com/five82/curtain/internal/config"
	"github.com/five82/curtain/internal/ui"
)

type rootFlags struct {
	configPath string
	logFile    string
	logLevel   string

	loadTime   time.Duration
	animation  string
	appearance string
	theme      string

	format string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "curtain",
		Short: "Splash screen lifecycle demo",
		Long: `Curtain shows a full-window splash animation over a terminal program while
it loads, and hides it once both the animation and the program are done.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, &flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file path (default "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "write JSON logs to this file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	addRunFlags(cmd, &flags)

	cmd.AddCommand(newRunCmd(&flags))
	cmd.AddCommand(newConfigCmd(&flags))
	cmd.AddCommand(newSpinnersCmd())

	return cmd
}

func addRunFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.Flags().DurationVar(&flags.loadTime, "load", 3*time.Second, "simulated application load time")
	cmd.Flags().StringVar(&flags.animation, "animation", "", "animation to show instead of the configured ones")
	cmd.Flags().StringVar(&flags.appearance, "appearance", "", "force host appearance: auto, light or dark")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "host theme: "+strings.Join(ui.ThemeNames(), ", "))
}

func newRunCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the demo host with the splash (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, flags)
		},
	}
	addRunFlags(cmd, flags)
	return cmd
}

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved splash configuration",
		Long: `Load the config file, normalize it the way the splash does and print the
effective values. Adjustments made while loading are listed on stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := newLogger(flags.logFile, flags.logLevel)
			if err != nil {
				return err
			}
			defer closeLog()

			cfg, err := app.LoadConfig(app.Options{ConfigPath: flags.configPath}, logger)
			if err != nil {
				return err
			}

			if cfg.Path != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "# %s\n", cfg.Path)
			} else {
				fmt.Fprintln(cmd.ErrOrStderr(), "# defaults (no config file)")
			}
			for _, d := range cfg.Diagnostics {
				fmt.Fprintf(cmd.ErrOrStderr(), "# note: %s\n", d)
			}
			return cfg.Encode(cmd.OutOrStdout(), flags.format)
		},
	}
	cmd.Flags().StringVar(&flags.format, "format", "toml", "output format: toml or yaml")
	return cmd
}

func newSpinnersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spinners",
		Short: "List the built-in spinner animations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range assets.SpinnerNames() {
				fmt.Fprintf(cmd.OutOrStdout(), "spinner:%s\n", name)
			}
		},
	}
}

func runDemo(cmd *cobra.Command, flags *rootFlags) error {
	logger, closeLog, err := newLogger(flags.logFile, flags.logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	return app.Run(cmd.Context(), app.Options{
		ConfigPath: flags.configPath,
		Logger:     logger,
		LoadTime:   flags.loadTime,
		Animation:  flags.animation,
		Appearance: flags.appearance,
		ThemeName:  flags.theme,
	})
}
