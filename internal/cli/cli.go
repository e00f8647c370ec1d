// Package cli defines the keydeck command tree.
package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/avolkhin/keydeck-server/internal/app"
	"github.com/avolkhin/keydeck-server/internal/config"
	"github.com/avolkhin/keydeck-server/internal/core"
	"github.com/avolkhin/keydeck-server/internal/log"
)

const version = "0.1.0"

var (
	flagConfig   string
	flagLogLevel string
)

// NewRoot builds the root command with its subcommands attached.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "keydeck",
		Short:         "Wi-Fi remote that relays commands as host keystrokes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newServeCmd())
	root.AddCommand(newSendCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the remote-control server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			application, err := app.New(cfg, logger)
			if err != nil {
				return err
			}
			return application.Run(cmd.Context())
		},
	}
}

func newSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <command>",
		Short: "Emit one command's keystroke sequence locally",
		Long: "Emits a single command's keystroke sequence through the configured\n" +
			"emulator, useful for checking key injection before going wireless.\n\n" +
			"Known commands: " + strings.Join(commandNames(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			cmdName := args[0]
			command, ok := core.CommandForName(cmdName)
			if !ok {
				return fmt.Errorf("unknown command %q (known: %s)", cmdName, strings.Join(commandNames(), ", "))
			}

			emu := app.NewEmulator(cfg.Emulator, logger)
			dispatcher := core.NewDispatcher(emu, nil, logger)
			dispatcher.Emit(command)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the keydeck version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "keydeck "+version)
		},
	}
}

func loadConfig() (config.Config, *zerolog.Logger, error) {
	bootLog := log.New(flagLogLevel)

	cfg, path, err := config.Load(bootLog, flagConfig)
	if err != nil {
		return config.Config{}, nil, err
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	logger := log.New(cfg.LogLevel)
	logger.Info().Str("config", path).Msg("configuration loaded")
	return cfg, logger, nil
}

func commandNames() []string {
	names := make([]string, 0, len(core.Commands()))
	for _, c := range core.Commands() {
		names = append(names, c.String())
	}
	sort.Strings(names)
	return names
}
