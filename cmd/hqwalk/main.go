package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"hqwalk/internal/cliconfig"
	"hqwalk/internal/interpreter"
)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newRootCommand() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:   "hqwalk",
		Short: "Follow turn-and-move instructions on a grid and report taxicab distances",
		Long: "Reads comma-separated instructions such as \"R8, L3\" and walks them from the origin facing north.\n" +
			"Prints the final location, its distance from the start, and the first location visited twice.",
		Example:       "  hqwalk\n  hqwalk --input route.txt --log-level debug",
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}

			if err := cliconfig.LoadDotEnv(".env"); err != nil {
				return fmt.Errorf("load .env: %w", err)
			}
			cliconfig.ApplyEnvConfig(&cfg, changed)

			if err := cfg.Validate(); err != nil {
				return err
			}
			lvl, _ := cfg.Level()
			log := cliconfig.NewLogger(cmd.ErrOrStderr(), lvl)
			log.Debug().Interface("config", cfg).Msg("configuration")

			route, err := interpreter.LoadRoute(cfg.InputPath)
			if err != nil {
				return err
			}
			log.Debug().Int("instructions", len(route.Instructions)).Msg("route loaded")

			rep, err := interpreter.Simulate(route, log)
			if err != nil {
				return err
			}
			if rep.Duplicate == nil {
				log.Warn().Msg("no location was visited twice")
			}
			if err := rep.Display(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("write report: %w", err)
			}

			if cfg.Pause {
				fmt.Fprintln(cmd.OutOrStdout(), "Press Enter to exit")
				_, _ = io.ReadFull(cmd.InOrStdin(), make([]byte, 1))
			}
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.hqwalk/config.toml)")
	root.Flags().StringVarP(&cfg.InputPath, "input", "i", cfg.InputPath, "file containing the instructions")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().BoolVar(&cfg.Pause, "pause", cfg.Pause, "wait for a key press before exiting")
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log := cliconfig.Logger()
		log.Error().Err(err).Msg("hqwalk")
		os.Exit(1)
	}
}
