// Command wordle is a line-oriented client for the daily game.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/dailywordle/internal/config"
)

const (
	defaultServer  = "localhost:7097"
	defaultTimeout = "5s"
)

var (
	serverAddr string
	timeoutStr string
	useColor   bool

	statsDate string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "wordle",
		Short:             "Play today's word",
		SilenceUsage:      true,
		PersistentPreRunE: applyConfig,
		RunE:              runPlayCmd,
	}
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", defaultServer, "game server address")
	rootCmd.PersistentFlags().StringVar(&timeoutStr, "timeout", defaultTimeout, "timeout for unary calls")
	rootCmd.PersistentFlags().BoolVar(&useColor, "color", true, "colored tiles")

	rootCmd.AddCommand(newStatsCmd())
	return rootCmd
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show a day's aggregate stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsDate, "date", "", "day as YYYYMMDD (default: your last game, else today)")
	return cmd
}

// applyConfig fills flags the user did not set from the TOML config.
func applyConfig(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadClient(config.DefaultClientPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "server", &serverAddr, fileCfg.Server)
	applyStringConfig(cmd, "timeout", &timeoutStr, fileCfg.Timeout)
	applyBoolConfig(cmd, "color", &useColor, fileCfg.Color)
	if _, err := time.ParseDuration(timeoutStr); err != nil {
		return fmt.Errorf("invalid timeout %q: %w", timeoutStr, err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func callTimeout() time.Duration {
	d, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return 5 * time.Second
	}
	return d
}
