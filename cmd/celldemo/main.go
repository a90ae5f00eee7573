package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/AnatoleLucet/cell"
)

// Config holds the demo defaults, overridable from the environment and then from flags.
type Config struct {
	Writes   int           `env:"CELLDEMO_WRITES" envDefault:"10"`
	Interval time.Duration `env:"CELLDEMO_INTERVAL" envDefault:"10ms"`
	Debounce time.Duration `env:"CELLDEMO_DEBOUNCE" envDefault:"50ms"`
	Verbose  bool          `env:"CELLDEMO_VERBOSE"`
}

func main() {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "celldemo: invalid environment: %s\n", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "celldemo",
		Short: "Drive a signal, a computed and a debounced subscriber",
		Long: `celldemo writes a counter signal at a fixed interval.

A computed doubles the counter. One subscriber prints every value of the
computed, a second one prints it debounced, so only the value that follows
a quiet period is shown.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			cell.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			return run(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.IntVarP(&cfg.Writes, "writes", "n", cfg.Writes, "number of writes to the counter")
	flags.DurationVar(&cfg.Interval, "interval", cfg.Interval, "delay between writes")
	flags.DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "debounce window of the second subscriber")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log subscription activity")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "celldemo: %s\n", err)
		os.Exit(1)
	}
}
