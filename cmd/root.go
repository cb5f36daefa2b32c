package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"leakjar-cli/internal/api"
	"leakjar-cli/internal/config"
	"leakjar-cli/internal/logging"
	"leakjar-cli/internal/output"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	metricsOut string
)

var rootCmd = &cobra.Command{
	Use:   "leakjar",
	Short: "LeakJar CLI - A command line interface for the LeakJar leaked credential API",
	Long: `LeakJar CLI lets you look up leaked credentials for the domains you own, check
your API usage and verified domains, and export results directly from your terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitConfig(cfgFile); err != nil {
			return err
		}
		s := config.Load()
		logging.Setup(logging.Config{Level: s.LogLevel, Pretty: s.LogPretty, Output: os.Stderr})
		return nil
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run executes the command tree and then dumps metrics when --metrics-out is
// set, whether or not the command failed.
func run(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if metricsOut == "" {
		return err
	}

	werr := output.WriteFile(metricsOut, func(w io.Writer) error {
		return writeMetrics(w, prometheus.DefaultGatherer)
	})
	if err != nil {
		return err
	}
	return werr
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.leakjar.yaml)")
	flags.String("base-url", api.DefaultBaseURL, "LeakJar API base URL")
	flags.Duration("timeout", api.DefaultTimeout, "HTTP request timeout")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error, disabled")
	flags.Bool("log-pretty", false, "Human readable log output")
	flags.StringVar(&metricsOut, "metrics-out", "", "Write request metrics in Prometheus text format to this file on exit")

	_ = viper.BindPFlag(config.BaseURL, flags.Lookup("base-url"))
	_ = viper.BindPFlag(config.Timeout, flags.Lookup("timeout"))
	_ = viper.BindPFlag(config.LogLevel, flags.Lookup("log-level"))
	_ = viper.BindPFlag(config.LogPretty, flags.Lookup("log-pretty"))
}

// newClient builds an API client from the resolved configuration.
func newClient() (*api.Client, error) {
	cfg := config.Load().ClientConfig()
	logger := logging.NewLogger("leakjar-client")
	cfg.Logger = &logger

	client, err := api.NewClient(cfg)
	if errors.Is(err, api.ErrNoToken) {
		return nil, fmt.Errorf("%w: configure one with 'leakjar config set-key' or set LEAKJAR_API_KEY", err)
	}
	return client, err
}

// writeMetrics dumps every gathered metric family in the Prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

// printLine writes to the command's stdout.
func printLine(cmd *cobra.Command, format string, a ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", a...)
}

// progress writes to the command's stderr unless silent.
func progress(cmd *cobra.Command, silent bool, format string, a ...any) {
	if silent {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format, a...)
}
