package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"redditleads/internal/bootstrap"
	"redditleads/internal/config"
	"redditleads/internal/observability"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	accountFlag string
	timeout     time.Duration

	logger *observability.Logger
	deps   *bootstrap.Dependencies
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "leadsctl",
	Short: "Operate redditleads campaigns from the command line",
	Long: `leadsctl runs the same collection, dispatch and inbox routines as the API
server against the configured database and Reddit account.

Configuration is read from the environment (env.local outside production).`,
	SilenceUsage: true,
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization cycle
	// (needsDependencies refers to rootCmd)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !needsDependencies(cmd) {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logger = observability.NewLogger()
		deps, err = bootstrap.Initialize(cmd.Context(), cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize dependencies: %w", err)
		}
		return nil
	}

	rootCmd.PersistentFlags().StringVarP(&accountFlag, "account", "a", "", "Account ID the command acts for")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Hour, "Operation timeout")

	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(dispatchCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// cleanup releases whatever PersistentPreRunE opened, also after a failed command
func cleanup() {
	if deps == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	deps.Cleanup(ctx)
	logger.Sync()
}

// needsDependencies reports whether cmd talks to the database or Reddit
func needsDependencies(cmd *cobra.Command) bool {
	return cmd.Runnable() && cmd != rootCmd && cmd.Name() != "help" && cmd.Name() != "completion"
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}

func accountID() (uuid.UUID, error) {
	return parseID("account", accountFlag)
}

func parseID(name, raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.UUID{}, fmt.Errorf("--%s is required", name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("invalid %s ID %q: %w", name, raw, err)
	}
	return id, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
