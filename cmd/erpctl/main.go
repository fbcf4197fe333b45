package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	portssvc "github.com/SscSPs/furniture_erp/internal/core/ports/services"
	"github.com/SscSPs/furniture_erp/internal/core/services"
	"github.com/SscSPs/furniture_erp/internal/platform/config"
	"github.com/SscSPs/furniture_erp/internal/platform/database"
	"github.com/SscSPs/furniture_erp/internal/repositories/database/pgsql"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfg     *config.Config
	rootCmd = &cobra.Command{
		Use:   "erpctl",
		Short: "Maintenance commands for the furniture ERP backend",
		Long: `erpctl runs operational tasks against the ERP database: schema migrations,
ledger reconciliation and ad-hoc rule evaluation.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}
)

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("LOG_LEVEL", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(reconcileCmd())
	rootCmd.AddCommand(evaluateCmd())
	rootCmd.AddCommand(balanceCmd())
	rootCmd.AddCommand(migrateCmd())
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	loaded, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = loaded

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(viper.GetString("LOG_LEVEL")))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", viper.GetString("LOG_LEVEL"), err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// openServices connects to the database and builds the service container.
// The returned func closes the pool.
func openServices(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return nil, nil, err
	}
	container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool))
	return container, pool.Close, nil
}
