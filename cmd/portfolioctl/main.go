package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "portfolioctl",
	Short:        "Operator tool for the portfolio backend",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		envFile, _ := cmd.Flags().GetString("env-file")
		// a missing .env is normal outside development
		_ = godotenv.Load(envFile)
	},
}

// connect loads config and opens the database. The caller must Close the db.
func connect(ctx context.Context) (*config.Config, *database.PostgresDB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	db := database.NewPostgresDB(cfg.DBConfig())

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	return cfg, db, nil
}

func init() {
	rootCmd.PersistentFlags().String("env-file", ".env", "Environment file to load before running")

	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateDownCmd.Flags().IntP("steps", "n", 1, "Number of migrations to roll back")
	migrateCmd.AddCommand(migrateStatusCmd)

	rootCmd.AddCommand(bootstrapCmd)
	rootCmd.AddCommand(hashPasswordCmd)
	hashPasswordCmd.Flags().Int("cost", 0, "bcrypt cost (0 uses the library default)")
}
