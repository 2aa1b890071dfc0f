package main

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"portfolio-backend/internal/infrastructure/database/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := migrations.Up(db.Pool); err != nil {
			return err
		}
		return printStatus(cmd, db.Pool)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, _ := cmd.Flags().GetInt("steps")

		_, db, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := migrations.Down(db.Pool, steps); err != nil {
			return err
		}
		return printStatus(cmd, db.Pool)
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the applied schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		return printStatus(cmd, db.Pool)
	},
}

func printStatus(cmd *cobra.Command, pool *pgxpool.Pool) error {
	st, err := migrations.CurrentStatus(pool)
	if err != nil {
		return err
	}

	state := "up to date"
	switch {
	case st.Dirty:
		state = "dirty, fix the failed migration and force the version"
	case !st.UpToDate():
		state = fmt.Sprintf("%d pending", st.Latest-st.Current)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "version %d of %d (%s)\n", st.Current, st.Latest, state)
	return nil
}
