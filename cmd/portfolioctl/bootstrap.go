package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"portfolio-backend/internal/bootstrap"
	settingsRepo "portfolio-backend/internal/domains/settings/repository"
	settingsService "portfolio-backend/internal/domains/settings/service"
	userRepo "portfolio-backend/internal/domains/user/repository"
	userService "portfolio-backend/internal/domains/user/service"
	"portfolio-backend/pkg/jwt"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Create the first admin and the default settings",
	Long: "Creates the admin from ADMIN_USERNAME, ADMIN_EMAIL and ADMIN_PASSWORD unless an admin " +
		"already exists, then writes the default settings document if there is none.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		users := userService.NewUserService(
			userRepo.NewPostgresRepository(db.Pool),
			jwt.NewManager(cfg.JWT.Secret, cfg.JWTTTL()),
		)
		settings := settingsService.NewSettingsService(settingsRepo.NewPostgresRepository(db.Pool))

		res, err := bootstrap.Run(cmd.Context(), users, settings, cfg.Admin)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if res.AdminCreated {
			fmt.Fprintf(out, "Admin created: %s\n", cfg.Admin.Email)
		} else {
			fmt.Fprintln(out, "Admin already exists, left unchanged")
		}
		if res.SettingsSeeded {
			fmt.Fprintln(out, "Default settings written")
		}
		return nil
	},
}
