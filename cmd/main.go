package main

import (
	"context"
	"os"

	"clinic-records/cmd/bootstrap"
	"clinic-records/config"
	"clinic-records/internal/delivery/dto"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "clinic-records",
		Short:        "Clinical records API for doctors",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", ".env", "path to an env-style config file")

	load := func() (*config.Config, *logrus.Logger, error) {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, nil, err
		}
		return cfg, bootstrap.NewLogger(cfg.App.LogLevel), nil
	}

	root.AddCommand(newServeCommand(load), newMigrateCommand(load), newDoctorCommand(load))
	return root
}

type loader func() (*config.Config, *logrus.Logger, error)

func newServeCommand(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			log.Info("Configuration loaded successfully")

			app, err := bootstrap.New(cfg, log)
			if err != nil {
				return err
			}
			return app.Run()
		},
	}
}

func newMigrateCommand(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or revert database migrations",
	}

	for _, direction := range []string{"up", "down"} {
		cmd.AddCommand(&cobra.Command{
			Use:   direction,
			Short: "Run migrations " + direction,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, log, err := load()
				if err != nil {
					return err
				}
				return bootstrap.Migrate(cfg, log, direction)
			},
		})
	}

	return cmd
}

func newDoctorCommand(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Manage doctor accounts",
	}

	var req dto.CreateDoctorRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a doctor account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}

			doctor, err := bootstrap.CreateDoctor(context.Background(), cfg, log, &req)
			if err != nil {
				return err
			}

			cmd.Printf("Doctor created: %s <%s>\n", doctor.ID, doctor.Email)
			return nil
		},
	}
	create.Flags().StringVar(&req.Email, "email", "", "login email")
	create.Flags().StringVar(&req.Name, "name", "", "display name")
	create.Flags().StringVar(&req.Password, "password", "", "initial password (min 8 characters)")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("password")

	cmd.AddCommand(create)
	return cmd
}
