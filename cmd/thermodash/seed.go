package main

import (
	"context"

	"github.com/spf13/cobra"

	"thermodash/internal/config"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file>",
	Short: "Load users, sensors and assignments from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()
		if err := a.st.Migrate(cmd.Context()); err != nil {
			return err
		}
		return applySeed(cmd.Context(), a, args[0])
	},
}

func applySeed(ctx context.Context, a *app, path string) error {
	seed, err := config.LoadSeed(path)
	if err != nil {
		return err
	}
	res, err := a.st.ApplySeed(ctx, seed)
	if err != nil {
		return err
	}
	a.lg.Infow("seed applied",
		"file", path,
		"users_created", res.UsersCreated,
		"users_skipped", res.UsersSkipped,
		"sensors", res.Sensors,
		"assignments", res.Assignments,
	)
	return nil
}
