package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()
		if err := a.st.Migrate(cmd.Context()); err != nil {
			return err
		}
		a.lg.Infow("schema up to date")
		return nil
	},
}
