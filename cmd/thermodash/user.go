package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"thermodash/internal/auth"
	"thermodash/internal/models"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userAddFlags struct {
	email    string
	phone    string
	role     string
	password string
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := models.ParseRole(userAddFlags.role)
		if err != nil {
			return err
		}
		digest, err := auth.HashPassword(userAddFlags.password)
		if err != nil {
			return err
		}
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()
		if err := a.st.Migrate(cmd.Context()); err != nil {
			return err
		}
		id, err := a.st.AddUser(cmd.Context(), userAddFlags.email, userAddFlags.phone, role, digest)
		if err != nil {
			return err
		}
		a.lg.Infow("user created", "user_id", id, "email", userAddFlags.email, "role", role.String())
		fmt.Fprintln(cmd.OutOrStdout(), id)
		return nil
	},
}

func init() {
	f := userAddCmd.Flags()
	f.StringVar(&userAddFlags.email, "email", "", "login email")
	f.StringVar(&userAddFlags.phone, "phone", "", "phone number")
	f.StringVar(&userAddFlags.role, "role", "user", "admin or user")
	f.StringVar(&userAddFlags.password, "password", "", "initial password")
	_ = userAddCmd.MarkFlagRequired("email")
	_ = userAddCmd.MarkFlagRequired("password")
	userCmd.AddCommand(userAddCmd)
}
