// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pdiddy/originality/internal/identity"
	"github.com/pdiddy/originality/pkg/types"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Create a local login session for history persistence",
	Long: `Login writes a local session identifying the current user. The identity
only gates history persistence; analysis itself never consults it. Without
a session, analyses run anonymously and are not saved.

A uid is generated when not supplied, so repeated logins with the same
--uid keep pointing at the same history.`,
	RunE: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg := appConfig()

	email, _ := cmd.Flags().GetString("email")
	uid, _ := cmd.Flags().GetString("uid")
	if email == "" {
		return fmt.Errorf("--email is required")
	}
	if uid == "" {
		uid = uuid.NewString()
	}

	user := types.User{Email: email, UID: uid}
	if err := identity.Save(cfg.Identity.SessionDir, user); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (uid %s)\n", user.Email, user.UID)
	return nil
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the local login session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig()
		if err := identity.Clear(cfg.Identity.SessionDir); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print the current login session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig()
		user, err := identity.Load(cfg.Identity.SessionDir)
		if err != nil {
			return err
		}
		if user.Anonymous {
			fmt.Println("anonymous")
			return nil
		}
		fmt.Printf("%s (uid %s)\n", user.Email, user.UID)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "account email address")
	loginCmd.Flags().String("uid", "", "account identifier (generated when empty)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
