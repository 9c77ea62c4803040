// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite <document-id>",
	Short: "Add a document to the acting user's favorites",
	Long: `Favorite records a document in the acting user's favorites list on the
portal. An identity is required; without --user or the portal-email
secret the command refuses before any network call is made.`,
	Args: cobra.ExactArgs(1),
	RunE: runFavorite,
}

func init() {
	favoriteCmd.Flags().String("user", "", "act as this user (default: portal-email secret)")
	rootCmd.AddCommand(favoriteCmd)
}

func runFavorite(cmd *cobra.Command, args []string) error {
	user := identity(cmd)
	if user == "" {
		return errors.New("sign-in required: set --user or the portal-email secret")
	}

	cfg := loadConfig()
	client, err := newPortalClient(cfg.Portal, newLogger(cmd), nil)
	if err != nil {
		return err
	}

	if err := client.AddFavorite(cmd.Context(), user, args[0]); err != nil {
		return fmt.Errorf("saving favorite: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites for %s\n", args[0], user)
	return nil
}
