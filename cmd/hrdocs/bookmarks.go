// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/techvista/hrdocs/internal/render"
	"github.com/techvista/hrdocs/pkg/types"
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List personal favorites and shared team bookmarks",
	Long: `Bookmarks lists the shared team bookmarks and, when an identity is
available, the user's personal favorites. The identity comes from --user
or the portal-email secret; without one the favorites section is skipped
rather than fetched.`,
	RunE: runBookmarks,
}

func init() {
	bookmarksCmd.Flags().String("user", "", "act as this user (default: portal-email secret)")
	bookmarksCmd.Flags().Bool("json", false, "output bookmarks as JSON")
	rootCmd.AddCommand(bookmarksCmd)
}

func runBookmarks(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	client, err := newPortalClient(cfg.Portal, newLogger(cmd), nil)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	var favorites []types.Document
	user := identity(cmd)
	if user != "" {
		favorites, err = client.Favorites(ctx, user)
		if err != nil {
			return fmt.Errorf("fetching favorites: %w", err)
		}
	}

	shared, err := client.SharedBookmarks(ctx)
	if err != nil {
		return fmt.Errorf("fetching team bookmarks: %w", err)
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return render.JSON(out, append(append([]types.Document{}, favorites...), shared...))
	}

	if user != "" {
		fmt.Fprintf(out, "Favorites (%s)\n", user)
		render.Table(out, favorites)
		fmt.Fprintln(out)
	} else {
		fmt.Fprintln(out, "No identity; favorites skipped. Use --user or the portal-email secret.")
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, "Team bookmarks")
	render.Table(out, shared)
	return nil
}
