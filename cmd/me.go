package cmd

import (
	"fmt"
	"os"

	"github.com/jfmyers9/spindle/internal/render"
	"github.com/spf13/cobra"
)

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the current user's profile",
	Long: `Show the profile of the user the configured token belongs to.

Requires a user token (access_token or token_file); app-only client
credentials have no user.`,
	Args: cobra.NoArgs,
	RunE: runMe,
}

func init() {
	rootCmd.AddCommand(meCmd)
}

func runMe(cmd *cobra.Command, args []string) error {
	client, err := apiClient(cmd.Context())
	if err != nil {
		return err
	}

	profile, err := client.GetUserProfile(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	render.New(os.Stdout).Profile(profile)
	return nil
}
