package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jfmyers9/spindle/internal/render"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog",
	Long: `Search the catalog for artists, albums, tracks and playlists.

All remaining arguments are joined into the query, so quoting is optional:

  spindle search daft punk`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, err := apiClient(cmd.Context())
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	results, err := client.Search(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	render.New(os.Stdout).SearchResults(results)
	return nil
}
