package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jfmyers9/spindle/internal/auth"
	"github.com/jfmyers9/spindle/internal/config"
	"github.com/spf13/cobra"
)

var authTokenFile string

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Configure Spotify API credentials",
	Long: `Configure the credentials spindle uses to call the Spotify Web API.

This command will guide you through the setup:
1. You'll be prompted to enter your app's client ID and secret
2. The credentials are checked by requesting an app token
3. The credentials are saved to your config file

Catalog commands work with app credentials alone. Library, playlist and
profile commands need a user token: pass --token-file with a saved OAuth
token (JSON with access_token and refresh_token) to import one.

You can create an app at: https://developer.spotify.com/dashboard`,
	Args: cobra.NoArgs,
	RunE: runAuth,
}

func init() {
	authCmd.Flags().StringVar(&authTokenFile, "token-file", "", "import a saved user token from this file")
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Spotify Authentication")
	fmt.Println("======================")
	fmt.Println()
	fmt.Println("You can create an app at: https://developer.spotify.com/dashboard")
	fmt.Println()

	// Check if we already have credentials
	if cfg.ClientID != "" && cfg.ClientSecret != "" {
		fmt.Printf("Found existing client credentials.\n")
		fmt.Printf("Client ID: %s\n", cfg.ClientID)
		fmt.Print("\nUse existing credentials? [Y/n]: ")
		response, err := reader.ReadString('\n')
		if err != nil {
			response = "y"
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "" && response != "y" && response != "yes" {
			cfg.ClientID = ""
			cfg.ClientSecret = ""
		}
	}

	if cfg.ClientID == "" {
		fmt.Print("Enter your Client ID: ")
		clientID, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read client ID: %w", err)
		}
		cfg.ClientID = strings.TrimSpace(clientID)
	}

	if cfg.ClientSecret == "" {
		fmt.Print("Enter your Client Secret: ")
		clientSecret, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read client secret: %w", err)
		}
		cfg.ClientSecret = strings.TrimSpace(clientSecret)
	}

	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return fmt.Errorf("client ID and secret are required")
	}

	fmt.Println("\nRequesting an app token...")
	src := auth.ClientCredentials(ctx, auth.Options{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
	})
	if _, err := src.Token(); err != nil {
		return fmt.Errorf("credentials were rejected: %w", err)
	}
	fmt.Println("✓ Credentials are valid")

	if authTokenFile != "" {
		if err := importToken(authTokenFile); err != nil {
			return err
		}
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	configPath := config.GetConfigDir()
	fmt.Printf("✓ Credentials saved to %s\n", filepath.Join(configPath, "config.yaml"))
	fmt.Println("\nTry 'spindle search <query>' to get started.")

	return nil
}

// importToken copies a saved user token to the configured token file
func importToken(path string) error {
	tok, err := auth.LoadToken(path)
	if err != nil {
		return err
	}

	if cfg.TokenFile == "" {
		cfg.TokenFile = filepath.Join(config.GetConfigDir(), "token.json")
	}
	if err := auth.SaveToken(cfg.TokenFile, tok); err != nil {
		return err
	}

	fmt.Printf("✓ User token saved to %s\n", cfg.TokenFile)
	return nil
}
