package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/jfmyers9/spindle/internal/config"
	"github.com/jfmyers9/spindle/internal/render"
	"github.com/jfmyers9/spindle/pkg/webapi"
	"github.com/spf13/cobra"
)

var pruneOlderThan time.Duration

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the response cache",
	Long: `Inspect and manage the SQLite response cache.

Cached artists, albums, related artists and audio analyses never expire
on their own. Use 'cache clear' or 'cache prune' to drop them.`,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache statistics",
	Args:  cobra.NoArgs,
	RunE:  runCacheStats,
}

var cacheClearCmd = &cobra.Command{
	Use:       "clear [bucket]",
	Short:     "Remove cached responses",
	Long:      `Remove every cached response, or only those of one bucket.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{webapi.BucketArtist, webapi.BucketRelatedArtists, webapi.BucketAlbum, webapi.BucketAudioAnalysis},
	RunE:      runCacheClear,
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove cached responses older than a given age",
	Args:  cobra.NoArgs,
	RunE:  runCachePrune,
}

func init() {
	cachePruneCmd.Flags().DurationVar(&pruneOlderThan, "older-than", 30*24*time.Hour, "maximum age of entries to keep")
	cacheCmd.AddCommand(cacheStatsCmd, cacheClearCmd, cachePruneCmd)
	rootCmd.AddCommand(cacheCmd)
}

func requireSQLiteCache() error {
	if cfg.CacheMode != config.CacheSQLite && cfg.CacheMode != "" {
		return fmt.Errorf("cache mode is %q; only the sqlite cache can be managed", cfg.CacheMode)
	}
	return nil
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	if err := requireSQLiteCache(); err != nil {
		return err
	}

	store, err := openSQLiteCache(cfg, logger)
	if err != nil {
		return err
	}

	stats, err := store.Stats(cmd.Context())
	if err != nil {
		return err
	}

	render.New(os.Stdout).CacheStats(stats)
	fmt.Println(color.HiBlackString(cfg.CacheDB))
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	if err := requireSQLiteCache(); err != nil {
		return err
	}

	bucket := ""
	if len(args) == 1 {
		bucket = args[0]
	}

	store, err := openSQLiteCache(cfg, logger)
	if err != nil {
		return err
	}

	deleted, err := store.Clear(cmd.Context(), bucket)
	if err != nil {
		return err
	}

	logger.Info().Str("bucket", bucket).Int64("deleted", deleted).Msg("Cleared cache")
	color.New(color.FgGreen).Printf("✓ Removed %d cached responses\n", deleted)
	return nil
}

func runCachePrune(cmd *cobra.Command, args []string) error {
	if err := requireSQLiteCache(); err != nil {
		return err
	}

	store, err := openSQLiteCache(cfg, logger)
	if err != nil {
		return err
	}

	deleted, err := store.Prune(cmd.Context(), pruneOlderThan)
	if err != nil {
		return err
	}

	logger.Info().Dur("older_than", pruneOlderThan).Int64("deleted", deleted).Msg("Pruned cache")
	color.New(color.FgGreen).Printf("✓ Removed %d cached responses older than %s\n", deleted, pruneOlderThan)
	return nil
}
