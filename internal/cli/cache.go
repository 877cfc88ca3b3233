package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/is00hcw/genie/pkg/logger"
)

// NewCacheCmd creates the cache command with subcommands
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the file cache",
		Long:  "Clean, show information about, and manage the local file cache",
	}

	cmd.AddCommand(
		newCacheInfoCmd(),
		newCacheCleanCmd(),
		newCacheDirCmd(),
	)

	return cmd
}

func newCacheInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache information",
		Long:  "Display the cache directory, cached file count, and hit/miss statistics",
		RunE:  runCacheInfo,
	}
}

func newCacheCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Clean the file cache",
		Long:  "Remove all cached files to free up disk space",
		RunE:  runCacheClean,
	}
}

func newCacheDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dir",
		Short: "Show the cache directory",
		RunE:  runCacheDir,
	}
}

func runCacheInfo(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fileCache, err := buildCache(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	info, err := fileCache.Info()
	if err != nil {
		return err
	}

	fmt.Printf("Cache Information:\n")
	fmt.Printf("  Directory: %s\n", info.Directory)
	fmt.Printf("  Files: %d\n", info.Files)
	fmt.Printf("  Total Size: %d bytes\n", info.TotalSize)
	return nil
}

func runCacheClean(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fileCache, err := buildCache(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	freed, err := fileCache.Clean()
	if err != nil {
		return err
	}

	logger.Info("cache cleaned", logrus.Fields{"bytes_freed": freed})
	fmt.Printf("Freed %d bytes\n", freed)
	return nil
}

func runCacheDir(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fileCache, err := buildCache(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	fmt.Println(fileCache.BaseDir())
	return nil
}
