package cli

import (
	"context"
	"fmt"

	"github.com/is00hcw/genie/pkg/cache"
	"github.com/is00hcw/genie/pkg/config"
	"github.com/is00hcw/genie/pkg/logger"
	"github.com/is00hcw/genie/pkg/transfer"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
	NoColor    *bool
)

// loadConfig loads the configuration honoring the global CLI flags.
func loadConfig() (*config.Config, error) {
	configPath := ""
	if ConfigPath != nil {
		configPath = *ConfigPath
	}

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
	} else {
		defaultPath, pathErr := config.GetDefaultConfigPath()
		if pathErr != nil {
			return nil, fmt.Errorf("failed to get default config path: %w", pathErr)
		}
		cfg, err = config.LoadConfig(defaultPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logLevel := cfg.Settings.LogLevel
	if Verbose != nil && *Verbose {
		logLevel = "debug"
	}
	noColor := NoColor != nil && *NoColor
	logger.InitLogger(logLevel, noColor)

	return cfg, nil
}

// buildCache constructs the file cache with all built-in transfer backends
// registered.
func buildCache(ctx context.Context, cfg *config.Config) (*cache.FileCache, error) {
	registry := transfer.NewRegistry()

	local := transfer.NewLocal()
	registry.Register(transfer.SchemeFile, local)

	httpTransferer := transfer.NewHTTP(cfg.Settings.HTTPTimeout, cfg.Settings.UserAgent)
	registry.Register(transfer.SchemeHTTP, httpTransferer)
	registry.Register(transfer.SchemeHTTPS, httpTransferer)

	s3Transferer, err := transfer.NewS3(ctx, transfer.S3Options{
		Region:         cfg.Settings.S3.Region,
		Endpoint:       cfg.Settings.S3.Endpoint,
		ForcePathStyle: cfg.Settings.S3.ForcePathStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 backend: %w", err)
	}
	registry.Register(transfer.SchemeS3, s3Transferer)

	fileCache, err := cache.New(cfg.Settings.CacheDir, registry, local)
	if err != nil {
		return nil, fmt.Errorf("failed to create file cache: %w", err)
	}
	return fileCache, nil
}
