package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/is00hcw/genie/pkg/logger"
)

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <remote> <destination>",
		Short: "Fetch a remote file through the cache",
		Long: "Fetch a file from a remote location (file://, http://, https://, s3://) " +
			"and place it at the local destination, serving repeated fetches of the " +
			"same remote path from the local cache.",
		Args: cobra.ExactArgs(2),
		RunE: runFetch,
	}
	return cmd
}

func runFetch(cmd *cobra.Command, args []string) error {
	remotePath, destination := args[0], args[1]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fileCache, err := buildCache(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if err := fileCache.Get(cmd.Context(), remotePath, destination); err != nil {
		return err
	}

	logger.Info("fetched file", logrus.Fields{
		"remote":      remotePath,
		"destination": destination,
	})
	return nil
}
