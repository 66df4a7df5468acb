package main

import (
	"github.com/spf13/cobra"

	"github.com/hestonhamilton/media-sort/internal/config"
	"github.com/hestonhamilton/media-sort/internal/sorter"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup TARGET",
	Short: "Migrate legacy per-bucket dupe/ directories",
	Long: `Cleanup migrates the legacy quarantine layout, where duplicates
sat in a dupe/ directory inside each date bucket, to the current
<category>/duplicates/<year>/<month>/ layout. Emptied dupe/ directories
are removed.`,
	Args: cobra.ExactArgs(1),
	RunE: runCleanup,
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
}

func runCleanup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, closeLog := openLogger(cfg)
	defer closeLog()

	return sorter.Cleanup(args[0], log)
}
