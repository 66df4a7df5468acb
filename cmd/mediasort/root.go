package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "mediasort",
	Short: "Sort media files and resolve duplicates",
	Long: `mediasort - organize media files into a categorized, date-bucketed tree

Files are sorted into <destination>/<category>/<year>/<month>/ and
duplicates are detected by filename similarity plus metadata or content
comparison. Duplicates can be skipped, quarantined, or deleted.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "mediasort.toml", "Path to config file")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("mediasort {{.Version}}\n")
}
