package main

import (
	"github.com/spf13/cobra"

	"github.com/hestonhamilton/media-sort/internal/config"
	"github.com/hestonhamilton/media-sort/internal/sorter"
)

var sortFlags struct {
	source      string
	dest        string
	mode        string
	logPath     string
	moveDupes   bool
	deleteDupes bool
}

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort a source tree into the destination tree",
	Long: `Sort walks the source tree and copies each file into
<destination>/<category>/<year>/<month>/ (or <destination>/<category>/
in type mode). Files judged duplicates of something already placed this
run are skipped, quarantined, or deleted per the duplicate policy.

Per-file failures are logged and recorded; they never abort the run.`,
	RunE: runSort,
}

func init() {
	sortCmd.Flags().StringVarP(&sortFlags.source, "source", "s", "", "Source directory to sort")
	sortCmd.Flags().StringVarP(&sortFlags.dest, "dest", "d", "", "Destination root")
	sortCmd.Flags().StringVarP(&sortFlags.mode, "mode", "m", "", "Bucket mode: date or type")
	sortCmd.Flags().StringVarP(&sortFlags.logPath, "log", "l", "", "Log file path")
	sortCmd.Flags().BoolVar(&sortFlags.moveDupes, "move-dupes", false, "Quarantine duplicates under <destination>/duplicates/")
	sortCmd.Flags().BoolVar(&sortFlags.deleteDupes, "delete-dupes", false, "Delete duplicates permanently")
	sortCmd.MarkFlagsMutuallyExclusive("move-dupes", "delete-dupes")

	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if sortFlags.source != "" {
		cfg.Sort.Source = sortFlags.source
	}
	if sortFlags.dest != "" {
		cfg.Sort.Destination = sortFlags.dest
	}
	if sortFlags.mode != "" {
		cfg.Sort.Mode = sortFlags.mode
	}
	if sortFlags.logPath != "" {
		cfg.Log.Path = sortFlags.logPath
	}
	cfg.Duplicates.Action = resolveAction(cfg, sortFlags.moveDupes, sortFlags.deleteDupes)

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.ValidateSort(); err != nil {
		return err
	}

	log, closeLog := openLogger(cfg)
	defer closeLog()

	store := openHistory(cfg, log)
	if store != nil {
		defer func() { _ = store.Close() }()
	}

	s := newSorter(sorter.Options{
		Source:      cfg.Sort.Source,
		Destination: cfg.Sort.Destination,
		ByDate:      cfg.Sort.Mode == "date",
		Policy:      policyFromAction(cfg.Duplicates.Action),
		VerifyBytes: cfg.Compare.VerifyBytes,
	}, log, store)

	rep, err := s.Run()
	if err != nil {
		return err
	}
	printSummary(rep)
	return nil
}
