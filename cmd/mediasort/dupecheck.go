package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hestonhamilton/media-sort/internal/config"
	"github.com/hestonhamilton/media-sort/internal/sorter"
)

var dupecheckFlags struct {
	moveDupes   bool
	deleteDupes bool
	near        bool
}

var dupecheckCmd = &cobra.Command{
	Use:   "dupecheck PATH...",
	Short: "Scan existing trees for duplicates in place",
	Long: `Dupecheck scans one or more directories (or single files) for
duplicates among themselves without sorting anything. Quarantined
duplicates go to a dupe/ directory next to the file; later scans skip
those directories, so repeated runs converge.

With --near, pairs of names that are close but not close enough to be
treated as duplicates are listed for manual review.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDupecheck,
}

func init() {
	dupecheckCmd.Flags().BoolVar(&dupecheckFlags.moveDupes, "move-dupes", false, "Move duplicates to a local dupe/ directory")
	dupecheckCmd.Flags().BoolVar(&dupecheckFlags.deleteDupes, "delete-dupes", false, "Delete duplicates permanently")
	dupecheckCmd.Flags().BoolVar(&dupecheckFlags.near, "near", false, "Report near-matching filenames for manual review")
	dupecheckCmd.MarkFlagsMutuallyExclusive("move-dupes", "delete-dupes")

	rootCmd.AddCommand(dupecheckCmd)
}

func runDupecheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg.Duplicates.Action = resolveAction(cfg, dupecheckFlags.moveDupes, dupecheckFlags.deleteDupes)

	log, closeLog := openLogger(cfg)
	defer closeLog()

	store := openHistory(cfg, log)
	if store != nil {
		defer func() { _ = store.Close() }()
	}

	s := newSorter(sorter.Options{
		Policy:      policyFromAction(cfg.Duplicates.Action),
		VerifyBytes: cfg.Compare.VerifyBytes,
	}, log, store)

	rep, err := s.Dupecheck(args, dupecheckFlags.near)
	if err != nil {
		return err
	}
	printSummary(rep)

	for _, nm := range rep.NearMatches {
		fmt.Printf("near match (%.2f): %s <-> %s\n", nm.Score, nm.PathA, nm.PathB)
	}
	return nil
}
