package sorter

import (
	"github.com/hestonhamilton/media-sort/internal/classify"
	"github.com/hestonhamilton/media-sort/internal/dedupe"
	"github.com/hestonhamilton/media-sort/internal/history"
	"github.com/hestonhamilton/media-sort/internal/relocate"
)

// Dupecheck scans each given path for duplicates within that path's own
// file set and applies the configured policy to later-seen instances.
// The earlier file in traversal order is always the one retained.
//
// Running it twice over an unchanged tree (skip policy) reports the same
// duplicate set both times: comparison state lives only in the report.
func (s *Sorter) Dupecheck(paths []string, near bool) (*Report, error) {
	rep := &Report{RunID: newRunID()}

	for _, root := range paths {
		s.log.Info("starting dupecheck", "path", root)
		s.record(rep, Record{Kind: history.KindRunStarted, SourcePath: root})

		files, err := Scan(root)
		if err != nil {
			s.log.Error("directory access failed", "path", root, "error", err)
			s.record(rep, Record{Kind: history.KindError, SourcePath: root, Detail: err.Error()})
			continue
		}

		s.checkSet(rep, files)

		if near {
			rep.NearMatches = append(rep.NearMatches, dedupe.NearMatches(files)...)
		}
	}
	return rep, nil
}

// checkSet runs the pairwise comparison over one input set. Quadratic
// over the set size; accepted for personal-collection scale.
func (s *Sorter) checkSet(rep *Report, files []string) {
	flagged := make(map[string]bool)

	for i, path := range files {
		if flagged[path] {
			continue
		}
		for _, other := range files[i+1:] {
			if flagged[other] {
				continue
			}
			if !s.engine.Identical(path, other) {
				continue
			}

			flagged[other] = true
			s.handleScanDuplicate(rep, other, path)
		}
	}
}

// handleScanDuplicate applies the policy to a duplicate found in scan
// mode, where quarantine means a local dupe/ directory beside the file.
func (s *Sorter) handleScanDuplicate(rep *Report, path, original string) {
	category := classify.Categorize(path)
	s.log.Info("duplicate found", "path", path, "duplicate_of", original)
	s.record(rep, Record{
		Kind:       history.KindDuplicateFound,
		SourcePath: path,
		Category:   category.String(),
		Detail:     "duplicate of " + original,
	})

	switch s.opts.Policy {
	case relocate.PolicyQuarantine:
		dest, err := relocate.QuarantineLocal(path)
		if err != nil {
			s.fileError(rep, path, category, err)
			return
		}
		s.log.Info("moved duplicate", "src", path, "dest", dest)
		s.record(rep, Record{Kind: history.KindDuplicateMoved, SourcePath: path, DestPath: dest, Category: category.String()})
	case relocate.PolicyDelete:
		if _, err := s.reloc.Relocate(path, relocate.PolicyDelete); err != nil {
			s.fileError(rep, path, category, err)
			return
		}
		s.record(rep, Record{Kind: history.KindDuplicateDeleted, SourcePath: path, Category: category.String()})
	default:
		rep.Skipped++
	}
}
