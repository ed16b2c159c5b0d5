package scanner

import (
	"sort"

	"github.com/vvka-141/secretscan/pkg/secretscan"
)

// aggregate accumulates per-file results into the running totals.
// It is owned by a single Scan call; record is its only mutation point.
type aggregate struct {
	root    string
	dirs    map[string]struct{}
	issues  map[string]struct{}
	alerts  int
	skipped int
	scanned int
}

func newAggregate(root string) *aggregate {
	return &aggregate{
		root:   root,
		dirs:   make(map[string]struct{}),
		issues: make(map[string]struct{}),
	}
}

// record applies the increments of one completed file exactly once.
func (a *aggregate) record(r secretscan.FileResult) {
	if r.Outcome == secretscan.OutcomeSkipped {
		a.skipped++
		return
	}

	a.scanned++
	a.alerts += len(r.MatchedRules)
	if len(r.MatchedRules) > 0 {
		a.issues[r.RelativePath] = struct{}{}
	}
	a.dirs[r.Directory] = struct{}{}
}

func (a *aggregate) finalize() secretscan.ScanSummary {
	return secretscan.ScanSummary{
		Root:               a.root,
		DirectoriesVisited: sortedKeys(a.dirs),
		FilesWithIssues:    sortedKeys(a.issues),
		TotalAlerts:        a.alerts,
		SkippedFiles:       a.skipped,
		FilesScanned:       a.scanned,
	}
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
