// Package hierarchy reconstructs the implicit tree encoded by a flat
// record sequence and counts direct children per node.
//
// Depth is positional: a record sits at level L when the L-th hierarchy
// column is its first non-blank one. Row order is the only structural
// signal; a child row is assumed to follow its parent before any
// sibling of the parent appears. That invariant is not verified —
// malformed orderings degrade to wrong counts, never to errors.
package hierarchy

import (
	"strconv"
	"strings"

	"github.com/itsmostafa/treetab/internal/table"
)

// NodesColumn is the name of the derived child-count column.
const NodesColumn = "nodes"

// Level returns the hierarchy level of rec: the index of the first
// hierarchy column holding a non-blank value. ok is false when every
// hierarchy column is blank, in which case the record has no level.
func Level(rec table.Record, hierarchyCols []string) (int, bool) {
	for i, col := range hierarchyCols {
		if strings.TrimSpace(rec[col]) != "" {
			return i, true
		}
	}
	return 0, false
}

// Annotate returns a copy of records with a NodesColumn value added to
// each: the direct-child count for records above the deepest level,
// blank for deepest-level records and records with no level. Input
// records are never mutated.
//
// Worst case is O(n²) in the number of records, since each count scans
// the remaining suffix of the sequence. Fine for tables loaded whole
// into memory, which is the only mode this package supports.
func Annotate(records []table.Record, hierarchyCols []string) []table.Record {
	annotated := make([]table.Record, 0, len(records))

	for i, rec := range records {
		out := make(table.Record, len(rec)+1)
		for k, v := range rec {
			out[k] = v
		}

		level, ok := Level(rec, hierarchyCols)
		if ok && level < len(hierarchyCols)-1 {
			out[NodesColumn] = strconv.Itoa(countChildren(records, i, level, hierarchyCols))
		} else {
			out[NodesColumn] = ""
		}
		annotated = append(annotated, out)
	}

	return annotated
}

// countChildren scans forward from the parent counting records that
// pass isChildOf at the next level down. The first record at or above
// the parent's level ends the parent's subtree and stops the scan;
// without that cutoff, children of later same-level siblings would be
// attributed to this parent.
func countChildren(records []table.Record, parentIdx, parentLevel int, hierarchyCols []string) int {
	childLevel := parentLevel + 1
	if childLevel >= len(hierarchyCols) {
		return 0
	}
	childCol := hierarchyCols[childLevel]
	parent := records[parentIdx]

	count := 0
	for _, rec := range records[parentIdx+1:] {
		level, ok := Level(rec, hierarchyCols)
		if ok && level <= parentLevel {
			break
		}
		if !ok || level != childLevel || strings.TrimSpace(rec[childCol]) == "" {
			continue
		}
		if isChildOf(rec, parent, parentLevel, hierarchyCols) {
			count++
		}
	}
	return count
}

// isChildOf reports whether candidate nests directly under parent. At
// the parent's own level the candidate must be blank where the parent
// is not; at every shallower level the candidate must either repeat
// the parent's value or leave it blank. The blank-or-equal rule is
// deliberate: sources repeat inherited ancestor labels inconsistently,
// and both spellings mean the same nesting.
func isChildOf(candidate, parent table.Record, parentLevel int, hierarchyCols []string) bool {
	for i := 0; i <= parentLevel; i++ {
		col := hierarchyCols[i]
		parentVal := strings.TrimSpace(parent[col])
		candVal := strings.TrimSpace(candidate[col])

		if i == parentLevel {
			if parentVal == "" || candVal != "" {
				return false
			}
		} else if candVal != "" && candVal != parentVal {
			return false
		}
	}
	return true
}
