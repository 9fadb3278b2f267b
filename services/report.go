package services

import (
	"sort"
	"strconv"
)

// ProjectRounds returns the ordered set of distinct round identifiers
// appearing anywhere in the document. Identifiers that parse fully as numbers
// sort numerically among themselves; any pair involving a non-numeric
// identifier sorts by raw string ordering. Duplicates collapse.
func ProjectRounds(doc Document) []string {
	seen := make(map[string]struct{})
	var rounds []string
	for _, group := range doc.Groups {
		for _, item := range group.Items {
			for _, v := range item.Variations {
				if _, ok := seen[v.Round]; ok {
					continue
				}
				seen[v.Round] = struct{}{}
				rounds = append(rounds, v.Round)
			}
		}
	}

	sort.Slice(rounds, func(i, j int) bool {
		return lessRound(rounds[i], rounds[j])
	})
	return rounds
}

// lessRound orders two round identifiers: a fully numeric pair compares as
// numbers, any pair involving a free-text label compares as raw strings.
func lessRound(a, b string) bool {
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		if na != nb {
			return na < nb
		}
		return a < b
	}
	return a < b
}

// RoundLabel renders a column header for a round identifier. Fully numeric
// identifiers become "Variant no. N"; free-text labels pass through verbatim.
func RoundLabel(round string) string {
	if _, err := strconv.ParseFloat(round, 64); err == nil {
		return "Variant no. " + round
	}
	return round
}

// RoundCell is one cell of the item-by-round matrix. Present is false when
// the item has no variation for the round at all; that state renders as a
// dash and is distinct from a present cell whose quantities happen to be
// zero. Variations keep stored order and are never pre-netted, so an
// increase and a decrease in the same round show as separate entries.
type RoundCell struct {
	Present    bool
	Variations []Variation
}

// ProjectRow builds the per-round cells for one item against the
// document-wide round list.
func ProjectRow(item WorkItem, rounds []string) []RoundCell {
	cells := make([]RoundCell, len(rounds))
	for i, round := range rounds {
		for _, v := range item.Variations {
			if v.Round == round {
				cells[i].Present = true
				cells[i].Variations = append(cells[i].Variations, v)
			}
		}
	}
	return cells
}
