package cli

import "strings"

// prefix ranks, lowest first in display order
const (
	rankSingleDash = iota
	rankDoubleDash
	rankSlash
	rankBare
)

func splitPrefix(name string) (prefix, bare string, rank int) {
	switch {
	case strings.HasPrefix(name, "--"):
		return "--", name[2:], rankDoubleDash
	case strings.HasPrefix(name, "-"):
		return "-", name[1:], rankSingleDash
	case strings.HasPrefix(name, "/"):
		return "/", name[1:], rankSlash
	default:
		return "", name, rankBare
	}
}

// DisplayAliases orders names for display: single-dash forms, then
// double-dash forms, then everything else, keeping declaration order inside
// each group. Names that differ only by prefix are collapsed to the one with
// the lowest-ranked prefix, so "-x" wins over "/x" and "--long" over "/long".
func DisplayAliases(names []string) []string {
	type entry struct {
		name string
		rank int
	}

	kept := make(map[string]int, len(names))
	var entries []entry
	for _, name := range names {
		_, bare, rank := splitPrefix(name)
		if i, seen := kept[bare]; seen {
			if rank < entries[i].rank {
				entries[i] = entry{name: name, rank: rank}
			}
			continue
		}
		kept[bare] = len(entries)
		entries = append(entries, entry{name: name, rank: rank})
	}

	out := make([]string, 0, len(entries))
	for rank := rankSingleDash; rank <= rankBare; rank++ {
		for _, e := range entries {
			if e.rank == rank {
				out = append(out, e.name)
			}
		}
	}
	return out
}
