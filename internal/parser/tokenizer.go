package parser

import (
	"sort"
	"strings"
)

// Argument prefixes.
const (
	PrefixName      = "n/"
	PrefixPhone     = "p/"
	PrefixEmail     = "e/"
	PrefixAddress   = "a/"
	PrefixRole      = "r/"
	PrefixTag       = "t/"
	PrefixNewRole   = "nr/"
	PrefixTitle     = "t/"
	PrefixStartDate = "s/"
	PrefixDuration  = "d/"
	PrefixRemarks   = "r/"
)

// argMap holds the text before the first prefix and every value per prefix.
type argMap struct {
	preamble string
	values   map[string][]string
}

func (a argMap) value(prefix string) (string, bool) {
	vs := a.values[prefix]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

func (a argMap) all(prefix string) []string { return a.values[prefix] }

func (a argMap) duplicated(prefixes ...string) []string {
	var out []string
	for _, p := range prefixes {
		if len(a.values[p]) > 1 {
			out = append(out, p)
		}
	}
	return out
}

type prefixPos struct {
	prefix string
	start  int
}

// tokenize splits args on the given prefixes. A prefix only counts at the start
// of args or after whitespace.
func tokenize(args string, prefixes ...string) argMap {
	padded := " " + args
	var found []prefixPos
	for _, p := range prefixes {
		from := 0
		for {
			i := strings.Index(padded[from:], " "+p)
			if i < 0 {
				break
			}
			found = append(found, prefixPos{prefix: p, start: from + i + 1})
			from += i + 1
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].start < found[j].start })

	out := argMap{values: make(map[string][]string)}
	end := len(padded)
	if len(found) > 0 {
		end = found[0].start
	}
	out.preamble = strings.TrimSpace(padded[:end])
	for i, f := range found {
		stop := len(padded)
		if i+1 < len(found) {
			stop = found[i+1].start
		}
		out.values[f.prefix] = append(out.values[f.prefix], strings.TrimSpace(padded[f.start+len(f.prefix):stop]))
	}
	return out
}
