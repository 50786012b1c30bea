package domain

import (
	"slices"
	"sort"
	"strings"
)

// minClusterTools is the smallest cluster worth proposing as a theme
const minClusterTools = 2

// DiscoverThemes clusters tool records into candidate thematic groups and
// scores each one.
//
// Clustering rule: connected components over the tag co-occurrence graph.
// Nodes are normalized tags carried by at least two tools; two tags are
// connected when some tool carries both. Each component becomes one candidate
// containing every tool that carries any of the component's tags. Components
// spanning fewer than two tools are dropped.
//
// The result is sorted by confidence descending, then name, so output is
// deterministic regardless of input order.
func DiscoverThemes(tools []ToolRecord) []ThemeCandidate {
	// Tag -> tools carrying it (normalized)
	tagTools := map[string][]int{}
	for i, tool := range tools {
		for _, tag := range tool.NormalizedTags() {
			tagTools[tag] = append(tagTools[tag], i)
		}
	}

	// Shared tags only: a tag unique to one tool cannot link anything
	var shared []string
	for tag, members := range tagTools {
		if len(members) >= 2 {
			shared = append(shared, tag)
		}
	}
	sort.Strings(shared)

	// Union shared tags that co-occur on a tool
	uf := newUnionFind(len(shared))
	tagIdx := make(map[string]int, len(shared))
	for i, tag := range shared {
		tagIdx[tag] = i
	}
	for _, tool := range tools {
		tags := tool.NormalizedTags()
		first := -1
		for _, tag := range tags {
			idx, ok := tagIdx[tag]
			if !ok {
				continue
			}
			if first < 0 {
				first = idx
				continue
			}
			uf.union(first, idx)
		}
	}

	// Collect components
	components := map[int][]string{}
	for i, tag := range shared {
		root := uf.find(i)
		components[root] = append(components[root], tag)
	}

	var candidates []ThemeCandidate
	for _, tags := range components {
		c, ok := buildCandidate(tags, tagTools, tools)
		if ok {
			candidates = append(candidates, c)
		}
	}

	slices.SortFunc(candidates, func(a, b ThemeCandidate) int {
		if a.Confidence != b.Confidence {
			if a.Confidence > b.Confidence {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
	return candidates
}

// buildCandidate assembles one ThemeCandidate from a tag component
func buildCandidate(tags []string, tagTools map[string][]int, tools []ToolRecord) (ThemeCandidate, bool) {
	memberSet := map[int]struct{}{}
	for _, tag := range tags {
		for _, i := range tagTools[tag] {
			memberSet[i] = struct{}{}
		}
	}
	if len(memberSet) < minClusterTools {
		return ThemeCandidate{}, false
	}

	members := make([]int, 0, len(memberSet))
	for i := range memberSet {
		members = append(members, i)
	}
	sort.Ints(members)

	var names, categories []string
	for _, i := range members {
		names = append(names, tools[i].Name)
		if cat := tools[i].Category; cat != "" && !slices.Contains(categories, cat) {
			categories = append(categories, cat)
		}
	}
	sort.Strings(names)
	sort.Strings(categories)

	// Keywords: component tags by descending member count, then alphabetically
	keywords := append([]string(nil), tags...)
	slices.SortFunc(keywords, func(a, b string) int {
		if d := len(tagTools[b]) - len(tagTools[a]); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})

	return ThemeCandidate{
		Name:       candidateName(keywords[0]),
		Tools:      names,
		Keywords:   keywords,
		Categories: categories,
		Confidence: ConfidenceScore(len(members), len(keywords), len(categories)),
	}, true
}

// candidateName turns the dominant tag into a display name ("code-review" ->
// "Code Review")
func candidateName(tag string) string {
	parts := strings.Split(tag, "-")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// ConfidenceScore estimates how strongly a cluster represents a coherent
// theme. Monotone non-decreasing in every argument, clamped to [0, 1].
func ConfidenceScore(toolCount, keywordCount, categoryCount int) float64 {
	confidence := 0.0

	switch {
	case toolCount >= 5:
		confidence += 0.4
	case toolCount >= 3:
		confidence += 0.3
	default:
		confidence += 0.15
	}

	switch {
	case keywordCount >= 3:
		confidence += 0.2
	case keywordCount >= 2:
		confidence += 0.1
	}

	switch {
	case categoryCount >= 2:
		confidence += 0.2
	case categoryCount == 1:
		confidence += 0.1
	}

	return min(confidence, 1.0)
}

// unionFind is a plain union-find over integer indexes
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[rb] = ra
	}
}
