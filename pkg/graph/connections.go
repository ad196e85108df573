package graph

// Pair is an unordered pair of distinct company identities, stored with
// A < B so (x, y) and (y, x) map to the same key.
type Pair struct {
	A string
	B string
}

// PairOf returns the canonical Pair for two companies.
func PairOf(x, y string) Pair {
	if x > y {
		x, y = y, x
	}
	return Pair{A: x, B: y}
}

// CommonConnections computes, for every unordered pair of companies, the set
// of people linked to both through any role. A pair is present in the result
// iff its witness set is non-empty; witness lists are sorted and free of
// duplicates. Each unordered pair is visited once, so the cost is
// O(sum of person-degree squared).
func CommonConnections(g *Graph) map[Pair][]string {
	// Role is deliberately dropped: a shareholder of A who directs B still
	// connects A and B.
	byPerson := make(map[string]map[string]struct{})
	for e := range g.edges {
		set, ok := byPerson[e.Person]
		if !ok {
			set = make(map[string]struct{})
			byPerson[e.Person] = set
		}
		set[e.Company] = struct{}{}
	}

	acc := make(map[Pair]map[string]struct{})
	for person, companies := range byPerson {
		if len(companies) < 2 {
			continue
		}
		list := sortedKeys(companies)
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				pair := Pair{A: list[i], B: list[j]}
				set, ok := acc[pair]
				if !ok {
					set = make(map[string]struct{})
					acc[pair] = set
				}
				set[person] = struct{}{}
			}
		}
	}

	out := make(map[Pair][]string, len(acc))
	for pair, people := range acc {
		out[pair] = sortedKeys(people)
	}
	return out
}
