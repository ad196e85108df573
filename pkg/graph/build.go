package graph

import (
	"context"
	"fmt"

	"github.com/corplink/corplink/pkg/logger"
	"github.com/corplink/corplink/pkg/store"
)

// FromStore reads all companies, people and relations from the store and
// returns their graph projection: one kind-tagged vertex per entity, one
// role-labeled edge per relation. Store read failures are returned as-is;
// a partial graph is never returned.
func FromStore(ctx context.Context, st store.EntityStore) (*Graph, error) {
	companies, err := st.Companies(ctx)
	if err != nil {
		return nil, err
	}
	people, err := st.People(ctx)
	if err != nil {
		return nil, err
	}
	relations, err := st.Relations(ctx)
	if err != nil {
		return nil, err
	}

	g := New()
	for _, c := range companies {
		g.AddCompany(c.Name)
	}
	for _, p := range people {
		g.AddPerson(p.Name)
	}
	for _, rel := range relations {
		if err := g.AddEdge(rel.Person, rel.Company, rel.Role); err != nil {
			// Only reachable if the store violates referential integrity.
			return nil, fmt.Errorf("inconsistent store contents: %w", err)
		}
	}

	logger.Debug("[Graph] Built from store", "vertices", g.Order(), "edges", g.Size())
	return g, nil
}
