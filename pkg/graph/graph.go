// Package graph materializes the entity store as an in-memory directed
// labeled graph and derives secondary relationships from it.
package graph

import (
	"fmt"
	"sort"

	"github.com/corplink/corplink/pkg/common"
)

// Edge is a role-labeled edge from a person vertex to a company vertex.
type Edge struct {
	Person  string
	Company string
	Role    common.Role
}

// Graph is a directed labeled graph whose vertices are company and person
// identities and whose edges are role relations. Vertices and edges are
// sets: adding a duplicate is a no-op. Company and person namespaces are
// separate, so a company and a person may carry the same literal name.
type Graph struct {
	companies map[string]struct{}
	people    map[string]struct{}
	edges     map[Edge]struct{}
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		companies: make(map[string]struct{}),
		people:    make(map[string]struct{}),
		edges:     make(map[Edge]struct{}),
	}
}

// AddCompany adds a company vertex.
func (g *Graph) AddCompany(name string) {
	g.companies[name] = struct{}{}
}

// AddPerson adds a person vertex.
func (g *Graph) AddPerson(name string) {
	g.people[name] = struct{}{}
}

// AddEdge adds a role-labeled edge from a person to a company. Both
// endpoints must already be present as vertices of the right kind.
func (g *Graph) AddEdge(person, company string, role common.Role) error {
	if _, ok := g.people[person]; !ok {
		return fmt.Errorf("edge source %q is not a person vertex", person)
	}
	if _, ok := g.companies[company]; !ok {
		return fmt.Errorf("edge target %q is not a company vertex", company)
	}
	g.edges[Edge{Person: person, Company: company, Role: role}] = struct{}{}
	return nil
}

// HasCompany reports whether a company vertex exists.
func (g *Graph) HasCompany(name string) bool {
	_, ok := g.companies[name]
	return ok
}

// HasPerson reports whether a person vertex exists.
func (g *Graph) HasPerson(name string) bool {
	_, ok := g.people[name]
	return ok
}

// Companies returns the company identities in sorted order.
func (g *Graph) Companies() []string {
	return sortedKeys(g.companies)
}

// People returns the person identities in sorted order.
func (g *Graph) People() []string {
	return sortedKeys(g.people)
}

// Edges returns the edge set sorted by person, company and role.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Person != out[j].Person {
			return out[i].Person < out[j].Person
		}
		if out[i].Company != out[j].Company {
			return out[i].Company < out[j].Company
		}
		return out[i].Role < out[j].Role
	})
	return out
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return len(g.companies) + len(g.people)
}

// Size returns the number of edges.
func (g *Graph) Size() int {
	return len(g.edges)
}

// Equal reports whether both graphs have the same vertex identities, kind
// tags and labeled edge set.
func (g *Graph) Equal(o *Graph) bool {
	if len(g.companies) != len(o.companies) || len(g.people) != len(o.people) || len(g.edges) != len(o.edges) {
		return false
	}
	for c := range g.companies {
		if _, ok := o.companies[c]; !ok {
			return false
		}
	}
	for p := range g.people {
		if _, ok := o.people[p]; !ok {
			return false
		}
	}
	for e := range g.edges {
		if _, ok := o.edges[e]; !ok {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
