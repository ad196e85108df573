package graph

import (
	"reflect"
	"testing"

	"github.com/corplink/corplink/pkg/common"
)

func graphFrom(t *testing.T, companies, people []string, edges []Edge) *Graph {
	t.Helper()
	g := New()
	for _, c := range companies {
		g.AddCompany(c)
	}
	for _, p := range people {
		g.AddPerson(p)
	}
	for _, e := range edges {
		if err := g.AddEdge(e.Person, e.Company, e.Role); err != nil {
			t.Fatalf("AddEdge(%+v): %v", e, err)
		}
	}
	return g
}

func TestPairOf(t *testing.T) {
	if PairOf("Globex", "Acme") != (Pair{A: "Acme", B: "Globex"}) {
		t.Fatal("PairOf did not order the pair")
	}
	if PairOf("Acme", "Globex") != PairOf("Globex", "Acme") {
		t.Fatal("PairOf is not symmetric")
	}
}

func TestCommonConnections(t *testing.T) {
	tests := []struct {
		name      string
		companies []string
		people    []string
		edges     []Edge
		want      map[Pair][]string
	}{
		{
			name:      "empty graph",
			companies: nil,
			people:    nil,
			edges:     nil,
			want:      map[Pair][]string{},
		},
		{
			name:      "no person spans two companies",
			companies: []string{"Acme", "Globex"},
			people:    []string{"Ann", "Bob"},
			edges: []Edge{
				{Person: "Ann", Company: "Acme", Role: common.RoleShareholder},
				{Person: "Bob", Company: "Globex", Role: common.RoleDirector},
			},
			want: map[Pair][]string{},
		},
		{
			name:      "single shared person across roles",
			companies: []string{"Acme", "Globex"},
			people:    []string{"Ann", "Bob"},
			edges: []Edge{
				{Person: "Ann", Company: "Acme", Role: common.RoleShareholder},
				{Person: "Ann", Company: "Globex", Role: common.RoleDirector},
				{Person: "Bob", Company: "Globex", Role: common.RoleShareholder},
			},
			want: map[Pair][]string{
				{A: "Acme", B: "Globex"}: {"Ann"},
			},
		},
		{
			name:      "both roles at same company count once",
			companies: []string{"Acme", "Globex"},
			people:    []string{"Ann"},
			edges: []Edge{
				{Person: "Ann", Company: "Acme", Role: common.RoleShareholder},
				{Person: "Ann", Company: "Acme", Role: common.RoleDirector},
				{Person: "Ann", Company: "Globex", Role: common.RoleShareholder},
			},
			want: map[Pair][]string{
				{A: "Acme", B: "Globex"}: {"Ann"},
			},
		},
		{
			name:      "person connecting three companies yields all pairs",
			companies: []string{"Acme", "Globex", "Initech"},
			people:    []string{"Ann"},
			edges: []Edge{
				{Person: "Ann", Company: "Acme", Role: common.RoleShareholder},
				{Person: "Ann", Company: "Globex", Role: common.RoleShareholder},
				{Person: "Ann", Company: "Initech", Role: common.RoleDirector},
			},
			want: map[Pair][]string{
				{A: "Acme", B: "Globex"}:   {"Ann"},
				{A: "Acme", B: "Initech"}:  {"Ann"},
				{A: "Globex", B: "Initech"}: {"Ann"},
			},
		},
		{
			name:      "witness set is the exact intersection",
			companies: []string{"Acme", "Globex"},
			people:    []string{"Ann", "Bob", "Cleo"},
			edges: []Edge{
				{Person: "Ann", Company: "Acme", Role: common.RoleShareholder},
				{Person: "Ann", Company: "Globex", Role: common.RoleDirector},
				{Person: "Bob", Company: "Acme", Role: common.RoleDirector},
				{Person: "Bob", Company: "Globex", Role: common.RoleShareholder},
				{Person: "Cleo", Company: "Acme", Role: common.RoleShareholder},
			},
			want: map[Pair][]string{
				{A: "Acme", B: "Globex"}: {"Ann", "Bob"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := graphFrom(t, tc.companies, tc.people, tc.edges)
			got := CommonConnections(g)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("CommonConnections = %v, want %v", got, tc.want)
			}
		})
	}
}
