package render

import (
	"strings"
	"testing"

	"github.com/corplink/corplink/pkg/common"
	"github.com/corplink/corplink/pkg/graph"
)

func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	g.AddCompany("Acme")
	g.AddCompany("Globex")
	g.AddPerson("Ann")
	g.AddPerson("Bob")
	for _, e := range []struct {
		person, company string
		role            common.Role
	}{
		{"Ann", "Acme", common.RoleShareholder},
		{"Ann", "Globex", common.RoleDirector},
		{"Bob", "Globex", common.RoleShareholder},
	} {
		if err := g.AddEdge(e.person, e.company, e.role); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	return g
}

func TestHTML(t *testing.T) {
	g := testGraph(t)
	conns := graph.CommonConnections(g)

	var sb strings.Builder
	if err := HTML(&sb, g, conns); err != nil {
		t.Fatalf("HTML: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"<svg",
		"Acme", "Globex", "Ann", "Bob",
		`class="relation"`,
		`class="shared"`,
		"Acme and Globex share: Ann",
		"Ann is director of Globex",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q", want)
		}
	}

	// 3 relation edges and 1 shared link.
	if got := strings.Count(out, `class="relation"`); got != 3 {
		t.Fatalf("relation line count = %d, want 3", got)
	}
	if got := strings.Count(out, `class="shared"`); got != 1 {
		t.Fatalf("shared line count = %d, want 1", got)
	}
}

func TestHTMLEmptyGraph(t *testing.T) {
	var sb strings.Builder
	if err := HTML(&sb, graph.New(), nil); err != nil {
		t.Fatalf("HTML on empty graph: %v", err)
	}
	if !strings.Contains(sb.String(), "<svg") {
		t.Fatal("output missing svg element")
	}
}
