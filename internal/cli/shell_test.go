package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/corplink/corplink/pkg/common"
	"github.com/corplink/corplink/pkg/graph"
	"github.com/corplink/corplink/pkg/store/sqlite"
)

func newTestShell(t *testing.T, input string) (*Shell, *sqlite.EntityDBStore, *strings.Builder, string) {
	t.Helper()
	dir := t.TempDir()
	st, err := sqlite.Open(filepath.Join(dir, "graph_data.db"))
	if err != nil {
		t.Fatalf("sqlite.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	var out strings.Builder
	sh := New(Params{
		Store:     st,
		In:        strings.NewReader(input),
		Out:       &out,
		Dir:       dir,
		ChartFile: filepath.Join(dir, "chart.html"),
	})
	return sh, st, &out, dir
}

func TestAddCompanyWorkflow(t *testing.T) {
	// Empty shareholder line forces a re-prompt, then two shareholders and
	// a director are linked.
	input := "1\nacme\n\nann, bob\ncleo\n6\n"
	sh, st, out, _ := newTestShell(t, input)

	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "at least one shareholder") {
		t.Fatalf("missing shareholder re-prompt in output:\n%s", out.String())
	}

	ctx := context.Background()
	companies, err := st.Companies(ctx)
	if err != nil {
		t.Fatalf("Companies: %v", err)
	}
	if len(companies) != 1 || companies[0].Name != "Acme" {
		t.Fatalf("companies = %v, want [Acme]", companies)
	}

	people, _ := st.People(ctx)
	var names []string
	for _, p := range people {
		names = append(names, p.Name)
	}
	if !reflect.DeepEqual(names, []string{"Ann", "Bob", "Cleo"}) {
		t.Fatalf("people = %v, want [Ann Bob Cleo]", names)
	}

	rels, _ := st.Relations(ctx)
	want := []common.Relation{
		{Person: "Ann", Company: "Acme", Role: common.RoleShareholder},
		{Person: "Bob", Company: "Acme", Role: common.RoleShareholder},
		{Person: "Cleo", Company: "Acme", Role: common.RoleDirector},
	}
	if !reflect.DeepEqual(rels, want) {
		t.Fatalf("relations = %v, want %v", rels, want)
	}
}

func TestAddCompanyDuplicateRejected(t *testing.T) {
	sh, st, out, _ := newTestShell(t, "1\nACME\n6\n")
	if _, err := st.CreateCompany(context.Background(), "Acme"); err != nil {
		t.Fatalf("seed company: %v", err)
	}

	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), `"Acme" already exists`) {
		t.Fatalf("missing duplicate message in output:\n%s", out.String())
	}

	rels, _ := st.Relations(context.Background())
	if len(rels) != 0 {
		t.Fatalf("duplicate add created relations: %v", rels)
	}
}

func TestSaveAndImportRoundTrip(t *testing.T) {
	ctx := context.Background()

	// First session: build a small graph and save it.
	sh, st, _, dir := newTestShell(t, "3\nexport\n6\n")
	acme, _ := st.UpsertCompany(ctx, "Acme")
	globex, _ := st.UpsertCompany(ctx, "Globex")
	ann, _ := st.UpsertPerson(ctx, "Ann")
	if err := st.AddRelation(ctx, ann, acme, common.RoleShareholder); err != nil {
		t.Fatalf("AddRelation: %v", err)
	}
	if err := st.AddRelation(ctx, ann, globex, common.RoleDirector); err != nil {
		t.Fatalf("AddRelation: %v", err)
	}
	if err := sh.Run(ctx); err != nil {
		t.Fatalf("Run(save): %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "export.json"))
	if err != nil {
		t.Fatalf("saved file: %v", err)
	}
	var doc graph.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("saved file is not valid json: %v", err)
	}
	if len(doc.Nodes) != 3 || len(doc.Edges) != 2 {
		t.Fatalf("saved document has %d nodes, %d edges; want 3, 2", len(doc.Nodes), len(doc.Edges))
	}

	// Second session: import the saved file into a fresh store via the
	// picker (export.json is the only data file in the new directory).
	sh2, st2, _, dir2 := newTestShell(t, "5\n1\n6\n")
	if err := os.WriteFile(filepath.Join(dir2, "export.json"), data, 0o644); err != nil {
		t.Fatalf("copy export: %v", err)
	}
	if err := sh2.Run(ctx); err != nil {
		t.Fatalf("Run(import): %v", err)
	}

	g, err := graph.FromStore(ctx, st2)
	if err != nil {
		t.Fatalf("FromStore: %v", err)
	}
	if g.Order() != 3 || g.Size() != 2 {
		t.Fatalf("imported graph has %d vertices, %d edges; want 3, 2", g.Order(), g.Size())
	}
}

func TestRenderFromStore(t *testing.T) {
	ctx := context.Background()
	sh, st, out, dir := newTestShell(t, "2\n6\n")
	acme, _ := st.UpsertCompany(ctx, "Acme")
	ann, _ := st.UpsertPerson(ctx, "Ann")
	if err := st.AddRelation(ctx, ann, acme, common.RoleDirector); err != nil {
		t.Fatalf("AddRelation: %v", err)
	}

	if err := sh.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Chart written to") {
		t.Fatalf("missing chart confirmation:\n%s", out.String())
	}

	html, err := os.ReadFile(filepath.Join(dir, "chart.html"))
	if err != nil {
		t.Fatalf("chart file: %v", err)
	}
	if !strings.Contains(string(html), "<svg") {
		t.Fatal("chart file has no svg content")
	}
}

func TestInvalidMenuChoice(t *testing.T) {
	sh, _, out, _ := newTestShell(t, "9\n6\n")
	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Invalid choice") {
		t.Fatalf("missing invalid-choice message:\n%s", out.String())
	}
}

func TestListJSONFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.json", "a.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	files, err := ListJSONFiles(dir)
	if err != nil {
		t.Fatalf("ListJSONFiles: %v", err)
	}
	if !reflect.DeepEqual(files, []string{"a.json", "b.json"}) {
		t.Fatalf("files = %v, want [a.json b.json]", files)
	}
}
