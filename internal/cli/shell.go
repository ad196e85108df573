// Package cli implements the interactive menu shell around the entity
// store: adding companies with their shareholders and director, rendering
// the graph, and exchanging graph document files.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/corplink/corplink/pkg/common"
	"github.com/corplink/corplink/pkg/graph"
	"github.com/corplink/corplink/pkg/render"
	"github.com/corplink/corplink/pkg/store"
)

// Shell runs the interactive menu loop against an entity store.
type Shell struct {
	store     store.EntityStore
	in        *bufio.Scanner
	out       io.Writer
	dir       string
	chartFile string
}

// Params configures a Shell. Dir is where graph document files are listed
// and written; ChartFile is the HTML output path for rendered charts.
type Params struct {
	Store     store.EntityStore
	In        io.Reader
	Out       io.Writer
	Dir       string
	ChartFile string
}

// New creates a Shell.
func New(params Params) *Shell {
	return &Shell{
		store:     params.Store,
		in:        bufio.NewScanner(params.In),
		out:       params.Out,
		dir:       params.Dir,
		chartFile: params.ChartFile,
	}
}

// Run executes the menu loop until the user quits or input ends. Operation
// failures are reported and the loop continues; only input exhaustion ends
// the session.
func (s *Shell) Run(ctx context.Context) error {
	for {
		fmt.Fprint(s.out, "\nMain menu:\n"+
			"1. Add a company\n"+
			"2. Render the graph from the database\n"+
			"3. Save the graph to a file\n"+
			"4. Render a graph from a file\n"+
			"5. Import a file into the database\n"+
			"6. Quit\n")

		choice, ok := s.prompt("Choose an action: ")
		if !ok {
			return nil
		}

		var err error
		switch choice {
		case "1":
			err = s.addCompany(ctx)
		case "2":
			err = s.renderFromStore(ctx)
		case "3":
			err = s.saveGraph(ctx)
		case "4":
			err = s.renderFromFile()
		case "5":
			err = s.importFile(ctx)
		case "6":
			fmt.Fprintln(s.out, "Bye.")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice, try again.")
		}
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

var errInputClosed = errors.New("input closed")

func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// addCompany runs the add-company workflow: the company itself is an
// explicit creation (duplicates rejected), people are upserted lazily and
// linked as they are named.
func (s *Shell) addCompany(ctx context.Context) error {
	name, ok := s.prompt("Company name: ")
	if !ok {
		return errInputClosed
	}
	if name == "" {
		fmt.Fprintln(s.out, "The name must not be empty.")
		return nil
	}

	companyID, err := s.store.CreateCompany(ctx, name)
	if errors.Is(err, store.ErrDuplicateName) {
		fmt.Fprintf(s.out, "Company %q already exists.\n", common.NormalizeName(name))
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Company %q added.\n", common.NormalizeName(name))

	for {
		raw, ok := s.prompt("Shareholders (comma-separated): ")
		if !ok {
			return errInputClosed
		}
		var shareholders []string
		for _, part := range strings.Split(raw, ",") {
			if p := strings.TrimSpace(part); p != "" {
				shareholders = append(shareholders, p)
			}
		}
		if len(shareholders) == 0 {
			fmt.Fprintln(s.out, "A company needs at least one shareholder.")
			continue
		}
		for _, shareholder := range shareholders {
			if err := s.linkPerson(ctx, shareholder, companyID, common.RoleShareholder); err != nil {
				return err
			}
		}
		fmt.Fprintln(s.out, "Shareholders added.")
		break
	}

	for {
		director, ok := s.prompt("Director: ")
		if !ok {
			return errInputClosed
		}
		if director == "" {
			fmt.Fprintln(s.out, "A company needs a director.")
			continue
		}
		if err := s.linkPerson(ctx, director, companyID, common.RoleDirector); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Director added.")
		break
	}

	return nil
}

func (s *Shell) linkPerson(ctx context.Context, name string, companyID int64, role common.Role) error {
	personID, err := s.store.UpsertPerson(ctx, name)
	if err != nil {
		return err
	}
	return s.store.AddRelation(ctx, personID, companyID, role)
}

func (s *Shell) renderFromStore(ctx context.Context) error {
	g, err := graph.FromStore(ctx, s.store)
	if err != nil {
		return err
	}
	return s.renderChart(g)
}

func (s *Shell) renderChart(g *graph.Graph) error {
	f, err := os.Create(s.chartFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := render.HTML(f, g, graph.CommonConnections(g)); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Chart written to %s\n", s.chartFile)
	return nil
}

func (s *Shell) saveGraph(ctx context.Context) error {
	g, err := graph.FromStore(ctx, s.store)
	if err != nil {
		return err
	}

	name, ok := s.prompt("File name for the graph (without extension): ")
	if !ok {
		return errInputClosed
	}
	if name == "" {
		fmt.Fprintln(s.out, "The file name must not be empty.")
		return nil
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}

	data, err := json.MarshalIndent(graph.Encode(g), "", "    ")
	if err != nil {
		return err
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Graph saved to %s\n", path)
	return nil
}

func (s *Shell) loadGraphFromFile() (*graph.Graph, error) {
	path, err := s.chooseFile()
	if err != nil || path == "" {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := graph.Decode(data)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(s.out, "Graph loaded from %s\n", path)
	return g, nil
}

func (s *Shell) renderFromFile() error {
	g, err := s.loadGraphFromFile()
	if err != nil || g == nil {
		return err
	}
	return s.renderChart(g)
}

func (s *Shell) importFile(ctx context.Context) error {
	g, err := s.loadGraphFromFile()
	if err != nil || g == nil {
		return err
	}

	relations := make([]common.Relation, 0, g.Size())
	for _, e := range g.Edges() {
		relations = append(relations, common.Relation{
			Person: e.Person, Company: e.Company, Role: e.Role,
		})
	}
	if err := s.store.ReplaceAll(ctx, g.Companies(), g.People(), relations); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Data imported into the database.")
	return nil
}
