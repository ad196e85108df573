package graph

import (
	"encoding/json"
	"fmt"

	"github.com/corplink/corplink/pkg/common"
)

// Document is the JSON exchange format for a graph: a flat node list plus a
// flat edge list. Node ids are the entity names in canonical form; edges
// always point from a person to a company.
type Document struct {
	Nodes []DocumentNode `json:"nodes"`
	Edges []DocumentEdge `json:"edges"`
}

// DocumentNode is one graph vertex in a document.
type DocumentNode struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// DocumentEdge is one relation in a document. Source is a person id,
// Target a company id.
type DocumentEdge struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Relation string `json:"relation"`
}

// MalformedDocumentError reports a graph document that violates the schema.
// Detail names the offending node or edge.
type MalformedDocumentError struct {
	Detail string
}

func (e *MalformedDocumentError) Error() string {
	return "malformed graph document: " + e.Detail
}

func malformedf(format string, args ...any) error {
	return &MalformedDocumentError{Detail: fmt.Sprintf(format, args...)}
}

// Encode serializes the graph into a document. Output is deterministic:
// company nodes first, then person nodes, both sorted, edges sorted by
// source, target and relation. Identifiers are emitted in the canonical
// normalized form so an encode/decode round-trip reproduces the graph
// exactly.
func Encode(g *Graph) *Document {
	doc := &Document{
		Nodes: make([]DocumentNode, 0, g.Order()),
		Edges: make([]DocumentEdge, 0, g.Size()),
	}
	for _, name := range g.Companies() {
		doc.Nodes = append(doc.Nodes, DocumentNode{
			ID:   common.NormalizeName(name),
			Type: string(common.KindCompany),
		})
	}
	for _, name := range g.People() {
		doc.Nodes = append(doc.Nodes, DocumentNode{
			ID:   common.NormalizeName(name),
			Type: string(common.KindPerson),
		})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, DocumentEdge{
			Source:   common.NormalizeName(e.Person),
			Target:   common.NormalizeName(e.Company),
			Relation: string(e.Role),
		})
	}
	return doc
}

// Decode parses a graph document and returns a fresh graph. It fails with
// *MalformedDocumentError when a node lacks an id or type, a type or
// relation falls outside the closed enumerations, or an edge references a
// node id absent from the node list. Identifiers are normalized on the way
// in; no global state is touched.
func Decode(data []byte) (*Graph, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedDocumentError{Detail: err.Error()}
	}
	return DecodeDocument(&doc)
}

// DecodeDocument converts an already parsed document into a graph, applying
// the same validation as Decode.
func DecodeDocument(doc *Document) (*Graph, error) {
	g := New()

	for i, node := range doc.Nodes {
		id := common.NormalizeName(node.ID)
		if id == "" {
			return nil, malformedf("node %d has an empty id", i)
		}
		kind, err := common.ParseEntityKind(node.Type)
		if err != nil {
			return nil, malformedf("node %q: %v", node.ID, err)
		}
		switch kind {
		case common.KindCompany:
			g.AddCompany(id)
		case common.KindPerson:
			g.AddPerson(id)
		}
	}

	for i, edge := range doc.Edges {
		source := common.NormalizeName(edge.Source)
		target := common.NormalizeName(edge.Target)
		role, err := common.ParseRole(edge.Relation)
		if err != nil {
			return nil, malformedf("edge %d (%q -> %q): %v", i, edge.Source, edge.Target, err)
		}
		if !g.HasPerson(source) {
			return nil, malformedf("edge %d: source %q is not a person node", i, edge.Source)
		}
		if !g.HasCompany(target) {
			return nil, malformedf("edge %d: target %q is not a company node", i, edge.Target)
		}
		if err := g.AddEdge(source, target, role); err != nil {
			return nil, malformedf("edge %d: %v", i, err)
		}
	}

	return g, nil
}
