// Package render draws the relationship graph as a self-contained HTML page
// with an inline SVG chart. Companies sit on an outer ring, people on an
// inner ring; relation edges are solid, derived common-connection links are
// dashed between the two companies and carry the shared people as a tooltip.
package render

import (
	"fmt"
	"html/template"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/corplink/corplink/pkg/common"
	"github.com/corplink/corplink/pkg/graph"
)

const (
	width  = 900.0
	height = 640.0
	outerR = 260.0
	innerR = 130.0
)

type chartNode struct {
	Name    string
	Kind    common.EntityKind
	X, Y    float64
	LabelY  float64
}

type chartLine struct {
	X1, Y1, X2, Y2 float64
	Label          string
	Dashed         bool
}

type chartData struct {
	Title  string
	Width  float64
	Height float64
	Nodes  []chartNode
	Lines  []chartLine
}

// HTML writes the chart page for the given graph and its derived common
// connections.
func HTML(w io.Writer, g *graph.Graph, conns map[graph.Pair][]string) error {
	companyPos := ringPositions(g.Companies(), outerR)
	personPos := ringPositions(g.People(), innerR)

	data := chartData{
		Title:  "Company and people relationship graph",
		Width:  width,
		Height: height,
	}

	for _, name := range g.Companies() {
		p := companyPos[name]
		data.Nodes = append(data.Nodes, chartNode{
			Name: name, Kind: common.KindCompany, X: p[0], Y: p[1], LabelY: p[1] - 14,
		})
	}
	for _, name := range g.People() {
		p := personPos[name]
		data.Nodes = append(data.Nodes, chartNode{
			Name: name, Kind: common.KindPerson, X: p[0], Y: p[1], LabelY: p[1] - 12,
		})
	}

	for _, e := range g.Edges() {
		src := personPos[e.Person]
		dst := companyPos[e.Company]
		data.Lines = append(data.Lines, chartLine{
			X1: src[0], Y1: src[1], X2: dst[0], Y2: dst[1],
			Label: fmt.Sprintf("%s is %s of %s", e.Person, e.Role, e.Company),
		})
	}

	// Deterministic ordering over the unordered pair map.
	pairs := make([]graph.Pair, 0, len(conns))
	for pair := range conns {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	for _, pair := range pairs {
		a := companyPos[pair.A]
		b := companyPos[pair.B]
		data.Lines = append(data.Lines, chartLine{
			X1: a[0], Y1: a[1], X2: b[0], Y2: b[1],
			Label:  fmt.Sprintf("%s and %s share: %s", pair.A, pair.B, strings.Join(conns[pair], ", ")),
			Dashed: true,
		})
	}

	return pageTemplate.Execute(w, data)
}

func ringPositions(names []string, radius float64) map[string][2]float64 {
	pos := make(map[string][2]float64, len(names))
	if len(names) == 0 {
		return pos
	}
	step := 2 * math.Pi / float64(len(names))
	for i, name := range names {
		angle := float64(i)*step - math.Pi/2
		pos[name] = [2]float64{
			width/2 + radius*math.Cos(angle),
			height/2 + radius*math.Sin(angle),
		}
	}
	return pos
}

var pageTemplate = template.Must(template.New("chart").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 0; }
h1 { font-size: 16px; text-align: center; margin: 12px 0 0; }
svg { display: block; margin: 0 auto; }
text { font-size: 11px; text-anchor: middle; }
line.relation { stroke: gray; stroke-width: 1; }
line.shared { stroke: steelblue; stroke-width: 1.5; stroke-dasharray: 6 4; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<svg width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
{{- range .Lines}}
<line class="{{if .Dashed}}shared{{else}}relation{{end}}" x1="{{.X1}}" y1="{{.Y1}}" x2="{{.X2}}" y2="{{.Y2}}"><title>{{.Label}}</title></line>
{{- end}}
{{- range .Nodes}}
{{- if eq .Kind "company"}}
<rect x="{{.X}}" y="{{.Y}}" width="16" height="16" transform="translate(-8,-8)" fill="lightblue" stroke="black" stroke-width="2"><title>{{.Name}} (company)</title></rect>
{{- else}}
<circle cx="{{.X}}" cy="{{.Y}}" r="8" fill="orange" stroke="black" stroke-width="2"><title>{{.Name}} (person)</title></circle>
{{- end}}
<text x="{{.X}}" y="{{.LabelY}}">{{.Name}}</text>
{{- end}}
</svg>
</body>
</html>
`))
