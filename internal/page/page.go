// Package page renders the skill arc as a single static HTML document: the
// radial tree with every node placed through CSS custom properties, and the
// composed prompt. The output needs no script and no server.
package page

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/papapumpkin/skillarc/internal/catalog"
	"github.com/papapumpkin/skillarc/internal/layout"
	"github.com/papapumpkin/skillarc/internal/prompt"
)

//go:embed page.html.tmpl
var pageSource string

var pageTmpl = template.Must(template.New("page").Parse(pageSource))

// Fixed copy of the page header and core.
const (
	Title    = "Neon Skill Arc"
	Subtitle = "Plot every football ability across a radial skill tree. Unlock mastery by completing precision quests that mirror pro training metrics and freestyle flows."
)

// Node is one positioned skill card. Coordinates are pre-formatted so the
// template only interpolates plain numbers.
type Node struct {
	Category string
	Skill    string
	Quest    string
	Color    string
	X        string // px
	Y        string // px
	Angle    string // deg, the node rotation
}

// Data is everything the page template renders.
type Data struct {
	Title    string
	Subtitle string
	Nodes    []Node
	Prompt   string
	Size     int // side of the square tree area in px
}

// NewData lays out cats with params and composes the prompt.
func NewData(cats []catalog.Category, params layout.Params) Data {
	points := layout.Compute(cats, params)
	quests := make(map[[2]string]string, len(points))
	for _, c := range cats {
		for _, s := range c.Skills {
			quests[[2]string{c.Name, s.Name}] = s.Quest
		}
	}

	nodes := make([]Node, 0, len(points))
	for _, p := range points {
		nodes = append(nodes, Node{
			Category: p.Category,
			Skill:    p.Skill,
			Quest:    quests[[2]string{p.Category, p.Skill}],
			Color:    p.Color,
			X:        px(p.X),
			Y:        px(p.Y),
			Angle:    px(p.Rotation),
		})
	}

	// Leave room for the card around the outermost node.
	const cardMargin = 120
	size := 2 * (int(layout.Extent(points)) + cardMargin)

	return Data{
		Title:    Title,
		Subtitle: Subtitle,
		Nodes:    nodes,
		Prompt:   prompt.Compose(cats),
		Size:     size,
	}
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Render writes the page for d to w.
func Render(w io.Writer, d Data) error {
	if err := pageTmpl.Execute(w, d); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}
