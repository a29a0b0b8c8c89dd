// Package templates holds the page shell and the slide fragment as templ
// components.
package templates

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:generate templ generate

//go:embed static
var staticFiles embed.FS

// LoadingText is shown until the slides arrive, and forever if they never do.
const LoadingText = "Loading your Wrapped…"

// Slide kinds.
const (
	KindHero   = "hero"
	KindIntro  = "intro"
	KindStat   = "stat"
	KindChart  = "chart"
	KindFinale = "finale"
)

// Slide is one full-viewport section of the page.
type Slide struct {
	ID       string
	Kind     string
	Theme    string
	Eyebrow  string
	Title    string
	Headline string
	Unit     string
	Message  string
	Stats    []Stat
	Chart    *Chart
}

type Stat struct {
	Label   string
	Value   string
	Note    string
	Message string
}

// Chart keeps the plotted values next to the rendered markup.
type Chart struct {
	Title  string
	XAxis  []string
	Values []float64
	HTML   template.HTML
}

// Static returns the stylesheet tree served under /static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
