package templates

import (
	"bytes"
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexLoadingShell(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Index("/slides").Render(context.Background(), &buf))
	page := buf.String()

	assert.True(t, strings.HasPrefix(page, "<!doctype html>"))
	assert.Contains(t, page, `<section id="loading" class="slide slide-loading" hx-get="/slides" hx-trigger="load" hx-swap="outerHTML">`)
	assert.Contains(t, page, `<p class="loading-text">`+LoadingText+`</p>`)
	assert.Contains(t, page, `<link rel="stylesheet" href="/static/wrapped.css">`)
	assert.Contains(t, page, "echarts.min.js")
}

func TestSlidesMarkup(t *testing.T) {
	var buf bytes.Buffer
	err := Slides([]Slide{
		{
			ID:       "steps",
			Kind:     KindStat,
			Theme:    "steps",
			Eyebrow:  "This year you took",
			Headline: "600,000",
			Unit:     "steps",
			Message:  "Fish & <chips>",
			Stats: []Stat{
				{Label: "Busiest month", Value: "Jul", Note: "1,200 steps"},
			},
		},
		{
			ID:    "steps-monthly",
			Kind:  KindChart,
			Theme: "steps",
			Chart: &Chart{HTML: `<div class="container"><div id="abc"></div></div>`},
		},
	}).Render(context.Background(), &buf)
	require.NoError(t, err)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<div id="slides" class="slides">`))
	assert.True(t, strings.HasSuffix(out, `</div>`))
	assert.Contains(t, out, `<section id="steps" class="slide slide-stat theme-steps">`)
	assert.Contains(t, out, `<p class="eyebrow">This year you took</p>`)
	assert.Contains(t, out, `<p class="headline"><span class="value">600,000</span> <span class="unit">steps</span></p>`)
	assert.Contains(t, out, `<p class="message">Fish &amp; &lt;chips&gt;</p>`)
	assert.Contains(t, out, `<div class="stat"><dt>Busiest month</dt><dd>Jul</dd><p class="note">1,200 steps</p></div>`)

	// chart markup is inserted as-is
	assert.Contains(t, out, `<section id="steps-monthly" class="slide slide-chart theme-steps"><figure class="chart"><div class="container"><div id="abc"></div></div></figure></section>`)
	assert.Less(t, strings.Index(out, `id="steps"`), strings.Index(out, `id="steps-monthly"`))
}

func TestSlidesOmitEmptyParts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Slides([]Slide{{ID: "finale", Kind: KindFinale, Theme: "finale", Title: "That's a wrap"}}).
		Render(context.Background(), &buf))

	assert.Equal(t,
		`<div id="slides" class="slides"><section id="finale" class="slide slide-finale theme-finale"><h2 class="title">That&#39;s a wrap</h2></section></div>`,
		buf.String())
}

func TestStaticStylesheet(t *testing.T) {
	css, err := fs.ReadFile(Static(), "wrapped.css")
	require.NoError(t, err)
	assert.Contains(t, string(css), "scroll-snap-type")
}
