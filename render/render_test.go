package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/DiscordGophers/docsite/footer"
	"github.com/DiscordGophers/docsite/site"
	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func query(t *testing.T, b []byte) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	require.NoError(t, err)
	return doc
}

func TestMarkdownHeadingIDs(t *testing.T) {
	out, err := Markdown([]byte("# Intro\n\n## Getting Started\n\ntext<br>more\n"))
	require.NoError(t, err)

	doc := query(t, out)
	assert.Equal(t, "intro", doc.Find("h1").AttrOr("id", ""))
	assert.Equal(t, "getting-started", doc.Find("h2").AttrOr("id", ""))
	assert.Equal(t, 1, doc.Find("br").Length())
}

func TestProcess(t *testing.T) {
	page := `<html><body>
<div id="site-main"><div id="content">
<h1 id="intro">Intro</h1>
<h2 id="overview">Overview</h2>
<h3>No Id</h3>
</div></div>
<h2 id="outside">Outside</h2>
<footer id="site-footer"><div class="row"><p>old credit</p></div></footer>
</body></html>`

	cases := []struct {
		name    string
		opts    Options
		res     Result
		credits bool
	}{
		{
			name: "defaults",
			opts: Options{},
			res:  Result{Anchors: 2},
		},
		{
			name:    "with credit",
			opts:    Options{Credit: &footer.DefaultCredit},
			res:     Result{Anchors: 2, Credits: 1},
			credits: true,
		},
		{
			name: "custom selector",
			opts: Options{ContentSelector: "body"},
			res:  Result{Anchors: 3},
		},
		{
			name: "no container",
			opts: Options{ContentSelector: "#nowhere"},
			res:  Result{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out bytes.Buffer
			res, err := Process(strings.NewReader(page), &out, c.opts)
			require.NoError(t, err)
			assert.Equal(t, c.res, res)

			doc := query(t, out.Bytes())
			assert.Equal(t, c.res.Anchors, doc.Find("a.header-link").Length())
			assert.Equal(t, 0, doc.Find("h3 a").Length())
			assert.Equal(t, !c.credits, strings.Contains(doc.Find("#site-footer").Text(), "old credit"))
		})
	}
}

func TestIndex(t *testing.T) {
	cfg := site.Config{
		Title:            "Ciris",
		Tagline:          "Functional Configurations for Scala",
		BaseURL:          "/",
		ProjectName:      "ciris",
		OrganizationName: "vlovgr",
		HeaderLinks: []site.HeaderLink{
			{Blog: true, Label: "Blog"},
			{Doc: "overview", Label: "Documentation"},
		},
		CopyrightHolder: "Viktor Rudebeck",
		CopyrightSince:  2017,
		RepoURL:         "https://github.com/vlovgr/ciris",
		APIURL:          "/api/ciris/index.html",
	}
	vars := site.Variables{
		Organization:   "is.cir",
		CoreModuleName: "ciris",
		LatestVersion:  "3.6.0",
	}

	out, res, err := Index(cfg, vars, "", time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), Options{})
	require.NoError(t, err)
	assert.Equal(t, Result{Anchors: 1}, res)

	doc := query(t, out)

	heading := doc.Find("#content h3#getting-started")
	require.Equal(t, 1, heading.Length())
	assert.Equal(t, "#getting-started", heading.Find("a.header-link").AttrOr("href", ""))

	assert.Equal(t, 0, doc.Find(".projectTitle a").Length())

	var buttons []string
	doc.Find(".promoSection a.button").Each(func(_ int, s *goquery.Selection) {
		buttons = append(buttons, s.AttrOr("href", ""))
	})
	assert.Equal(t, []string{"/api/ciris/index.html", "/overview", "https://github.com/vlovgr/ciris"}, buttons)

	var nav []string
	doc.Find(".nav-site a").Each(func(_ int, s *goquery.Selection) {
		nav = append(nav, s.AttrOr("href", ""))
	})
	assert.Equal(t, []string{"/blog", "/overview"}, nav)

	assert.Contains(t, doc.Find("footer#footer").Text(), "Copyright © 2017-2026 Viktor Rudebeck.")
	assert.Equal(t, "en", doc.Find("html").AttrOr("lang", ""))
}

func TestIndexSelector(t *testing.T) {
	cfg := site.Config{Title: "Ciris", BaseURL: "/"}
	vars := site.Variables{LatestVersion: "3.6.0"}
	now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	_, res, err := Index(cfg, vars, "", now, Options{ContentSelector: "#nowhere"})
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)

	out, res, err := Index(cfg, vars, "", now, Options{ContentSelector: ".index"})
	require.NoError(t, err)
	assert.Equal(t, Result{Anchors: 1}, res)
	assert.Equal(t, 1, query(t, out).Find(".index a.header-link").Length())
}
