package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/DiscordGophers/docsite/footer"
	"github.com/DiscordGophers/docsite/site"
)

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="{{.Language}}">
<head>
<meta charset="utf-8">
<title>{{.Config.Title}} · {{.Config.Tagline}}</title>
<link rel="icon" href="{{.Config.BaseURL}}{{.Config.Favicon}}">
</head>
<body>
<nav class="fixedHeaderContainer">
<a href="{{.Config.BaseURL}}"><img class="logo" src="{{.Config.BaseURL}}{{.Config.HeaderIcon}}" alt="{{.Config.Title}}"></a>
<ul class="nav-site">
{{- range .Links}}
<li><a href="{{.URL}}">{{.Label}}</a></li>
{{- end}}
</ul>
</nav>
<div class="homeContainer">
<div class="homeSplashFade">
<div class="wrapper homeWrapper">
<div class="inner">
<h2 class="projectTitle"><span><img class="projectTitleLogo" src="{{.Config.BaseURL}}{{.Config.TitleIcon}}">{{.Config.Title}}</span><small>{{.Config.Tagline}}</small></h2>
<div class="section promoSection">
<div class="promoRow">
<div class="pluginRowBlock">
{{- range .Buttons}}
<div class="pluginWrapper buttonWrapper"><a class="button" href="{{.URL}}">{{.Label}}</a></div>
{{- end}}
</div>
</div>
</div>
</div>
</div>
</div>
</div>
<div id="site-main">
<div id="content" class="mainContainer">
<div class="index">
{{.Body}}
</div>
</div>
</div>
{{.Footer}}
</body>
</html>
`))

type link struct {
	URL   string
	Label string
}

// Index renders the home page and runs it through Process with opts.
func Index(cfg site.Config, vars site.Variables, language string, now time.Time, opts Options) ([]byte, Result, error) {
	body, err := Markdown([]byte(cfg.IndexMarkdown(vars)))
	if err != nil {
		return nil, Result{}, err
	}

	foot, err := footer.Render(cfg, now)
	if err != nil {
		return nil, Result{}, fmt.Errorf("could not render footer: %w", err)
	}

	var links []link
	for _, l := range cfg.HeaderLinks {
		links = append(links, link{URL: cfg.LinkURL(l, language), Label: l.Label})
	}

	data := struct {
		Config   site.Config
		Language string
		Links    []link
		Buttons  []link
		Body     template.HTML
		Footer   template.HTML
	}{
		Config:   cfg,
		Language: language,
		Links:    links,
		Buttons: []link{
			{URL: cfg.APIURL, Label: "API Docs"},
			{URL: cfg.DocURL("overview", language), Label: "Documentation"},
			{URL: cfg.RepoURL, Label: "View on GitHub"},
		},
		Body:   template.HTML(body),
		Footer: template.HTML(foot),
	}
	if data.Language == "" {
		data.Language = "en"
	}

	var page bytes.Buffer
	if err := indexTmpl.Execute(&page, data); err != nil {
		return nil, Result{}, fmt.Errorf("could not render index: %w", err)
	}

	var out bytes.Buffer
	res, err := Process(&page, &out, opts)
	if err != nil {
		return nil, res, err
	}
	return out.Bytes(), res, nil
}
