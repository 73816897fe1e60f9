package site

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var ErrInvalidConfig = errors.New("invalid site config")

type Config struct {
	Title   string `json:"title"`
	Tagline string `json:"tagline"`
	URL     string `json:"url"`
	BaseURL string `json:"baseUrl"`
	CNAME   string `json:"cname,omitempty"`

	CustomDocsPath string `json:"customDocsPath,omitempty"`
	DocsURL        string `json:"docsUrl,omitempty"`

	ProjectName      string `json:"projectName"`
	OrganizationName string `json:"organizationName"`

	HeaderLinks []HeaderLink `json:"headerLinks"`

	HeaderIcon string `json:"headerIcon"`
	TitleIcon  string `json:"titleIcon"`
	Favicon    string `json:"favicon"`
	Colors     Colors `json:"colors"`

	CopyrightHolder string `json:"copyrightHolder"`
	CopyrightSince  int    `json:"copyrightSince"`

	RepoURL string `json:"repoUrl"`
	APIURL  string `json:"apiUrl"`

	// DiscordServerID enables the chat badge on the home page.
	DiscordServerID string `json:"discordServerId,omitempty"`
	DiscordInvite   string `json:"discordInvite,omitempty"`
}

// HeaderLink is a navigation entry. Exactly one of Blog, Doc or Href is set.
type HeaderLink struct {
	Blog  bool   `json:"blog,omitempty"`
	Doc   string `json:"doc,omitempty"`
	Href  string `json:"href,omitempty"`
	Label string `json:"label"`
}

type Colors struct {
	Primary   string `json:"primaryColor"`
	Secondary string `json:"secondaryColor"`
}

func Load(path string) (Config, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "could not open config")
	}
	return FromBytes(fileBytes)
}

func FromBytes(b []byte) (Config, error) {
	cfg := Config{BaseURL: "/"}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "could not parse config")
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Title == "" {
		return errors.Wrap(ErrInvalidConfig, "title is required")
	}
	if !strings.HasPrefix(c.BaseURL, "/") || !strings.HasSuffix(c.BaseURL, "/") {
		return errors.Wrapf(ErrInvalidConfig, "baseUrl %q must start and end with /", c.BaseURL)
	}
	for i, l := range c.HeaderLinks {
		var set int
		if l.Blog {
			set++
		}
		if l.Doc != "" {
			set++
		}
		if l.Href != "" {
			set++
		}
		if set != 1 {
			return errors.Wrapf(ErrInvalidConfig, "header link %d (%q) needs exactly one of blog, doc, href", i, l.Label)
		}
	}
	return nil
}

// DocURL is the location of a documentation page, optionally localized.
func (c Config) DocURL(doc, language string) string {
	var b strings.Builder
	b.WriteString(c.BaseURL)
	if c.DocsURL != "" {
		b.WriteString(c.DocsURL + "/")
	}
	if language != "" {
		b.WriteString(language + "/")
	}
	b.WriteString(doc)
	return b.String()
}

func (c Config) PageURL(page, language string) string {
	if language != "" {
		return c.BaseURL + language + "/" + page
	}
	return c.BaseURL + page
}

// LinkURL resolves a header link against the site.
func (c Config) LinkURL(l HeaderLink, language string) string {
	switch {
	case l.Blog:
		return c.PageURL("blog", "")
	case l.Doc != "":
		return c.DocURL(l.Doc, language)
	}
	return l.Href
}

func (c Config) Copyright(now time.Time) string {
	if c.CopyrightSince == 0 || c.CopyrightSince >= now.Year() {
		return fmt.Sprintf("Copyright © %d %s.", now.Year(), c.CopyrightHolder)
	}
	return fmt.Sprintf("Copyright © %d-%d %s.", c.CopyrightSince, now.Year(), c.CopyrightHolder)
}
