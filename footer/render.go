package footer

import (
	"html/template"
	"strings"
	"time"

	"github.com/DiscordGophers/docsite/site"
)

var tmpl = template.Must(template.New("footer").Parse(`<footer class="nav-footer" id="footer">
<hr class="separator">
<section class="copyright">
{{.Copyright}}
<br>
Icon designed by <a href="https://www.flaticon.com/authors/freepik" rel="noopener">Freepik</a> from Flaticon.
</section>
</footer>`))

// Render produces the site footer for the given moment.
func Render(cfg site.Config, now time.Time) (string, error) {
	var b strings.Builder
	err := tmpl.Execute(&b, struct{ Copyright string }{cfg.Copyright(now)})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
