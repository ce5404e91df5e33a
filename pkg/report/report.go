// Package report renders a human-readable summary of a conversion run.
// The output is Markdown so it can be pasted into a migration PR as-is.
package report

import (
	"errors"
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-librarian/pkg/convert"
)

const reportTemplateSrc = `# librarian.yaml migration report

- Libraries converted: {{ converted }}
- Release-blocked entries: {{ blocked|length }}
{% if blocked %}
## Release blocked

{% for name in blocked %}- {{ name }}
{% endfor %}{% endif %}
## Libraries

{% for lib in libraries %}- {{ lib.Name }}{% if lib.Version %} {{ lib.Version }}{% endif %}{% if lib.Generate %} ({{ lib.Generate.APIs|length }} APIs){% else %} (handwritten){% endif %}
{% endfor %}`

var reportTemplate = pongo2.Must(pongo2.FromString(reportTemplateSrc))

// Render produces the Markdown report for a completed conversion.
func Render(result *convert.Result) (string, error) {
	if result == nil || result.Manifest == nil {
		return "", errors.New("report: result is required")
	}

	out, err := reportTemplate.Execute(pongo2.Context{
		"converted": result.Converted,
		"blocked":   result.Blocked,
		"libraries": result.Manifest.Libraries,
	})
	if err != nil {
		return "", fmt.Errorf("report: execute template: %w", err)
	}
	return out, nil
}
