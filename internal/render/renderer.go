// Package render turns resume documents into styled HTML and exports them
// as PDF.
package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/careerlaunch/internal/types"
)

// PDFRenderer converts rendered HTML into PDF bytes.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

var templateAccents = map[string]string{
	types.TemplateProfessional: "#1f3a5f",
	types.TemplateCreative:     "#7c3aed",
	types.TemplateMinimalist:   "#333333",
}

// HTML renders a resume into a standalone HTML page styled for the resume's
// template. The output embeds its stylesheet so PDF rendering needs no
// external assets.
func HTML(resume *types.Resume) (string, error) {
	accent, ok := templateAccents[resume.Template]
	if !ok {
		accent = templateAccents[types.TemplateProfessional]
	}

	var buf bytes.Buffer
	err := resumeTemplate.Execute(&buf, struct {
		*types.Resume
		Accent string
	}{resume, accent})
	if err != nil {
		return "", fmt.Errorf("failed to render resume HTML: %w", err)
	}
	return buf.String(), nil
}

var resumeTemplate = template.Must(template.New("resume").Funcs(template.FuncMap{
	"join": func(items []string) string { return strings.Join(items, ", ") },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Georgia, serif; color: #222; margin: 2em 3em; }
  h1 { color: {{.Accent}}; margin-bottom: 0; }
  h2 { color: {{.Accent}}; border-bottom: 1px solid {{.Accent}}; padding-bottom: 2px; }
  .contact { color: #555; font-size: 0.9em; margin-bottom: 1.5em; }
  .entry { margin-bottom: 0.8em; }
  .entry .head { font-weight: bold; }
  .muted { color: #666; font-size: 0.9em; }
</style>
</head>
<body>
<h1>{{with .PersonalInfo.FullName}}{{.}}{{else}}{{.Title}}{{end}}</h1>
<div class="contact">
{{- with .PersonalInfo.Email}}{{.}}{{end}}
{{- with .PersonalInfo.Phone}} &middot; {{.}}{{end}}
{{- with .Location}} &middot; {{.}}{{end}}
{{- with .PersonalInfo.LinkedIn}} &middot; {{.}}{{end}}
</div>
{{with .Summary}}<h2>Summary</h2><p>{{.}}</p>{{end}}
{{if .Skills}}<h2>Skills</h2><p>{{join .Skills}}</p>{{end}}
{{if .Experience}}<h2>Experience</h2>
{{range .Experience}}<div class="entry">
<div class="head">{{.Position}}{{with .Company}} &mdash; {{.}}{{end}}</div>
{{with .Duration}}<div class="muted">{{.}}</div>{{end}}
{{with .Description}}<p>{{.}}</p>{{end}}
</div>{{end}}
{{end}}
{{if .Education}}<h2>Education</h2>
{{range .Education}}<div class="entry">
<div class="head">{{.Degree}}{{with .Field}}, {{.}}{{end}}</div>
<div class="muted">{{.Institution}}{{with .GPA}} &middot; GPA {{.}}{{end}}</div>
</div>{{end}}
{{end}}
{{if .Projects}}<h2>Projects</h2>
{{range .Projects}}<div class="entry">
<div class="head">{{.Name}}</div>
{{with .Description}}<p>{{.}}</p>{{end}}
{{with .Technologies}}<div class="muted">{{join .}}</div>{{end}}
</div>{{end}}
{{end}}
{{if .Certifications}}<h2>Certifications</h2>
{{range .Certifications}}<div class="entry">{{.Name}}{{with .Issuer}} &mdash; {{.}}{{end}}</div>{{end}}
{{end}}
{{if .Languages}}<h2>Languages</h2>
{{range .Languages}}<div class="entry">{{.Language}}{{with .Proficiency}} ({{.}}){{end}}</div>{{end}}
{{end}}
</body>
</html>
`))
