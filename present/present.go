package present

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
)

// Panel is the view model for one ordered fragment.
type Panel struct {
	// Name is the display name of the originating upload.
	Name string
	// Image is the PNG payload shown next to the text.
	Image []byte
	// Lines is the extracted text split into display lines. Empty text
	// renders as an empty card.
	Lines []string
}

// Page describes one rendered strip.
type Page struct {
	Title  string
	RunID  string
	Panels []Panel
}

type panelView struct {
	Name string
	// ImageSrc is a data URI; typed template.URL because the URL filter
	// rejects the data scheme.
	ImageSrc template.URL
	Lines    []string
}

type pageView struct {
	Title  string
	RunID  string
	Panels []panelView
}

var pageTemplate = template.Must(template.New("strip").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 60em; margin: 0 auto; }
figure { margin: 0; }
figure img { max-width: 100%; }
figcaption { font-style: italic; text-align: center; }
.panel { display: flex; gap: 1em; margin: 2em 0; align-items: flex-start; }
.panel > * { flex: 1; }
.card { border: 1px solid #ccc; border-radius: 4px; padding: 1em; }
.card p { margin: 0.25em 0; }
</style>
</head>
<body>
<h3>{{.Title}}</h3>
{{range .Panels}}<div class="panel">
<figure>
<img src="{{.ImageSrc}}" alt="{{.Name}}">
<figcaption>{{.Name}}</figcaption>
</figure>
<div class="card">
{{range .Lines}}<p>{{.}}</p>
{{end}}</div>
</div>
{{end}}<footer>run {{.RunID}}</footer>
</body>
</html>
`))

// Render writes the page as HTML.
func Render(w io.Writer, page Page) error {
	view := pageView{Title: page.Title, RunID: page.RunID}
	for _, p := range page.Panels {
		view.Panels = append(view.Panels, panelView{
			Name:     p.Name,
			ImageSrc: template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(p.Image)),
			Lines:    p.Lines,
		})
	}
	if err := pageTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("present: render page: %w", err)
	}
	return nil
}
