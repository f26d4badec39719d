package http

import (
	"html/template"
	"net/http"

	"bookmark-server/internal/domain"
)

// The registration form plus the listing of known pairs, served at /
// A single inline template keeps the UI self-contained - there is no static
// asset tree to deploy alongside the binary
var formTemplate = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<title>Bookmark Server</title>
<form method="POST">
    <label>Long URI:
        <input name="longuri">
    </label>
    <br>
    <label>Short name:
        <input name="shortname">
    </label>
    <br>
    <button type="submit">Save it!</button>
</form>
<p>URIs I know about:
<pre>
{{- range .}}
{{.ShortName}} : {{.LongURI}}
{{- end}}
</pre>
`))

// renderForm writes the form page listing the given bookmarks
// The slice arrives already sorted by short name from the repository
func renderForm(w http.ResponseWriter, bookmarks []domain.Bookmark) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := formTemplate.Execute(w, bookmarks); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
