package server

import (
	"html/template"
	"strings"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Chess Game Analyzer</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px; vertical-align: top; text-align: left; }
td.narrative { width: 55%; }
</style>
</head>
<body>
<h1>Chess Game Analyzer</h1>
<p>Enter a chess.com username to analyze their recent games.</p>
<form method="get" action="/analyze">
<input type="text" name="username" placeholder="Enter chess.com username" value="{{.Username}}">
<select name="filter">
{{- range .Choices}}
<option value="{{.}}"{{if eq . $.Filter}} selected{{end}}>{{.}}</option>
{{- end}}
</select>
<button type="submit">Analyze Games</button>
</form>
{{if .Status}}<p class="status">{{.Status}}</p>{{end}}
{{if .Rows}}
<table>
<tr><th>Date</th><th>White</th><th>Black</th><th>Result</th><th>Analysis</th></tr>
{{- range .Rows}}
<tr><td>{{.Date}}</td><td>{{.White}}</td><td>{{.Black}}</td><td>{{.Result}}</td><td class="narrative">{{.Narrative}}</td></tr>
{{- end}}
</table>
{{end}}
</body>
</html>
`))

type pageRow struct {
	Date      string
	White     string
	Black     string
	Result    string
	Narrative template.HTML
}

type pageData struct {
	Username string
	Filter   string
	Choices  []string
	Status   string
	Rows     []pageRow
}

// narrativeHTML escapes text and puts each bullet on its own line.
func narrativeHTML(text string) template.HTML {
	text = strings.ReplaceAll(text, "\n", " ")
	text = template.HTMLEscapeString(text)
	text = strings.ReplaceAll(text, "•", "<br>•")
	text = strings.ReplaceAll(text, "  -", " -")
	text = strings.TrimPrefix(text, "<br>")
	return template.HTML(text)
}
