package report

import (
	"fmt"
	"html/template"
	"io"
)

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"percent": func(v float64) string { return fmt.Sprintf("%.2f%%", v) },
}).Parse(`
<style>
    table, td, th {
        border: 1px solid #000000;
        border-collapse: collapse;
        padding: 4px 8px;
        text-align: center;
    }
    table {
        float: left;
        margin: 0px 2px;
    }
</style>
<h3>Average CPU Report</h3>
<p>Date: {{.Generated.Format "2006-01-02"}}</p>
{{- range .Tables}}
<table>
    <tr>
        <th>Time</th>
        <th>Average CPU</th>
    </tr>
{{- range .Rows}}
	<tr>
		<td>{{.Clock}}</td>
		<td>{{percent .Percent}}</td>
	</tr>
{{- end}}
</table>
{{- end}}
`))

// WriteHTML writes the document as HTML to w.
func (d Document) WriteHTML(w io.Writer) error {
	return htmlTemplate.Execute(w, d)
}
