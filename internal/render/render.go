// Package render turns fetched records into table rows and HTML documents.
package render

import (
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/itsatony/w4b_v3/server/beeview/internal/models"
	"github.com/itsatony/w4b_v3/server/beeview/internal/pagination"
)

const (
	ClassOdd   = "table_cells_odd"
	ClassEven  = "table_cells_even"
	TimeLayout = "2006-01-02 15:04:05"
)

// RowClass returns the style class for the row at position i
func RowClass(i int) string {
	if i%2 == 0 {
		return ClassOdd
	}
	return ClassEven
}

// Rows renders records in the order of columns. Missing and nil values become empty cells.
func Rows(columns []models.Column, records []models.Record) []models.Row {
	rows := make([]models.Row, len(records))
	for i, record := range records {
		cells := make([]string, len(columns))
		for j, col := range columns {
			cells[j] = FormatValue(record[col.Field])
		}
		rows[i] = models.Row{Class: RowClass(i), Cells: cells}
	}
	return rows
}

// FormatValue renders a scalar for a table cell
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(TimeLayout)
	case *time.Time:
		if val == nil {
			return ""
		}
		return val.Format(TimeLayout)
	}
	return fmt.Sprint(v)
}

type linkView struct {
	Text string
	Href string
}

type pageView struct {
	Title   string
	Headers []string
	Rows    []models.Row
	Links   []linkView
}

type errorView struct {
	Title     string
	Status    int
	Message   string
	RequestID string
}

var (
	pageTemplate  = template.Must(template.New("page").Parse(styleTemplate + pageBody))
	errorTemplate = template.Must(template.New("error").Parse(styleTemplate + errorBody))
)

// HTML writes the complete document for page. Links point at page.View.Path.
func HTML(w io.Writer, page *models.Page) error {
	view := pageView{
		Title: page.View.Title,
		Rows:  page.Rows,
	}
	for _, col := range page.View.Columns {
		view.Headers = append(view.Headers, col.Label)
	}
	for _, link := range page.Links {
		view.Links = append(view.Links, linkView{
			Text: fmt.Sprintf("%s %d Records", link.Label, link.Limit),
			Href: pagination.Href(page.View.Path, link),
		})
	}
	return pageTemplate.ExecuteTemplate(w, "page", view)
}

// ErrorHTML writes a diagnostic document for a failed request
func ErrorHTML(w io.Writer, title string, status int, message, requestID string) error {
	return errorTemplate.ExecuteTemplate(w, "error", errorView{
		Title:     title,
		Status:    status,
		Message:   message,
		RequestID: requestID,
	})
}

const styleTemplate = `{{define "style"}}    <style type="text/css">
        .table_titles, .table_cells_odd, .table_cells_even {
                padding-right: 20px;
                padding-left: 20px;
                color: #000;
        }
        .table_titles {
            color: #FFF;
            background-color: #666;
        }
        .table_cells_odd {
            background-color: #CCC;
        }
        .table_cells_even {
            background-color: #FAFAFA;
        }
        table {
            border: 2px solid #333;
        }
        body { font-family: "Trebuchet MS", Arial; }
    </style>
{{end}}`

const pageBody = `<!DOCTYPE html>
<html>
<head>
    <title>{{.Title}}</title>
{{template "style"}}</head>
<body>
    <h1>{{.Title}}</h1>
    <table border="0" cellspacing="0" cellpadding="4">
        <tr>
{{- range .Headers}}
            <td class="table_titles">{{.}}</td>
{{- end}}
        </tr>
{{- range .Rows}}{{$class := .Class}}
        <tr>
{{- range .Cells}}
            <td class="{{$class}}">{{.}}</td>
{{- end}}
        </tr>
{{- end}}
    </table>
    <p>
{{- range $i, $link := .Links}}{{if $i}} |{{end}}
        <a href="{{$link.Href}}">{{$link.Text}}</a>
{{- end}}
    </p>
</body>
</html>
`

const errorBody = `<!DOCTYPE html>
<html>
<head>
    <title>{{.Title}}</title>
{{template "style"}}</head>
<body>
    <h1>{{.Title}}</h1>
    <p><strong>Error {{.Status}}:</strong> {{.Message}}</p>
{{- if .RequestID}}
    <p>Request ID: {{.RequestID}}</p>
{{- end}}
</body>
</html>
`
