package render_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsatony/w4b_v3/server/beeview/internal/models"
	"github.com/itsatony/w4b_v3/server/beeview/internal/render"
)

func TestRows_AlternateByPosition(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 20} {
		records := make([]models.Record, n)
		for i := range records {
			// identical content must not influence the class
			records[i] = models.Record{"id": int64(7), "message": "same"}
		}

		rows := render.Rows(models.StatusView.Columns, records)
		require.Len(t, rows, n)
		for i, row := range rows {
			want := render.ClassOdd
			if i%2 == 1 {
				want = render.ClassEven
			}
			assert.Equal(t, want, row.Class, "row %d of %d", i, n)
		}
	}
}

func TestRows_MissingAndNilFieldsAreEmptyCells(t *testing.T) {
	records := []models.Record{
		{"id": int64(2), "sensor": "A1F3", "message": nil},
		{"id": int64(1)},
	}

	rows := render.Rows(models.StatusView.Columns, records)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2", "", "A1F3", ""}, rows[0].Cells)
	assert.Equal(t, []string{"1", "", "", ""}, rows[1].Cells)
}

func TestRows_FollowColumnOrder(t *testing.T) {
	record := models.Record{"celsius": 21.5, "id": int64(9), "temp3_10in": 14.25, "unknown": "x"}

	rows := render.Rows(models.ReadingsView.Columns, []models.Record{record})
	require.Len(t, rows, 1)
	cells := rows[0].Cells
	require.Len(t, cells, len(models.ReadingsView.Columns))
	assert.Equal(t, "9", cells[0])
	assert.Equal(t, "21.5", cells[3])
	assert.Equal(t, "14.25", cells[15])
}

func TestFormatValue(t *testing.T) {
	stamp := time.Date(2017, 5, 1, 8, 4, 5, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "Starting", "Starting"},
		{"bytes", []byte("12.50"), "12.50"},
		{"int64", int64(1234), "1234"},
		{"int", 42, "42"},
		{"float", 1013.25, "1013.25"},
		{"whole float", 20.0, "20"},
		{"float32", float32(0.5), "0.5"},
		{"bool", true, "true"},
		{"time", stamp, "2017-05-01 08:04:05"},
		{"time pointer", &stamp, "2017-05-01 08:04:05"},
		{"nil time pointer", (*time.Time)(nil), ""},
		{"other", uint8(3), "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render.FormatValue(tt.in))
		})
	}
}

func TestHTML_Document(t *testing.T) {
	records := []models.Record{
		{"id": int64(22), "timestamp": "2017-05-01 08:00:00", "sensor": "A1F3", "message": "<b>12 cycles</b>"},
		{"id": int64(21), "sensor": "A1F3", "message": "Starting"},
	}
	page := &models.Page{
		View:    models.StatusView,
		Request: models.PageRequest{Page: 1, Limit: 2},
		Rows:    render.Rows(models.StatusView.Columns, records),
		Links: []models.NavLink{
			{Label: models.LinkPrevious, Page: models.FirstPage, Limit: 2},
			{Label: models.LinkNext, Page: 1, Limit: 2},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, render.HTML(&buf, page))
	out := buf.String()

	assert.Contains(t, out, "<title>Arduino Beestation Status Log</title>")
	assert.Contains(t, out, ".table_cells_odd {")
	assert.Equal(t, 4, strings.Count(out, `class="table_titles"`))
	assert.Contains(t, out, `<td class="table_titles">Sensor Serial</td>`)
	assert.Equal(t, 4, strings.Count(out, `<td class="table_cells_odd">`))
	assert.Equal(t, 4, strings.Count(out, `<td class="table_cells_even">`))
	assert.Contains(t, out, "&lt;b&gt;12 cycles&lt;/b&gt;")
	assert.NotContains(t, out, "<b>12 cycles</b>")
	assert.Contains(t, out, `<a href="/beestation?limit=2">Previous 2 Records</a> |`)
	assert.Contains(t, out, `<a href="/beestation?limit=2&amp;page=1">Next 2 Records</a>`)
}

func TestHTML_NoLinksForEmptyTable(t *testing.T) {
	page := &models.Page{View: models.ReadingsView, Request: models.PageRequest{Limit: 20}}

	var buf bytes.Buffer
	require.NoError(t, render.HTML(&buf, page))
	out := buf.String()

	assert.Equal(t, 16, strings.Count(out, `class="table_titles"`))
	assert.NotContains(t, out, "table_cells_odd\">")
	assert.NotContains(t, out, "<a href")
}

func TestErrorHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.ErrorHTML(&buf, "Arduino Temperature/Humidity Log", 503, "record store unavailable", "req_123"))
	out := buf.String()

	assert.Contains(t, out, "Error 503:</strong> record store unavailable")
	assert.Contains(t, out, "Request ID: req_123")
}
