// FilePath: internal/models/models.record.go
package models

// Record is one row of a log table, field name to scalar value. Fields the
// row does not carry are simply absent.
type Record map[string]any

// ID returns the record's identifier, or 0 if it has none
func (r Record) ID() int64 {
	switch id := r["id"].(type) {
	case int64:
		return id
	case int32:
		return int64(id)
	case int:
		return int64(id)
	}
	return 0
}

// Table names a log table. Only the constants below are ever queried.
type Table string

const (
	TableReadings Table = "dht22"
	TableStatus   Table = "beestation"
)

// Valid reports whether t is one of the known tables
func (t Table) Valid() bool {
	switch t {
	case TableReadings, TableStatus:
		return true
	}
	return false
}

// Column is one entry of a display schema
type Column struct {
	Field string
	Label string
}

// View describes how a table is presented
type View struct {
	Table   Table
	Path    string
	Title   string
	Columns []Column
}

// Fields returns the column field names in display order
func (v View) Fields() []string {
	fields := make([]string, len(v.Columns))
	for i, c := range v.Columns {
		fields[i] = c.Field
	}
	return fields
}

// ReadingsView is the multi-sensor readings log
var ReadingsView = View{
	Table: TableReadings,
	Path:  "/dht22",
	Title: "Arduino Temperature/Humidity Log",
	Columns: []Column{
		{Field: "id", Label: "ID"},
		{Field: "timestamp", Label: "Date and Time"},
		{Field: "sensor", Label: "Sensor Serial"},
		{Field: "celsius", Label: "Temperature (C)"},
		{Field: "humidity", Label: "Humidity (Relative)"},
		{Field: "pressure", Label: "Pressure (hPa)"},
		{Field: "box_celsius", Label: "Temperature Box (C)"},
		{Field: "temp_2in", Label: "Temperature 1 2in (C)"},
		{Field: "temp_6in", Label: "Temperature 1 6in (C)"},
		{Field: "temp_10in", Label: "Temperature 1 10in (C)"},
		{Field: "temp2_2in", Label: "Temperature 2 2in (C)"},
		{Field: "temp2_6in", Label: "Temperature 2 6in (C)"},
		{Field: "temp2_10in", Label: "Temperature 2 10in (C)"},
		{Field: "temp3_2in", Label: "Temperature 3 2in (C)"},
		{Field: "temp3_6in", Label: "Temperature 3 6in (C)"},
		{Field: "temp3_10in", Label: "Temperature 3 10in (C)"},
	},
}

// StatusView is the station status message log
var StatusView = View{
	Table: TableStatus,
	Path:  "/beestation",
	Title: "Arduino Beestation Status Log",
	Columns: []Column{
		{Field: "id", Label: "ID"},
		{Field: "timestamp", Label: "Date and Time"},
		{Field: "sensor", Label: "Sensor Serial"},
		{Field: "message", Label: "Message"},
	},
}

// Views lists every served view
var Views = []View{ReadingsView, StatusView}
