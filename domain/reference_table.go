package domain

// ReferenceTable holds surrender values per 1000 units for a fixed monthly
// premium. Rows are contract years, columns follow Rates.
type ReferenceTable struct {
	Premium float64     `yaml:"premium"`
	Rates   []float64   `yaml:"rates"`
	Rows    [][]float64 `yaml:"rows"`
}

// Clone returns a deep copy of the table.
func (t ReferenceTable) Clone() ReferenceTable {
	rows := make([][]float64, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = append([]float64(nil), row...)
	}
	return ReferenceTable{
		Premium: t.Premium,
		Rates:   append([]float64(nil), t.Rates...),
		Rows:    rows,
	}
}
