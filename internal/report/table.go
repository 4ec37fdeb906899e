package report

const (
	TotalColumn = "Total"
	TotalsRow   = "TOTALS"
)

// Table is the rendered pivot: ordered headers and integer rows, closed by a
// totals row.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    []TableRow `json:"rows"`
}

type TableRow struct {
	Label string  `json:"label"`
	Cells []int64 `json:"cells"`
}

// Table lays the pivot out for display. Headers are the row dimension label,
// the pivot columns and a trailing Total column; every row has one cell per
// pivot column plus its total.
func (p Pivot) Table() Table {
	headers := make([]string, 0, len(p.Columns)+2)
	headers = append(headers, cornerLabel(p.Axis))
	headers = append(headers, p.Columns...)
	headers = append(headers, TotalColumn)

	rows := make([]TableRow, 0, len(p.Rows)+1)
	for _, row := range p.Rows {
		cells := make([]int64, 0, len(p.Columns)+1)
		for _, column := range p.Columns {
			cells = append(cells, row.Cell(column))
		}
		cells = append(cells, row.Total)
		rows = append(rows, TableRow{Label: row.Name, Cells: cells})
	}

	totals := make([]int64, 0, len(p.Columns)+1)
	for _, column := range p.Columns {
		totals = append(totals, p.ColumnTotals[column])
	}
	totals = append(totals, p.GrandTotal)
	rows = append(rows, TableRow{Label: TotalsRow, Cells: totals})

	return Table{Headers: headers, Rows: rows}
}

func cornerLabel(axis Axis) string {
	if axis == ByServer {
		return "Servidor"
	}
	return "Franquicia"
}
