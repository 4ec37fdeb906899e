// Package report turns flat lead distribution records into pivot tables.
//
// Aggregation is pure: it never touches the data store, keeps no state between
// calls and yields identical output for identical input.
package report

import (
	"strings"

	"usina-leads/internal/model"
)

// UnknownName labels records whose franchise or server name is missing.
const UnknownName = "Desconocido"

// Axis selects which record dimension forms the pivot rows.
type Axis string

const (
	// ByFranchise puts franchises in rows and servers in columns.
	ByFranchise Axis = "franchise"
	// ByServer puts servers in rows and franchises in columns.
	ByServer Axis = "server"
)

type Row struct {
	Name  string           `json:"name"`
	Cells map[string]int64 `json:"cells"`
	Total int64            `json:"total"`
}

type Pivot struct {
	Axis         Axis             `json:"axis"`
	Columns      []string         `json:"columns"`
	Rows         []Row            `json:"rows"`
	ColumnTotals map[string]int64 `json:"column_totals"`
	GrandTotal   int64            `json:"grand_total"`
}

// Aggregate builds the franchise × server pivot.
func Aggregate(records []model.LeadDistributionRecord) Pivot {
	return AggregateBy(records, ByFranchise)
}

// AggregateBy builds a pivot with rows taken from the given axis. Rows and
// columns keep the order in which their names first appear in records.
func AggregateBy(records []model.LeadDistributionRecord, axis Axis) Pivot {
	if axis != ByServer {
		axis = ByFranchise
	}

	pivot := Pivot{
		Axis:         axis,
		Columns:      []string{},
		Rows:         []Row{},
		ColumnTotals: map[string]int64{},
	}
	rowIndex := make(map[string]int)

	for _, record := range records {
		franchise := labelOf(record.FranchiseName)
		server := labelOf(record.ServerName)

		rowName, column := franchise, server
		if axis == ByServer {
			rowName, column = server, franchise
		}

		idx, ok := rowIndex[rowName]
		if !ok {
			idx = len(pivot.Rows)
			rowIndex[rowName] = idx
			pivot.Rows = append(pivot.Rows, Row{Name: rowName, Cells: map[string]int64{}})
		}

		if _, seen := pivot.ColumnTotals[column]; !seen {
			pivot.Columns = append(pivot.Columns, column)
			pivot.ColumnTotals[column] = 0
		}

		row := &pivot.Rows[idx]
		row.Cells[column] += record.LeadCount
		row.Total += record.LeadCount
		pivot.ColumnTotals[column] += record.LeadCount
		pivot.GrandTotal += record.LeadCount
	}

	return pivot
}

// Cell returns the count for a row and column, zero when the pair never occurred.
func (r Row) Cell(column string) int64 {
	return r.Cells[column]
}

func labelOf(name *string) string {
	if name == nil {
		return UnknownName
	}
	if strings.TrimSpace(*name) != "" {
		return *name
	}
	return UnknownName
}
