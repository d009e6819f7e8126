// Package filtersql turns map filters into SQL conditions so a dataset
// can be cut down before it is handed to the map.
package filtersql

import (
	"strconv"
	"strings"

	keplergl "github.com/flywave/go-keplergl"
)

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func literal(v interface{}) (string, bool) {
	switch v := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'", true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		if v {
			return "TRUE", true
		}
		return "FALSE", true
	}
	return "", false
}

func literals(vals []interface{}) ([]string, bool) {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		s, ok := literal(v)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// condition returns the SQL condition of f for dataset dataID or "" when
// f does not restrict that dataset.
func condition(f *keplergl.Filter, dataID string) string {
	field, ok := f.FieldFor(dataID)
	if !ok {
		return ""
	}
	value, ok := f.Value.Get()
	if !ok {
		return ""
	}
	col := quoteIdent(field)

	switch f.Type {
	case keplergl.MultiSelectFilter:
		vals, _ := value.([]interface{})
		lits, ok := literals(vals)
		if !ok || len(lits) == 0 {
			return ""
		}
		return col + " IN (" + strings.Join(lits, ", ") + ")"
	case keplergl.SelectFilter, keplergl.InputFilter:
		lit, ok := literal(value)
		if !ok {
			return ""
		}
		return col + " = " + lit
	case keplergl.RangeFilter, keplergl.TimeRangeFilter:
		vals, _ := value.([]interface{})
		if len(vals) != 2 {
			return ""
		}
		lits, ok := literals(vals)
		if !ok {
			return ""
		}
		return col + " BETWEEN " + lits[0] + " AND " + lits[1]
	}
	return ""
}

// FilterString joins the conditions of all filters on dataID with AND.
// Filters without a value, polygon filters and filters on other datasets
// are skipped. Returns "" if nothing applies.
func FilterString(filters []keplergl.Filter, dataID string) string {
	var parts []string
	for i := range filters {
		if c := condition(&filters[i], dataID); c != "" {
			parts = append(parts, c)
		}
	}
	if parts == nil {
		return ""
	}
	return "(" + strings.Join(parts, " AND ") + ")"
}

func WrapWhere(query, where string) string {
	if where == "" {
		return query
	}
	return "(SELECT * FROM " + query + " WHERE " + where + ") as filtered"
}
