package filtersql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	keplergl "github.com/flywave/go-keplergl"
)

func parseFilters(t *testing.T, filters string) []keplergl.Filter {
	t.Helper()
	doc, err := keplergl.Parse(strings.NewReader(`{"version": "v1", "config": {"visState": {"filters": ` + filters + `}}}`))
	require.NoError(t, err)
	return doc.Config.VisState.Filters
}

func TestFilterString(t *testing.T) {
	filters := parseFilters(t, `[
		{"dataId": ["Trips"], "id": "a", "name": ["agent_type"], "type": "multiSelect", "value": ["drone", "o'brien"]},
		{"dataId": ["Trips", "Signals"], "id": "b", "name": ["speed", "strength"], "type": "range", "value": [0.5, 12]},
		{"dataId": ["Trips"], "id": "c", "name": ["active"], "type": "select", "value": true},
		{"dataId": ["Trips"], "id": "d", "name": ["ts"], "type": "timeRange", "value": [1662940800000, 1662944400000]},
		{"dataId": ["Trips"], "id": "e", "name": ["x"], "type": "range", "value": null},
		{"dataId": ["Trips"], "id": "f", "name": ["y"], "type": "polygon", "value": {"type": "Feature"}}
	]`)

	assert.Equal(t,
		`("agent_type" IN ('drone', 'o''brien') AND "speed" BETWEEN 0.5 AND 12 AND "active" = TRUE AND "ts" BETWEEN 1662940800000 AND 1662944400000)`,
		FilterString(filters, "Trips"))
	assert.Equal(t, `("strength" BETWEEN 0.5 AND 12)`, FilterString(filters, "Signals"))
	assert.Equal(t, "", FilterString(filters, "Grid"))
	assert.Equal(t, "", FilterString(nil, "Trips"))
}

func TestFilterStringSkipsUnusable(t *testing.T) {
	filters := parseFilters(t, `[
		{"dataId": ["d"], "id": "a", "name": ["k"], "type": "multiSelect", "value": []},
		{"dataId": ["d"], "id": "b", "name": ["k"], "type": "multiSelect", "value": [{"nested": 1}]},
		{"dataId": ["d"], "id": "c", "name": ["k"], "type": "range", "value": [1]},
		{"dataId": ["d"], "id": "d", "name": ["k"], "type": "select", "value": [1, 2]},
		{"dataId": ["d"], "id": "e", "name": [], "type": "select", "value": "x"}
	]`)
	assert.Equal(t, "", FilterString(filters, "d"))
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"we""ird"`, quoteIdent(`we"ird`))
}

func TestWrapWhere(t *testing.T) {
	assert.Equal(t, "trips", WrapWhere("trips", ""))
	assert.Equal(t, `(SELECT * FROM trips WHERE ("a" = 1)) as filtered`, WrapWhere("trips", `("a" = 1)`))
}
