package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	keplergl "github.com/flywave/go-keplergl"
	"github.com/flywave/go-keplergl/builder"
	"github.com/flywave/go-keplergl/color"
)

const fixture = "../../testdata/drone_sim.json"

func resetFlags() {
	logger = zap.NewNop()
	settingsPath = ""
	fmtOutput, fmtTo = "", ""
	newLayers, newTooltips, newBBox, newOutput, newFormat = nil, nil, "", "", "json"
	fitBBox, fitGeoJSON, fitWidth, fitHeight, fitPadding, fitWrite = "", "", 0, 0, -1, false
	rampFrom, rampTo, rampSteps, rampReverse, rampList = "", "", 0, false, false
	sqlData, sqlTable = "", ""
}

func testCmd() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	return cmd, &out
}

func copyFixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(fixture)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, b, 0o644))
	return path
}

func TestValidateCmd(t *testing.T) {
	resetFlags()
	cmd, out := testCmd()
	require.NoError(t, runValidate(cmd, []string{fixture}))
	assert.Contains(t, out.String(), "drone_sim.json: ok")

	bad := copyFixture(t, "bad.json")
	doc, err := keplergl.Load(bad)
	require.NoError(t, err)
	doc.Config.VisState.Layers[1].ID = doc.Config.VisState.Layers[0].ID
	require.NoError(t, keplergl.Save(bad, doc))

	err = runValidate(cmd, []string{fixture, bad, filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err)
	assert.Equal(t, "2 of 3 files invalid", err.Error())
}

func TestFmtCmd(t *testing.T) {
	resetFlags()
	cmd, out := testCmd()
	fmtTo = "yaml"
	require.NoError(t, runFmt(cmd, []string{fixture}))
	assert.True(t, strings.HasPrefix(out.String(), "version: v1\n"))

	resetFlags()
	yamlPath := filepath.Join(t.TempDir(), "map.yml")
	fmtOutput = yamlPath
	require.NoError(t, runFmt(cmd, []string{fixture}))
	doc, err := keplergl.Load(yamlPath)
	require.NoError(t, err)
	assert.Len(t, doc.Config.VisState.Layers, 3)

	resetFlags()
	fmtTo = "xml"
	assert.Error(t, runFmt(cmd, []string{fixture}))
}

func TestNewCmd(t *testing.T) {
	resetFlags()
	cmd, out := testCmd()
	newLayers = []string{"geojson:Grid_json", "trip:Trips:Drone trips"}
	newTooltips = []string{"Trips:creation_id, agent_type"}
	newBBox = "10.4,53.3,10.7,53.5"
	require.NoError(t, runNew(cmd, nil))

	doc, err := keplergl.Parse(out)
	require.NoError(t, err)
	require.NoError(t, keplergl.Validate(doc))
	layers := doc.Config.VisState.Layers
	require.Len(t, layers, 2)
	assert.Equal(t, keplergl.Trip, layers[1].Type)
	assert.Equal(t, "Drone trips", layers[1].Config.Label)
	fields := doc.Config.VisState.InteractionConfig.Tooltip.FieldsToShow["Trips"]
	require.Len(t, fields, 2)
	assert.Equal(t, "agent_type", fields[1].Name)
	assert.InDelta(t, 10.55, doc.Config.MapState.Longitude, 1e-9)

	resetFlags()
	newLayers = []string{"hexagon:d"}
	assert.Error(t, runNew(cmd, nil))

	resetFlags()
	newLayers = []string{"geojson"}
	assert.Error(t, runNew(cmd, nil))
}

func TestNewCmdSettings(t *testing.T) {
	resetFlags()
	settingsPath = filepath.Join(t.TempDir(), "s.toml")
	require.NoError(t, os.WriteFile(settingsPath, []byte("[style]\ntype = \"light\"\n"), 0o644))
	cmd, out := testCmd()
	newFormat = "yaml"
	require.NoError(t, runNew(cmd, nil))
	assert.Contains(t, out.String(), "styleType: light")
}

func TestParseHelpers(t *testing.T) {
	b, err := parseBBox("-10, -5, 10, 5")
	require.NoError(t, err)
	assert.Equal(t, orb.Bound{Min: orb.Point{-10, -5}, Max: orb.Point{10, 5}}, b)
	for _, in := range []string{"1,2,3", "a,b,c,d", "10,0,-10,5"} {
		_, err := parseBBox(in)
		assert.Error(t, err, in)
	}

	spec, err := parseLayerSpec("trip:Trips:Label:with:colons")
	require.NoError(t, err)
	assert.Equal(t, "Label:with:colons", spec.Label)
	_, err = parseLayerSpec("trip:")
	assert.Error(t, err)

	id, fields, err := parseTooltip("Grid:")
	require.NoError(t, err)
	assert.Equal(t, "Grid", id)
	assert.Empty(t, fields)
	_, _, err = parseTooltip("nofields")
	assert.Error(t, err)
}

func TestFitCmd(t *testing.T) {
	resetFlags()
	path := copyFixture(t, "map.json")
	cmd, out := testCmd()

	fitBBox = "-10,-10,10,10"
	fitWidth, fitHeight, fitPadding = 512, 512, 0
	require.NoError(t, runFit(cmd, []string{path}))
	doc, err := keplergl.Parse(out)
	require.NoError(t, err)
	assert.InDelta(t, 4.16, doc.Config.MapState.Zoom, 0.02)

	geo := filepath.Join(t.TempDir(), "pts.geojson")
	require.NoError(t, os.WriteFile(geo, []byte(`{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[13.3,52.4]}},
		{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[13.5,52.6]}}]}`), 0o644))
	resetFlags()
	fitGeoJSON = geo
	fitWrite = true
	require.NoError(t, runFit(cmd, []string{path}))
	doc, err = keplergl.Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 13.4, doc.Config.MapState.Longitude, 1e-9)

	resetFlags()
	assert.Error(t, runFit(cmd, []string{path}))
	fitBBox, fitGeoJSON = "0,0,1,1", geo
	assert.Error(t, runFit(cmd, []string{path}))
}

func TestRampCmd(t *testing.T) {
	resetFlags()
	cmd, out := testCmd()
	rampList = true
	require.NoError(t, runRamp(cmd, nil))
	assert.Contains(t, out.String(), "Global Warming\n")

	resetFlags()
	out.Reset()
	rampSteps = 3
	rampReverse = true
	require.NoError(t, runRamp(cmd, []string{"Global Warming"}))
	assert.Contains(t, out.String(), `"reversed": true`)
	assert.Contains(t, out.String(), `"#FFC300"`)

	resetFlags()
	out.Reset()
	rampFrom, rampTo = "#000000", "#FFFFFF"
	require.NoError(t, runRamp(cmd, nil))
	assert.Equal(t, 6, strings.Count(out.String(), `"#`))

	resetFlags()
	assert.Error(t, runRamp(cmd, nil))
	assert.Error(t, runRamp(cmd, []string{"nope"}))
}

func TestSQLCmd(t *testing.T) {
	resetFlags()
	path := copyFixture(t, "map.json")
	doc, err := keplergl.Load(path)
	require.NoError(t, err)
	doc.Config.VisState.Filters = append(doc.Config.VisState.Filters, keplergl.Filter{
		ID: "f", DataID: []string{"Trips"}, Name: []string{"agent_type"},
		Type: keplergl.MultiSelectFilter, Value: keplergl.Some[any]([]interface{}{"drone"}),
	})
	require.NoError(t, keplergl.Save(path, doc))

	cmd, out := testCmd()
	sqlData = "Trips"
	require.NoError(t, runSQL(cmd, []string{path}))
	assert.Equal(t, `SELECT * FROM (SELECT * FROM Trips WHERE ("agent_type" IN ('drone'))) as filtered`+"\n", out.String())

	out.Reset()
	sqlData, sqlTable = "Signals", "signals"
	require.NoError(t, runSQL(cmd, []string{path}))
	assert.Equal(t, "SELECT * FROM signals\n", out.String())
}

func TestWatch(t *testing.T) {
	resetFlags()
	path := copyFixture(t, "map.json")
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, past, past))

	ctx, cancel := context.WithCancel(context.Background())
	updates := make(chan builder.Update, 16)
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, builder.NewCache(nil), []string{path}, func(u builder.Update) { updates <- u })
	}()

	select {
	case u := <-updates:
		require.NoError(t, u.Err)
	case <-time.After(5 * time.Second):
		t.Fatal("no initial report")
	}

	doc, err := keplergl.Load(path)
	require.NoError(t, err)
	doc.Config.MapState.Latitude = 100
	require.NoError(t, keplergl.Save(path, doc))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case u := <-updates:
			if u.Err == nil {
				continue
			}
			assert.Contains(t, u.Err.Error(), "/config/mapState/latitude")
			cancel()
			require.NoError(t, <-done)
			return
		case <-deadline:
			cancel()
			t.Fatal("change was not reported")
		}
	}
}

func TestFmtKeepsColorFractions(t *testing.T) {
	resetFlags()
	path := copyFixture(t, "map.json")
	cmd, _ := testCmd()
	out := filepath.Join(t.TempDir(), "map.yaml")
	fmtOutput = out
	require.NoError(t, runFmt(cmd, []string{path}))
	doc, err := keplergl.Load(out)
	require.NoError(t, err)
	c, ok := doc.Config.MapStyle.ThreeDBuildingColor.Get()
	require.True(t, ok)
	assert.Equal(t, color.RGB(9.665468314072013, 17.18305478057247, 31.1442867897876), c)
}
