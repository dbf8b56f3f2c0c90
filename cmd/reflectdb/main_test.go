package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/reflectdb"
)

func sampleDatabase() *reflectdb.Database {
	d := reflectdb.New()
	game := d.Intern("game")
	d.AddPrimitive(reflectdb.NewNamespace(game, reflectdb.NoName))
	d.AddPrimitive(reflectdb.NewClass(d.Intern("Player"), game, d.Intern("Entity"), 64))
	d.AddPrimitive(reflectdb.NewEnumConstant(d.Intern("IDLE"), d.Intern("State"), 3))
	d.AddPrimitive(reflectdb.NewFunction(d.Intern("Move"), d.Intern("Player"), 7))
	d.AddPrimitive(reflectdb.NewField(d.Intern("health"), d.Intern("Player"), d.Intern("int"), reflectdb.ModifierValue, true, 8, 0))
	d.AddPrimitive(reflectdb.NewField(reflectdb.NoName, d.Intern("Move"), d.Intern("float"), reflectdb.ModifierReference, false, 0, 7))
	return d
}

func TestValidateFormat(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validateFormat("json"))
	assert.NoError(t, validateFormat("text"))
	assert.Error(t, validateFormat("yaml"))
}

func TestRenderDump_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, renderDump(&buf, sampleDatabase(), "text"))
	out := buf.String()

	assert.Contains(t, out, "class")
	assert.Contains(t, out, "Player")
	assert.Contains(t, out, "base=Entity size=64")
	assert.Contains(t, out, "value=3")
	assert.Contains(t, out, "id=7")
	assert.Contains(t, out, "type=int value offset=8 const")
	assert.Contains(t, out, "fn=7")
	assert.Contains(t, out, "6 primitives")
}

func TestRenderDump_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, renderDump(&buf, sampleDatabase(), "json"))

	var doc dumpDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 1, doc.Counts["namespace"])
	assert.Equal(t, 1, doc.Counts["class"])
	assert.Equal(t, 2, doc.Counts["field"], "named and unnamed fields both counted")
	assert.Len(t, doc.Entries, 6)
}

func TestRenderDump_JSONKeepsZeroPayloads(t *testing.T) {
	t.Parallel()

	// Zero is a real payload value, not absence: an enum constant with value
	// 0 and a field at offset 0 must survive the dump distinguishably.
	d := reflectdb.New()
	d.AddPrimitive(reflectdb.NewEnumConstant(d.Intern("NONE"), d.Intern("Flags"), 0))
	d.AddPrimitive(reflectdb.NewField(d.Intern("first"), d.Intern("Header"), d.Intern("int"), reflectdb.ModifierValue, false, 0, 0))

	var buf bytes.Buffer
	require.NoError(t, renderDump(&buf, d, "json"))
	out := buf.String()

	assert.Contains(t, out, `"value": 0`)
	assert.Contains(t, out, `"offset": 0`)
	assert.Contains(t, out, `"is_const": false`)
}

func TestBuildDump_UnnamedFieldHasEmptyName(t *testing.T) {
	t.Parallel()

	doc := buildDump(sampleDatabase())
	var unnamed int
	for _, e := range doc.Entries {
		if e.Kind == "field" && e.Name == "" {
			unnamed++
			assert.Equal(t, "Move", e.Parent)
		}
	}
	assert.Equal(t, 1, unnamed)
}
