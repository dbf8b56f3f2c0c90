package reflectdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// saveUnit builds a per-unit database, fills it, and snapshots it to dir.
func saveUnit(t *testing.T, dir, name string, fill func(d *Database)) string {
	t.Helper()
	d := New()
	fill(d)
	path := filepath.Join(dir, name)
	require.NoError(t, SaveSnapshot(path, d))
	return path
}

func TestCombine_DisjointUnits(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	a := saveUnit(t, dir, "a.rdb", func(d *Database) {
		gfx := d.Intern("gfx")
		d.AddPrimitive(NewNamespace(gfx, NoName))
		d.AddPrimitive(NewClass(d.Intern("Sprite"), gfx, NoName, 48))
		d.AddPrimitive(NewFunction(d.Intern("Draw"), d.Intern("Sprite"), 1))
	})
	b := saveUnit(t, dir, "b.rdb", func(d *Database) {
		phys := d.Intern("physics")
		d.AddPrimitive(NewNamespace(phys, NoName))
		d.AddPrimitive(NewEnum(d.Intern("BodyKind"), phys))
		d.AddPrimitive(NewEnumConstant(d.Intern("STATIC"), d.Intern("BodyKind"), 0))
	})

	agg, err := Combine(context.Background(), []string{a, b})
	require.NoError(t, err)

	assert.Equal(t, 2, agg.Store(KindNamespace).Len())
	assert.Equal(t, 1, agg.Store(KindClass).Len())
	assert.Equal(t, 1, agg.Store(KindEnum).Len())
	assert.Equal(t, 1, agg.Store(KindEnumConstant).Len())
	assert.Equal(t, 1, agg.Store(KindFunction).Len())
}

func TestCombine_OrderIndependentContent(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	a := saveUnit(t, dir, "a.rdb", func(d *Database) {
		d.AddPrimitive(NewFunction(d.Intern("foo"), d.Intern("Root"), 1))
	})
	b := saveUnit(t, dir, "b.rdb", func(d *Database) {
		d.AddPrimitive(NewFunction(d.Intern("foo"), d.Intern("Root"), 2))
	})

	ab, err := Combine(context.Background(), []string{a, b})
	require.NoError(t, err)
	ba, err := Combine(context.Background(), []string{b, a})
	require.NoError(t, err)

	assert.Equal(t, ab.Store(KindFunction).Len(), ba.Store(KindFunction).Len())
	assert.ElementsMatch(t, ab.All(KindFunction, "foo"), ba.All(KindFunction, "foo"))
}

func TestCombine_OverlappingUnitsDedup(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	// Both units re-declare the shared header's scope and class verbatim —
	// the common cross-unit case.
	shared := func(d *Database) {
		core := d.Intern("core")
		d.AddPrimitive(NewNamespace(core, NoName))
		d.AddPrimitive(NewClass(d.Intern("Buffer"), core, NoName, 24))
	}
	a := saveUnit(t, dir, "a.rdb", func(d *Database) {
		shared(d)
		d.AddPrimitive(NewFunction(d.Intern("Read"), d.Intern("Buffer"), 1))
	})
	b := saveUnit(t, dir, "b.rdb", func(d *Database) {
		shared(d)
		d.AddPrimitive(NewFunction(d.Intern("Write"), d.Intern("Buffer"), 2))
	})

	agg, err := Combine(context.Background(), []string{a, b})
	require.NoError(t, err)

	assert.Equal(t, 1, agg.Store(KindNamespace).Len(), "re-declared scope appears once")
	assert.Equal(t, 1, agg.Store(KindClass).Len(), "re-declared class appears once")
	assert.Equal(t, 2, agg.Store(KindFunction).Len())
}

func TestCombine_MissingSnapshot(t *testing.T) {
	t.Parallel()

	_, err := Combine(context.Background(), []string{filepath.Join(t.TempDir(), "gone.rdb")})
	assert.Error(t, err)
}

func TestCombine_CancelledContext(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	a := saveUnit(t, dir, "a.rdb", func(d *Database) { d.Intern("x") })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Combine(ctx, []string{a})
	assert.Error(t, err)
}

func TestCombine_NoUnits(t *testing.T) {
	t.Parallel()

	agg, err := Combine(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, agg.Names().Len())
}
