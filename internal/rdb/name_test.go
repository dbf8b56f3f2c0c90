package rdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashName_Deterministic(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "a", "Color", "crdb::Database", "a very long scope::qualified::name"}
	for _, s := range inputs {
		assert.Equal(t, HashName(s), HashName(s), "hash of %q must be stable", s)
	}
}

func TestHashName_CaseSensitive(t *testing.T) {
	t.Parallel()
	assert.NotEqual(t, HashName("Foo"), HashName("foo"))
}

func TestMixHashes_OrderSensitive(t *testing.T) {
	t.Parallel()

	a := HashName("Outer")
	b := HashName("Inner")
	assert.NotEqual(t, MixHashes(a, b), MixHashes(b, a))

	// Stable for equal inputs.
	assert.Equal(t, MixHashes(a, b), MixHashes(a, b))
}

func TestIntern_Idempotent(t *testing.T) {
	t.Parallel()
	tbl := NewNameTable()

	n1 := tbl.Intern("Player")
	n2 := tbl.Intern("Player")
	assert.Equal(t, n1, n2)
	assert.Equal(t, 1, tbl.Len())
}

func TestIntern_CrossInstanceAgreement(t *testing.T) {
	t.Parallel()

	// Two tables built independently must agree on handles — this is what
	// makes merging databases from separate scan processes possible.
	t1 := NewNameTable()
	t2 := NewNameTable()
	assert.Equal(t, t1.Intern("physics::RigidBody"), t2.Intern("physics::RigidBody"))
}

func TestByHash_NeverInserts(t *testing.T) {
	t.Parallel()
	tbl := NewNameTable()

	_, ok := tbl.ByHash(HashName("ghost"))
	assert.False(t, ok)
	assert.Equal(t, 0, tbl.Len())

	n := tbl.Intern("real")
	got, ok := tbl.ByHash(n.Hash())
	require.True(t, ok)
	assert.Equal(t, n, got)
}

func TestText_ResolvesInternedOnly(t *testing.T) {
	t.Parallel()
	tbl := NewNameTable()

	n := tbl.Intern("Color")
	text, ok := tbl.Text(n)
	require.True(t, ok)
	assert.Equal(t, "Color", text)

	_, ok = tbl.Text(NoName)
	assert.False(t, ok)
}

func TestNoName_DistinctFromEmptyString(t *testing.T) {
	t.Parallel()
	tbl := NewNameTable()

	empty := tbl.Intern("")
	assert.NotEqual(t, NoName, empty)
	assert.NotEqual(t, NoName, tbl.Intern("anything"))
	assert.True(t, NoName.IsNone())
	assert.False(t, empty.IsNone())
}

func TestNameTable_MergeFrom(t *testing.T) {
	t.Parallel()

	a := NewNameTable()
	a.Intern("shared")
	a.Intern("only-a")

	b := NewNameTable()
	b.Intern("shared")
	b.Intern("only-b")

	a.MergeFrom(b)
	assert.Equal(t, 3, a.Len())

	text, ok := a.Text(Name(HashName("only-b")))
	require.True(t, ok)
	assert.Equal(t, "only-b", text)
}
