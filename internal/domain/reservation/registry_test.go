package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeStrategy struct{ key, name string }

func (f fakeStrategy) Type() string { return f.key }
func (f fakeStrategy) Name() string { return f.name }

func TestRegistry_FindByType(t *testing.T) {
	a := fakeStrategy{"credit", "A"}
	b := fakeStrategy{"onsite", "B"}
	reg := NewRegistry[Strategy](a, b)

	assert.Equal(t, b, reg.FindByType("onsite"))
	assert.Equal(t, b, reg.FindByType("ONSITE"), "match is case-insensitive")
	assert.Equal(t, a, reg.FindByType("unknown-key"), "falls back to first registered")
}

func TestRegistry_Lookup(t *testing.T) {
	reg := NewRegistry[Strategy](fakeStrategy{"email", "Email"})
	_, ok := reg.Lookup("sms")
	assert.False(t, ok)
	s, ok := reg.Lookup("Email")
	assert.True(t, ok)
	assert.Equal(t, "Email", s.Name())
}

func TestRegistry_RegisterOverwritesInPlace(t *testing.T) {
	reg := NewRegistry[Strategy](fakeStrategy{"a", "first"}, fakeStrategy{"b", "B"})
	reg.Register(fakeStrategy{"a", "second"})

	all := reg.All()
	assert.Len(t, all, 2)
	assert.Equal(t, "second", all[0].Name())
	assert.Equal(t, "B", all[1].Name())
}

func TestRegistry_AllPreservesOrder(t *testing.T) {
	reg := NewRegistry[Strategy]()
	for _, k := range []string{"z", "a", "m"} {
		reg.Register(fakeStrategy{k, k})
	}
	var keys []string
	for _, s := range reg.All() {
		keys = append(keys, s.Type())
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)
}

func TestRegistry_Empty(t *testing.T) {
	reg := NewRegistry[Strategy]()
	assert.Nil(t, reg.FindByType("anything"))
	assert.Equal(t, 0, reg.Len())
}
