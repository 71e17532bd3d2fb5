package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiValue(t *testing.T) {
	t.Run("renders value added for a usergroup", func(t *testing.T) {
		for _, g := range []string{NoUsergroup, "b2b", "retail"} {
			m := NewMultiValue("name", ",")
			m.AddValue("Shirt", g)
			assert.Contains(t, m.CSVFragment(g), "Shirt", "usergroup %q", g)
		}
	})

	t.Run("preserves insertion order without deduplication", func(t *testing.T) {
		m := NewMultiValue("keyword", ",")
		m.AddValue("b", NoUsergroup)
		m.AddValue("a", NoUsergroup)
		m.AddValue("b", NoUsergroup)

		assert.Equal(t, "b,a,b", m.CSVFragment(NoUsergroup))
		assert.Equal(t, 3, m.Len())
	})

	t.Run("has no fallback to the default bucket", func(t *testing.T) {
		m := NewMultiValue("name", ",")
		m.AddValue("Shirt", NoUsergroup)

		assert.Empty(t, m.CSVFragment("b2b"))
	})

	t.Run("unknown usergroup yields empty output", func(t *testing.T) {
		m := NewMultiValue("name", ",")
		assert.Empty(t, m.CSVFragment("missing"))
		assert.True(t, m.IsEmpty())

		_, ok := m.Values("missing")
		assert.False(t, ok)
	})

	t.Run("xml fragments list default bucket first then sorted usergroups", func(t *testing.T) {
		m := NewMultiValue("name", ",")
		m.AddValue("Retail", "retail")
		m.AddValue("Business", "b2b")
		m.AddValue("Default", NoUsergroup)
		m.AddValue("Business 2", "b2b")

		fragments := m.XMLFragments()
		require.Len(t, fragments, 3)
		assert.Equal(t, XMLFragment{Name: "name", Values: []string{"Default"}}, fragments[0])
		assert.Equal(t, XMLFragment{Name: "name", Usergroup: "b2b", Values: []string{"Business", "Business 2"}}, fragments[1])
		assert.Equal(t, XMLFragment{Name: "name", Usergroup: "retail", Values: []string{"Retail"}}, fragments[2])
	})

	t.Run("value name is the field name", func(t *testing.T) {
		assert.Equal(t, "description", NewMultiValue("description", ",").ValueName())
	})
}

func TestUsergroupAwareMultiValue(t *testing.T) {
	t.Run("falls back to the default bucket", func(t *testing.T) {
		u := NewUsergroupAwareMultiValue("name", ",")
		u.AddValue("Shirt", NoUsergroup)

		assert.Equal(t, "Shirt", u.CSVFragment("b2b"))
		assert.Equal(t, "Shirt", u.CSVFragment(NoUsergroup))
	})

	t.Run("scoped values replace the default without merging", func(t *testing.T) {
		u := NewUsergroupAwareMultiValue("name", ",")
		u.AddValue("Shirt", NoUsergroup)
		u.AddValue("Corporate Shirt", "b2b")

		assert.Equal(t, "Corporate Shirt", u.CSVFragment("b2b"))
		assert.Equal(t, "Shirt", u.CSVFragment("retail"))
	})

	t.Run("never falls back to another scoped bucket", func(t *testing.T) {
		u := NewUsergroupAwareMultiValue("name", ",")
		u.AddValue("Corporate Shirt", "b2b")

		assert.Empty(t, u.CSVFragment("retail"))
		_, ok := u.Resolve("retail")
		assert.False(t, ok)
	})

	t.Run("joins resolved bucket with separator", func(t *testing.T) {
		u := NewUsergroupAwareMultiValue("image", ";")
		u.AddValue("a.jpg", "b2b")
		u.AddValue("b.jpg", "b2b")

		assert.Equal(t, "a.jpg;b.jpg", u.CSVFragment("b2b"))
	})

	t.Run("empty when no bucket exists", func(t *testing.T) {
		assert.Empty(t, NewUsergroupAwareMultiValue("name", ",").CSVFragment("b2b"))
	})
}

func TestValue(t *testing.T) {
	v := NewValue("Shirt", "b2b")
	assert.Equal(t, "Shirt", v.Raw())
	assert.Equal(t, "b2b", v.Usergroup())
	assert.True(t, v.HasUsergroup())
	assert.False(t, NewValue("Shirt", NoUsergroup).HasUsergroup())
}
