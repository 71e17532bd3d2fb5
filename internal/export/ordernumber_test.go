package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdernumber(t *testing.T) {
	o := NewOrdernumber("SKU-1\t", "b2b")
	assert.Equal(t, "SKU-1\t", o.CSVFragment())
	assert.Equal(t, "b2b", o.Usergroup())
}

func TestAllOrdernumbers(t *testing.T) {
	t.Run("pipe-joins in insertion order regardless of usergroup", func(t *testing.T) {
		all := NewAllOrdernumbers()
		all.AddOrdernumber(NewOrdernumber("A", "b2b"))
		all.AddOrdernumber(NewOrdernumber("B", NoUsergroup))

		assert.Equal(t, "A|B", all.CSVFragment(NoUsergroup))
		assert.Equal(t, "A|B", all.CSVFragment("retail"))
	})

	t.Run("empty aggregate renders empty string", func(t *testing.T) {
		all := NewAllOrdernumbers()
		assert.Equal(t, "", all.CSVFragment(NoUsergroup))
		assert.Empty(t, all.XMLFragments())
	})

	t.Run("value name differs from configured name", func(t *testing.T) {
		all := NewAllOrdernumbers()
		assert.Equal(t, "allOrdernumbers", all.ValueName())
		assert.Equal(t, "ordernumbers", all.Name())
	})

	t.Run("xml view is a single default fragment", func(t *testing.T) {
		all := NewAllOrdernumbers()
		all.AddOrdernumber(NewOrdernumber("A", "b2b"))
		all.AddOrdernumber(NewOrdernumber("B", "retail"))

		fragments := all.XMLFragments()
		require.Len(t, fragments, 1)
		assert.Equal(t, "", fragments[0].Usergroup)
		assert.Equal(t, []string{"A", "B"}, fragments[0].Values)
	})
}

func TestAttribute(t *testing.T) {
	t.Run("url-encodes key value pairs", func(t *testing.T) {
		a := NewAttribute("cat egory", "Shirts & Tops", "Sale")
		assert.Equal(t, "cat+egory=Shirts+%26+Tops&cat+egory=Sale", a.CSVFragment(NoUsergroup))
	})

	t.Run("falls back to default values", func(t *testing.T) {
		a := NewAttribute("color", "red")
		a.AddValue("blue", "b2b")

		assert.Equal(t, "color=blue", a.CSVFragment("b2b"))
		assert.Equal(t, "color=red", a.CSVFragment("retail"))
	})

	t.Run("xml fragments carry the key", func(t *testing.T) {
		a := NewAttribute("color", "red")
		fragments := a.XMLFragments()
		require.Len(t, fragments, 1)
		assert.Equal(t, XMLFragment{Name: "attribute", Key: "color", Values: []string{"red"}}, fragments[0])
	})
}
