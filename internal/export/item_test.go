package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem(t *testing.T) {
	e, err := Create(TypeXML, DefaultItemsPerPage, nil)
	require.NoError(t, err)

	t.Run("ordernumbers are kept per usergroup and combined", func(t *testing.T) {
		item := e.CreateItem("1")
		item.AddOrdernumber(NewOrdernumber("A", NoUsergroup))
		item.AddOrdernumber(NewOrdernumber("B", "b2b"))

		values, ok := item.Ordernumbers().Values("b2b")
		require.True(t, ok)
		assert.Equal(t, []string{"B"}, values)
		assert.Equal(t, "A|B", item.AllOrdernumbers().CSVFragment(NoUsergroup))
	})

	t.Run("attributes with the same key are merged", func(t *testing.T) {
		item := e.CreateItem("1")
		item.AddAttribute(NewAttribute("color", "red"))
		item.AddAttribute(NewAttribute("size", "M"))

		blue := NewAttribute("color", "blue")
		blue.AddValue("navy", "b2b")
		item.AddAttribute(blue)

		require.Len(t, item.Attributes(), 2)
		values, ok := item.Attribute("color").Values(NoUsergroup)
		require.True(t, ok)
		assert.Equal(t, []string{"red", "blue"}, values)

		scoped, ok := item.Attribute("color").Values("b2b")
		require.True(t, ok)
		assert.Equal(t, []string{"navy"}, scoped)
	})

	t.Run("adding the same attribute twice keeps its values once", func(t *testing.T) {
		item := e.CreateItem("1")
		color := NewAttribute("color", "red")
		item.AddAttribute(color)
		item.AddAttribute(color)

		require.Len(t, item.Attributes(), 1)
		assert.Equal(t, "color=red", item.Attribute("color").CSVFragment(NoUsergroup))
	})

	t.Run("numeric setters format values", func(t *testing.T) {
		item := e.CreateItem("1")
		item.AddPrice(10, NoUsergroup)
		item.AddPrice(7.5, "b2b")
		item.AddBonus(1.25, NoUsergroup)
		item.AddSalesFrequency(42, NoUsergroup)
		item.AddSort(3, NoUsergroup)

		assert.Equal(t, "10.00", item.Prices().CSVFragment(NoUsergroup))
		assert.Equal(t, "7.50", item.Prices().CSVFragment("b2b"))
		assert.Equal(t, "1.25", item.Bonuses().CSVFragment(NoUsergroup))
		assert.Equal(t, "42", item.SalesFrequencies().CSVFragment(NoUsergroup))
		assert.Equal(t, "3", item.Sorts().CSVFragment(NoUsergroup))
	})

	t.Run("groups are stored in the default bucket", func(t *testing.T) {
		item := e.CreateItem("1")
		item.AddGroup("b2b")
		item.AddGroup("retail")

		assert.Equal(t, "b2b,retail", item.Groups().CSVFragment(NoUsergroup))
		assert.Empty(t, item.Groups().Usergroups())
	})

	t.Run("properties are created on first use", func(t *testing.T) {
		item := e.CreateItem("1")
		assert.Nil(t, item.Property("brand"))

		item.AddProperty("brand", "Acme", NoUsergroup)
		item.AddProperty("brand", "Acme Pro", "b2b")

		require.Len(t, item.Properties(), 1)
		assert.Equal(t, "Acme Pro", item.Property("brand").CSVFragment("b2b"))
		assert.Equal(t, "brand", item.Property("brand").ValueName())
	})

	t.Run("fragments start with the fixed fields", func(t *testing.T) {
		item := e.CreateItem("1")
		item.AddAttribute(NewAttribute("color", "red"))
		item.AddProperty("brand", "Acme", NoUsergroup)

		fields := item.Fragments()
		require.Len(t, fields, 15)
		assert.Equal(t, "ordernumbers", fields[0].ValueName())
		assert.Equal(t, "name", fields[1].ValueName())
		assert.Equal(t, "attribute", fields[13].ValueName())
		assert.Equal(t, "brand", fields[14].ValueName())
	})
}
