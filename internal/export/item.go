package export

import (
	"strconv"
	"time"
)

const listSeparator = ","

// Item aggregates the exportable properties of one catalog entry. Items are
// created by Exporter.CreateItem, filled by the caller and then read by a
// single serialization pass. Item is not safe for concurrent mutation.
type Item struct {
	id     string
	format Type

	names            *UsergroupAwareMultiValue
	summaries        *UsergroupAwareMultiValue
	descriptions     *UsergroupAwareMultiValue
	prices           *UsergroupAwareMultiValue
	urls             *UsergroupAwareMultiValue
	images           *UsergroupAwareMultiValue
	keywords         *UsergroupAwareMultiValue
	bonuses          *UsergroupAwareMultiValue
	salesFrequencies *UsergroupAwareMultiValue
	datesAdded       *UsergroupAwareMultiValue
	sorts            *UsergroupAwareMultiValue
	ordernumbers     *UsergroupAwareMultiValue
	groups           *MultiValue
	allOrdernumbers  *AllOrdernumbers

	attributes []*Attribute
	properties []*Property
}

func newItem(id string, format Type) *Item {
	return &Item{
		id:               id,
		format:           format,
		names:            NewUsergroupAwareMultiValue("name", listSeparator),
		summaries:        NewUsergroupAwareMultiValue("summary", listSeparator),
		descriptions:     NewUsergroupAwareMultiValue("description", listSeparator),
		prices:           NewUsergroupAwareMultiValue("price", listSeparator),
		urls:             NewUsergroupAwareMultiValue("url", listSeparator),
		images:           NewUsergroupAwareMultiValue("image", listSeparator),
		keywords:         NewUsergroupAwareMultiValue("keyword", listSeparator),
		bonuses:          NewUsergroupAwareMultiValue("bonus", listSeparator),
		salesFrequencies: NewUsergroupAwareMultiValue("salesFrequency", listSeparator),
		datesAdded:       NewUsergroupAwareMultiValue("dateAdded", listSeparator),
		sorts:            NewUsergroupAwareMultiValue("sort", listSeparator),
		ordernumbers:     NewUsergroupAwareMultiValue(ordernumbersName, ordernumbersSeparator),
		groups:           NewMultiValue("group", listSeparator),
		allOrdernumbers:  NewAllOrdernumbers(),
	}
}

func (i *Item) ID() string {
	return i.id
}

// Format is the exporter type the item was created for.
func (i *Item) Format() Type {
	return i.format
}

func (i *Item) AddName(raw, usergroup string)        { i.names.AddValue(raw, usergroup) }
func (i *Item) AddSummary(raw, usergroup string)     { i.summaries.AddValue(raw, usergroup) }
func (i *Item) AddDescription(raw, usergroup string) { i.descriptions.AddValue(raw, usergroup) }
func (i *Item) AddURL(raw, usergroup string)         { i.urls.AddValue(raw, usergroup) }
func (i *Item) AddImage(raw, usergroup string)       { i.images.AddValue(raw, usergroup) }
func (i *Item) AddKeyword(raw, usergroup string)     { i.keywords.AddValue(raw, usergroup) }

// AddPrice stores the price with two decimals.
func (i *Item) AddPrice(price float64, usergroup string) {
	i.prices.AddValue(strconv.FormatFloat(price, 'f', 2, 64), usergroup)
}

func (i *Item) AddBonus(bonus float64, usergroup string) {
	i.bonuses.AddValue(strconv.FormatFloat(bonus, 'f', -1, 64), usergroup)
}

func (i *Item) AddSalesFrequency(frequency int, usergroup string) {
	i.salesFrequencies.AddValue(strconv.Itoa(frequency), usergroup)
}

func (i *Item) AddDateAdded(t time.Time, usergroup string) {
	i.datesAdded.AddValue(t.UTC().Format(time.RFC3339), usergroup)
}

func (i *Item) AddSort(sort int, usergroup string) {
	i.sorts.AddValue(strconv.Itoa(sort), usergroup)
}

// AddGroup marks the item as visible to usergroup.
func (i *Item) AddGroup(usergroup string) {
	i.groups.AddValue(usergroup, NoUsergroup)
}

// AddOrdernumber records o both in its own usergroup bucket and in the
// combined view.
func (i *Item) AddOrdernumber(o Ordernumber) {
	i.ordernumbers.AddValue(o.Raw(), o.Usergroup())
	i.allOrdernumbers.AddOrdernumber(o)
}

// AddAttribute merges a into an existing attribute with the same key, or
// appends it.
func (i *Item) AddAttribute(a *Attribute) {
	if existing := i.Attribute(a.Key()); existing != nil {
		if existing == a {
			return
		}
		existing.merge(a)
		return
	}
	i.attributes = append(i.attributes, a)
}

func (i *Item) Attribute(key string) *Attribute {
	for _, a := range i.attributes {
		if a.Key() == key {
			return a
		}
	}
	return nil
}

func (i *Item) AddProperty(key, raw, usergroup string) {
	p := i.Property(key)
	if p == nil {
		p = NewProperty(key)
		i.properties = append(i.properties, p)
	}
	p.AddValue(raw, usergroup)
}

func (i *Item) Property(key string) *Property {
	for _, p := range i.properties {
		if p.Key() == key {
			return p
		}
	}
	return nil
}

func (i *Item) Names() *UsergroupAwareMultiValue            { return i.names }
func (i *Item) Summaries() *UsergroupAwareMultiValue        { return i.summaries }
func (i *Item) Descriptions() *UsergroupAwareMultiValue     { return i.descriptions }
func (i *Item) Prices() *UsergroupAwareMultiValue           { return i.prices }
func (i *Item) URLs() *UsergroupAwareMultiValue             { return i.urls }
func (i *Item) Images() *UsergroupAwareMultiValue           { return i.images }
func (i *Item) Keywords() *UsergroupAwareMultiValue         { return i.keywords }
func (i *Item) Bonuses() *UsergroupAwareMultiValue          { return i.bonuses }
func (i *Item) SalesFrequencies() *UsergroupAwareMultiValue { return i.salesFrequencies }
func (i *Item) DatesAdded() *UsergroupAwareMultiValue       { return i.datesAdded }
func (i *Item) Sorts() *UsergroupAwareMultiValue            { return i.sorts }
func (i *Item) Ordernumbers() *UsergroupAwareMultiValue     { return i.ordernumbers }
func (i *Item) Groups() *MultiValue                         { return i.groups }
func (i *Item) AllOrdernumbers() *AllOrdernumbers           { return i.allOrdernumbers }

func (i *Item) Attributes() []*Attribute {
	out := make([]*Attribute, len(i.attributes))
	copy(out, i.attributes)
	return out
}

func (i *Item) Properties() []*Property {
	out := make([]*Property, len(i.properties))
	copy(out, i.properties)
	return out
}

// Fragments lists every property in the order the XML exporter writes them.
func (i *Item) Fragments() []FragmentRenderable {
	fields := []FragmentRenderable{
		i.ordernumbers,
		i.names,
		i.summaries,
		i.descriptions,
		i.prices,
		i.urls,
		i.images,
		i.keywords,
		i.groups,
		i.bonuses,
		i.salesFrequencies,
		i.datesAdded,
		i.sorts,
	}
	for _, a := range i.attributes {
		fields = append(fields, a)
	}
	for _, p := range i.properties {
		fields = append(fields, p)
	}
	return fields
}
