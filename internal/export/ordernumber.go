package export

import "strings"

const (
	// AllOrdernumbersValueName is the field name of the combined ordernumber
	// view. It differs from the per-usergroup element name on purpose.
	AllOrdernumbersValueName = "allOrdernumbers"

	ordernumbersName      = "ordernumbers"
	ordernumbersSeparator = "|"
)

// Ordernumber is a single product identifier (SKU, EAN, article number).
type Ordernumber struct {
	value Value
}

func NewOrdernumber(raw, usergroup string) Ordernumber {
	return Ordernumber{value: NewValue(raw, usergroup)}
}

func (o Ordernumber) Raw() string {
	return o.value.Raw()
}

func (o Ordernumber) Usergroup() string {
	return o.value.Usergroup()
}

// CSVFragment returns the identifier untouched. Document-level escaping is
// left to the CSV exporter.
func (o Ordernumber) CSVFragment() string {
	return o.value.Raw()
}

// AllOrdernumbers collects every ordernumber of an item into the default
// bucket, dropping their usergroup tags.
type AllOrdernumbers struct {
	name      string
	separator string
	entries   []Ordernumber
}

func NewAllOrdernumbers() *AllOrdernumbers {
	return &AllOrdernumbers{
		name:      ordernumbersName,
		separator: ordernumbersSeparator,
	}
}

// AddOrdernumber appends o regardless of the usergroup it carries.
func (a *AllOrdernumbers) AddOrdernumber(o Ordernumber) {
	a.entries = append(a.entries, o)
}

func (a *AllOrdernumbers) Ordernumbers() []Ordernumber {
	out := make([]Ordernumber, len(a.entries))
	copy(out, a.entries)
	return out
}

func (a *AllOrdernumbers) Len() int {
	return len(a.entries)
}

func (a *AllOrdernumbers) Name() string {
	return a.name
}

func (a *AllOrdernumbers) ValueName() string {
	return AllOrdernumbersValueName
}

// CSVFragment pipe-joins the fragment of each ordernumber in insertion
// order. The usergroup context is ignored.
func (a *AllOrdernumbers) CSVFragment(string) string {
	if len(a.entries) == 0 {
		return ""
	}
	parts := make([]string, len(a.entries))
	for i, o := range a.entries {
		parts[i] = o.CSVFragment()
	}
	return strings.Join(parts, a.separator)
}

func (a *AllOrdernumbers) XMLFragments() []XMLFragment {
	if len(a.entries) == 0 {
		return nil
	}
	values := make([]string, len(a.entries))
	for i, o := range a.entries {
		values[i] = o.Raw()
	}
	return []XMLFragment{{Name: a.name, Values: values}}
}
