package export

import (
	"net/url"
	"strings"
)

const (
	attributeName      = "attribute"
	attributeSeparator = ","
)

// Attribute is a keyed, usergroup-aware facet such as color or size.
type Attribute struct {
	key    string
	values *UsergroupAwareMultiValue
}

func NewAttribute(key string, values ...string) *Attribute {
	a := &Attribute{
		key:    key,
		values: NewUsergroupAwareMultiValue(attributeName, attributeSeparator),
	}
	for _, v := range values {
		a.AddValue(v, NoUsergroup)
	}
	return a
}

func (a *Attribute) Key() string {
	return a.key
}

func (a *Attribute) AddValue(raw, usergroup string) {
	a.values.AddValue(raw, usergroup)
}

func (a *Attribute) Values(usergroup string) ([]string, bool) {
	return a.values.Resolve(usergroup)
}

func (a *Attribute) ValueName() string {
	return attributeName
}

// CSVFragment renders key=value pairs, URL-encoded and joined with "&", for
// the resolved usergroup bucket.
func (a *Attribute) CSVFragment(usergroup string) string {
	values, ok := a.values.Resolve(usergroup)
	if !ok {
		return ""
	}
	key := url.QueryEscape(a.key)
	pairs := make([]string, len(values))
	for i, v := range values {
		pairs[i] = key + "=" + url.QueryEscape(v)
	}
	return strings.Join(pairs, "&")
}

func (a *Attribute) XMLFragments() []XMLFragment {
	return a.values.fragments(a.key)
}

func (a *Attribute) merge(other *Attribute) {
	for _, v := range other.values.defaults {
		a.values.add(v)
	}
	for _, g := range other.values.Usergroups() {
		for _, v := range other.values.scoped[g] {
			a.values.add(v)
		}
	}
}
