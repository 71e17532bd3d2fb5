package export

import (
	"sort"
	"strings"
)

// MultiValue holds the values of one property grouped by usergroup.
// Insertion order is preserved within each bucket and nothing is deduplicated.
type MultiValue struct {
	name      string
	separator string

	defaults []Value
	scoped   map[string][]Value
}

// NewMultiValue creates an empty property exported under name.
func NewMultiValue(name, separator string) *MultiValue {
	return &MultiValue{
		name:      name,
		separator: separator,
		scoped:    make(map[string][]Value),
	}
}

// AddValue appends raw to the bucket of usergroup. NoUsergroup targets the
// default bucket.
func (m *MultiValue) AddValue(raw, usergroup string) {
	m.add(NewValue(raw, usergroup))
}

func (m *MultiValue) add(v Value) {
	if !v.HasUsergroup() {
		m.defaults = append(m.defaults, v)
		return
	}
	m.scoped[v.Usergroup()] = append(m.scoped[v.Usergroup()], v)
}

// Values returns the raw values stored for exactly this usergroup.
func (m *MultiValue) Values(usergroup string) ([]string, bool) {
	bucket, ok := m.bucket(usergroup)
	if !ok {
		return nil, false
	}
	return raws(bucket), true
}

func (m *MultiValue) bucket(usergroup string) ([]Value, bool) {
	if usergroup == NoUsergroup {
		return m.defaults, len(m.defaults) > 0
	}
	bucket, ok := m.scoped[usergroup]
	return bucket, ok && len(bucket) > 0
}

// Usergroups lists the scoped buckets in sorted order. The default bucket is
// not included.
func (m *MultiValue) Usergroups() []string {
	groups := make([]string, 0, len(m.scoped))
	for g := range m.scoped {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// Len returns the number of values across all buckets.
func (m *MultiValue) Len() int {
	n := len(m.defaults)
	for _, bucket := range m.scoped {
		n += len(bucket)
	}
	return n
}

func (m *MultiValue) IsEmpty() bool {
	return m.Len() == 0
}

func (m *MultiValue) Name() string {
	return m.name
}

func (m *MultiValue) Separator() string {
	return m.separator
}

func (m *MultiValue) ValueName() string {
	return m.name
}

// CSVFragment joins the bucket that matches usergroup exactly. There is no
// fallback at this level.
func (m *MultiValue) CSVFragment(usergroup string) string {
	bucket, ok := m.bucket(usergroup)
	if !ok {
		return ""
	}
	return m.join(bucket)
}

func (m *MultiValue) join(bucket []Value) string {
	return strings.Join(raws(bucket), m.separator)
}

// XMLFragments returns the default bucket first, then scoped buckets sorted
// by usergroup.
func (m *MultiValue) XMLFragments() []XMLFragment {
	return m.fragments("")
}

func (m *MultiValue) fragments(key string) []XMLFragment {
	fragments := make([]XMLFragment, 0, len(m.scoped)+1)
	if len(m.defaults) > 0 {
		fragments = append(fragments, XMLFragment{
			Name:   m.name,
			Key:    key,
			Values: raws(m.defaults),
		})
	}
	for _, g := range m.Usergroups() {
		fragments = append(fragments, XMLFragment{
			Name:      m.name,
			Key:       key,
			Usergroup: g,
			Values:    raws(m.scoped[g]),
		})
	}
	return fragments
}

func raws(values []Value) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.Raw()
	}
	return out
}
