package export

const (
	propertyName      = "property"
	propertySeparator = ","
)

// Property is a free-form keyed value. The CSV exporter emits one column per
// property key configured at construction.
type Property struct {
	key    string
	values *UsergroupAwareMultiValue
}

func NewProperty(key string) *Property {
	return &Property{
		key:    key,
		values: NewUsergroupAwareMultiValue(propertyName, propertySeparator),
	}
}

func (p *Property) Key() string {
	return p.key
}

func (p *Property) AddValue(raw, usergroup string) {
	p.values.AddValue(raw, usergroup)
}

func (p *Property) Values(usergroup string) ([]string, bool) {
	return p.values.Resolve(usergroup)
}

func (p *Property) ValueName() string {
	return p.key
}

func (p *Property) CSVFragment(usergroup string) string {
	return p.values.CSVFragment(usergroup)
}

func (p *Property) XMLFragments() []XMLFragment {
	return p.values.fragments(p.key)
}
