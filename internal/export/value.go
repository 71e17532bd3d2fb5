package export

// NoUsergroup addresses the default bucket of a multi-valued property.
// Values stored there apply to every usergroup without an explicit override.
const NoUsergroup = ""

// Value is a single scalar payload tagged with an optional usergroup.
type Value struct {
	raw       string
	usergroup string
}

// NewValue creates an immutable Value.
func NewValue(raw, usergroup string) Value {
	return Value{raw: raw, usergroup: usergroup}
}

func (v Value) Raw() string {
	return v.raw
}

func (v Value) Usergroup() string {
	return v.usergroup
}

// HasUsergroup reports whether the value is scoped to a specific usergroup.
func (v Value) HasUsergroup() bool {
	return v.usergroup != NoUsergroup
}

// XMLFragment is the per-usergroup view of a property handed to the XML
// renderer. Key is only set for keyed properties such as attributes.
type XMLFragment struct {
	Name      string
	Key       string
	Usergroup string
	Values    []string
}

// FragmentRenderable is implemented by every property an Item exports.
type FragmentRenderable interface {
	// CSVFragment flattens the property for the given usergroup context.
	CSVFragment(usergroup string) string
	// XMLFragments returns one fragment per usergroup bucket.
	XMLFragments() []XMLFragment
	// ValueName is the field name used in serialized output.
	ValueName() string
}
