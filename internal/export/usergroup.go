package export

// UsergroupAwareMultiValue is a MultiValue whose CSV rendering falls back to
// the default bucket when the requested usergroup has no values of its own.
type UsergroupAwareMultiValue struct {
	*MultiValue
}

func NewUsergroupAwareMultiValue(name, separator string) *UsergroupAwareMultiValue {
	return &UsergroupAwareMultiValue{MultiValue: NewMultiValue(name, separator)}
}

// Resolve returns the bucket used for usergroup: its own values if any,
// otherwise the default bucket. Another scoped bucket is never consulted.
func (u *UsergroupAwareMultiValue) Resolve(usergroup string) ([]string, bool) {
	if values, ok := u.Values(usergroup); ok {
		return values, true
	}
	return u.Values(NoUsergroup)
}

func (u *UsergroupAwareMultiValue) CSVFragment(usergroup string) string {
	if bucket, ok := u.bucket(usergroup); ok {
		return u.join(bucket)
	}
	if bucket, ok := u.bucket(NoUsergroup); ok {
		return u.join(bucket)
	}
	return ""
}
