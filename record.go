package setops

// Record is a string-keyed record with heterogeneous values.
type Record map[string]interface{}

// Get returns the value stored under field. A missing field and an
// explicit nil value are both reported as absent; a present zero
// value (empty string, 0, false) is not.
func (r Record) Get(field string) (interface{}, bool) {
	v, found := r[field]
	if !found || v == nil {
		return nil, false
	}

	return v, true
}

// Set stores value under field.
func (r Record) Set(field string, value interface{}) {
	r[field] = value
}

// Has reports whether field holds a non-nil value.
func (r Record) Has(field string) bool {
	_, found := r.Get(field)
	return found
}
