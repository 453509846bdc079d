package setops

import (
	"github.com/denismitr/setops/set"
)

// Pluck collects the value of field from every record in s, in the
// iteration order of s. Records missing the field, or holding nil
// there, are skipped rather than treated as errors.
func Pluck(s set.Set[*Record], field string) []interface{} {
	values := make([]interface{}, 0, s.Len())

	for _, r := range s.Items() {
		if v, found := r.Get(field); found {
			values = append(values, v)
		}
	}

	return values
}
