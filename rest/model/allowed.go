package model

import "github.com/evergreen-ci/smartsheet/rest/binding"

func copyAllowed(table map[string][]string) map[string][]string {
	out := make(map[string][]string, len(table))
	for name, values := range table {
		out[name] = append([]string{}, values...)
	}
	return out
}

// setScalar stores value through the field table of m, so typed setters apply
// the same coercion as deserialization. Scalar fields never fail to bind, so
// an error here means name is missing from the table.
func setScalar(m binding.Model, name string, value interface{}) {
	if err := binding.Set(m, name, value); err != nil {
		panic(err)
	}
}
