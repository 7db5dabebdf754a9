package domain

// Record is a raw storage record: a loosely-typed key/value bag as it travels
// over the wire. The state builder is responsible for turning records into
// typed Stops, POIs, and Days; everything below the builder treats a record
// as opaque JSON.
type Record map[string]any

// Key returns the record's "key" field, or "" when absent or not a string.
// A record without a usable key is dropped by the state builder.
func (r Record) Key() string {
	s, _ := r["key"].(string)
	return s
}

// Str returns the named field as a string, or "" when absent or mistyped.
func (r Record) Str(field string) string {
	s, _ := r[field].(string)
	return s
}

// Num returns the named field as a float64 and whether it was present as a
// JSON number. Numeric strings are not coerced.
func (r Record) Num(field string) (float64, bool) {
	f, ok := r[field].(float64)
	return f, ok
}
