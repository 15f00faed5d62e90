package wire

// Fields is the backing store every model embeds. It keeps values under
// canonical field names and remembers the order in which fields were first
// set, which becomes the emission order in Render. An unset field is absent
// from the store entirely, so "never set" and "explicitly set to null" stay
// distinct.
type Fields struct {
	order []string
	vals  map[string]any
}

// backing seals the Model interface: only types embedding Fields satisfy it.
func (f *Fields) backing() *Fields { return f }

// Set stores value under name, recording first-set order.
func (f *Fields) Set(name string, value any) {
	if f.vals == nil {
		f.vals = make(map[string]any)
	}
	if _, ok := f.vals[name]; !ok {
		f.order = append(f.order, name)
	}
	f.vals[name] = value
}

// Get returns the stored value and whether the field has been set.
func (f *Fields) Get(name string) (any, bool) {
	v, ok := f.vals[name]
	return v, ok
}

// IsSet reports whether the field has been set, including set to null.
func (f *Fields) IsSet(name string) bool {
	_, ok := f.vals[name]
	return ok
}

// Names returns the set field names in first-set order.
func (f *Fields) Names() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// GetString returns the field as a string, or "" when unset or not a string.
func (f *Fields) GetString(name string) string {
	s, _ := f.vals[name].(string)
	return s
}

// GetFloat returns the field as a float64, or 0 when unset. JSON numbers
// decoded into an any tree always arrive as float64.
func (f *Fields) GetFloat(name string) float64 {
	n, _ := f.vals[name].(float64)
	return n
}

// GetBool returns the field as a bool, or false when unset.
func (f *Fields) GetBool(name string) bool {
	b, _ := f.vals[name].(bool)
	return b
}

// GetMap returns the field as a raw JSON object, or nil when unset.
func (f *Fields) GetMap(name string) map[string]any {
	m, _ := f.vals[name].(map[string]any)
	return m
}

// GetStrings returns the field as a string slice. Wire arrays arrive as
// []any; outbound setters may store []string directly. Both are handled.
// Non-string elements of a []any are skipped, so a mixed-type array reads
// back shorter than stored.
func (f *Fields) GetStrings(name string) []string {
	switch v := f.vals[name].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, el := range v {
			if s, ok := el.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// GetModel returns the field as a nested model, or nil when unset.
func (f *Fields) GetModel(name string) Model {
	m, _ := f.vals[name].(Model)
	return m
}

// GetModels returns the field as a nested model list, or nil when unset.
func (f *Fields) GetModels(name string) []Model {
	l, _ := f.vals[name].([]Model)
	return l
}
