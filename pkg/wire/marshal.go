package wire

import "fmt"

// ShapeMismatchError reports a wire value whose JSON shape disagrees with the
// field's declared coercion hint, e.g. a scalar where a nested object was
// declared. Population stops at the first mismatch.
type ShapeMismatchError struct {
	Field string // canonical field name
	Want  Kind
	Value any
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("wire: field %q: declared %s, got %T", e.Field, e.Want, e.Value)
}

// Populate fills m from a decoded JSON object. Keys are converted to
// canonical names and filtered against the model's schema; unknown keys are
// skipped so newer API responses keep parsing. Declared nested fields
// recurse; a null value for a nested or map field leaves the field unset.
func Populate(m Model, doc map[string]any) error {
	schema := m.Schema()
	f := m.backing()
	for key, value := range doc {
		name := CamelToSnake(key)
		field, known := schema[name]
		if !known {
			continue
		}
		switch field.Kind {
		case KindScalar:
			f.Set(name, value)

		case KindMap:
			if value == nil {
				continue
			}
			obj, ok := value.(map[string]any)
			if !ok {
				return &ShapeMismatchError{Field: name, Want: KindMap, Value: value}
			}
			f.Set(name, obj)

		case KindModel:
			if value == nil {
				continue
			}
			obj, ok := value.(map[string]any)
			if !ok {
				return &ShapeMismatchError{Field: name, Want: KindModel, Value: value}
			}
			nested := field.New()
			if err := Populate(nested, obj); err != nil {
				return err
			}
			f.Set(name, nested)

		case KindModelList:
			if value == nil {
				continue
			}
			seq, ok := value.([]any)
			if !ok {
				return &ShapeMismatchError{Field: name, Want: KindModelList, Value: value}
			}
			list := make([]Model, 0, len(seq))
			for _, el := range seq {
				obj, ok := el.(map[string]any)
				if !ok {
					return &ShapeMismatchError{Field: name, Want: KindModelList, Value: el}
				}
				nested := field.New()
				if err := Populate(nested, obj); err != nil {
					return err
				}
				list = append(list, nested)
			}
			// An empty array is still a set field.
			f.Set(name, list)
		}
	}
	return nil
}

// Render emits m as a JSON-encodable object containing exactly the fields
// that were set, keyed by wire names, in first-set order map semantics
// (Go maps do not preserve order on encode; the order contract matters to
// callers that walk Names themselves). Nested models and model lists are
// rendered recursively; everything else is inserted as stored.
func Render(m Model) map[string]any {
	f := m.backing()
	out := make(map[string]any, len(f.order))
	for _, name := range f.order {
		key := SnakeToCamel(name)
		switch v := f.vals[name].(type) {
		case Model:
			out[key] = Render(v)
		case []Model:
			seq := make([]any, len(v))
			for i, el := range v {
				seq[i] = Render(el)
			}
			out[key] = seq
		default:
			out[key] = v
		}
	}
	return out
}
