package wire

// Kind is the coercion hint for a declared field.
type Kind int

const (
	// KindScalar passes the wire value through unchanged, null included.
	KindScalar Kind = iota
	// KindModel promotes a JSON object to a nested model instance.
	KindModel
	// KindModelList promotes each element of a JSON array to a nested model.
	KindModelList
	// KindMap keeps a JSON object as a raw map[string]any.
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindModel:
		return "model"
	case KindModelList:
		return "model list"
	case KindMap:
		return "map"
	}
	return "unknown"
}

// Field declares how one field of a model is populated. The zero value is a
// scalar, so schemas list plain fields as just `"name": {}`. New must be set
// for KindModel and KindModelList and returns an empty instance of the
// nested model type.
type Field struct {
	Kind Kind
	New  func() Model
}

// Schema is a model's field table: canonical field name to declaration.
// The table doubles as the known-field filter, so every settable field must
// appear here, hinted or not. Schemas are defined once per model type and
// never mutated.
type Schema map[string]Field

// Model is implemented by every wire-mapped model: a Schema plus the
// embedded Fields store. The unexported backing method restricts
// implementations to types embedding Fields.
type Model interface {
	Schema() Schema
	backing() *Fields
}
