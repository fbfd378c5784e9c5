package instructor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"

	jsv "github.com/santhosh-tekuri/jsonschema/v6"
)

// Candidate is one variant of a parallel tool-call set: it advertises a JSON
// Schema under a stable name and validates raw call payloads into instances
// of itself. Candidates are immutable after construction and safe to share
// across concurrent decodes.
type Candidate interface {
	// Name identifies the candidate within a registry. Names must be unique
	// within one Parallel; NewParallel rejects collisions.
	Name() string
	// Description is advertised alongside the schema; may be empty.
	Description() string
	// Schema returns a shallow copy of the candidate's JSON Schema (top-level
	// keys only). Nested maps are shared; callers must not mutate them.
	Schema() map[string]any
	// Decode validates a raw argument payload into an instance of the
	// candidate's type. Failures are reported as *ValidationError.
	Decode(arguments []byte, opts ...DecodeOption) (any, error)
}

// model is the reflection-backed Candidate built by NewModel and
// ExtractCandidates.
type model struct {
	name        string
	description string
	typ         reflect.Type
	schema      map[string]any
	compiled    *jsv.Schema
}

// newModelForType builds a model for a named struct type. The schema is
// generated and compiled eagerly so construction surfaces schema problems
// instead of the first decode.
func newModelForType(typ reflect.Type, opts ...ModelOption) (*model, error) {
	var o modelOptions
	for _, opt := range opts {
		opt(&o)
	}
	if typ == nil {
		return nil, fmt.Errorf("candidate type must not be nil")
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("candidate type %v is not a struct", typ)
	}
	// Schema reflection cannot handle anonymous struct types, so a name
	// override does not make them usable either.
	if typ.Name() == "" {
		return nil, fmt.Errorf("candidate type %v is anonymous; declare a named struct type", typ)
	}
	name := o.name
	if name == "" {
		name = typ.Name()
	}
	schemaMap, compiled, err := generateSchema(typ, o.strictSchema)
	if err != nil {
		return nil, fmt.Errorf("model %q: %w", name, err)
	}
	return &model{
		name:        name,
		description: o.description,
		typ:         typ,
		schema:      schemaMap,
		compiled:    compiled,
	}, nil
}

func (m *model) Name() string        { return m.name }
func (m *model) Description() string { return m.description }

// Schema returns a shallow copy of the JSON Schema (top-level keys only).
// Nested maps are shared; callers must not mutate them.
func (m *model) Schema() map[string]any { return maps.Clone(m.schema) }

// Decode runs the candidate decode protocol: parse the payload, validate it
// against the compiled schema, unmarshal into a fresh instance (rejecting
// unknown fields under WithStrict), then run the custom validation layer.
// The returned instance is the struct value, not a pointer.
func (m *model) Decode(arguments []byte, opts ...DecodeOption) (any, error) {
	o := resolveDecodeOptions(opts)
	var v any
	if err := json.Unmarshal(arguments, &v); err != nil {
		return nil, &ValidationError{Model: m.name, Err: fmt.Errorf("json parse error: %w", err)}
	}
	if err := m.compiled.Validate(v); err != nil {
		return nil, &ValidationError{Model: m.name, Err: err}
	}
	ptr := reflect.New(m.typ)
	dec := json.NewDecoder(bytes.NewReader(arguments))
	if o.strict != nil && *o.strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(ptr.Interface()); err != nil {
		return nil, &ValidationError{Model: m.name, Err: err}
	}
	if err := validateCustom(ptr.Interface(), o.validationContext, o.hasValidationContext); err != nil {
		return nil, &ValidationError{Model: m.name, Err: err}
	}
	return ptr.Elem().Interface(), nil
}

var _ Candidate = (*model)(nil)

// Model is the typed Candidate built by NewModel. It behaves exactly like
// the Candidate returned by ExtractCandidates for the same type, plus a
// typed decode.
type Model[T any] struct {
	*model
}

// NewModel builds a Candidate for a named struct type T. The name defaults
// to T's type name; see ModelOption for overrides. Construction fails for
// non-struct or anonymous struct types and when the generated schema does
// not compile.
func NewModel[T any](opts ...ModelOption) (*Model[T], error) {
	m, err := newModelForType(reflect.TypeOf((*T)(nil)).Elem(), opts...)
	if err != nil {
		return nil, err
	}
	return &Model[T]{model: m}, nil
}

// MustModel is like NewModel but panics on error. Use for models defined at
// package init.
func MustModel[T any](opts ...ModelOption) *Model[T] {
	m, err := NewModel[T](opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// DecodeTyped is Decode with the result already asserted to T.
func (m *Model[T]) DecodeTyped(arguments []byte, opts ...DecodeOption) (T, error) {
	instance, err := m.model.Decode(arguments, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return instance.(T), nil
}
