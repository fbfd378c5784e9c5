package instructor

// modelOptions hold optional model settings (name, description, strict schema).
type modelOptions struct {
	name         string
	description  string
	strictSchema bool
}

// ModelOption configures a candidate model at construction
// (e.g. WithModelName, WithStrictSchema).
type ModelOption func(*modelOptions)

// WithModelName overrides the model's declared name. The default is the Go
// type name; override it when the name the LLM calls the model by must
// differ from the Go spelling.
func WithModelName(name string) ModelOption {
	return func(o *modelOptions) {
		o.name = name
	}
}

// WithModelDescription sets the description advertised alongside the model's
// schema in tool definitions.
func WithModelDescription(description string) ModelOption {
	return func(o *modelOptions) {
		o.description = description
	}
}

// WithStrictSchema sets additionalProperties: false for all objects in the
// generated schema and makes all properties required. Use for OpenAI
// Structured Outputs compatibility.
func WithStrictSchema() ModelOption {
	return func(o *modelOptions) {
		o.strictSchema = true
	}
}

// decodeOptions hold per-decode settings, passed through unchanged to each
// matched candidate. strict is tri-state: nil means unset (non-strict).
type decodeOptions struct {
	strict               *bool
	validationContext    any
	hasValidationContext bool
}

// DecodeOption configures one decode invocation
// (e.g. WithStrict, WithValidationContext).
type DecodeOption func(*decodeOptions)

// WithStrict toggles strict payload decoding: when true, fields not declared
// on the matched candidate are rejected instead of ignored. The default
// (unset) is non-strict.
func WithStrict(strict bool) DecodeOption {
	return func(o *decodeOptions) {
		o.strict = &strict
	}
}

// WithValidationContext supplies an opaque value handed to
// ContextValidatable.ValidateInContext on every decoded instance whose type
// implements it. The value is never inspected by this package.
func WithValidationContext(vctx any) DecodeOption {
	return func(o *decodeOptions) {
		o.validationContext = vctx
		o.hasValidationContext = true
	}
}

func resolveDecodeOptions(opts []DecodeOption) decodeOptions {
	var o decodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
