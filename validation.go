package instructor

// Validatable is implemented by candidate structs that need custom business
// validation. Called after schema validation and unmarshaling. Pointer
// receivers work: the freshly decoded instance is addressed when checked.
type Validatable interface {
	Validate() error
}

// ContextValidatable is implemented by candidate structs whose custom
// validation depends on a caller-supplied validation context (see
// WithValidationContext). When a context was supplied and the type
// implements it, it is called instead of Validatable.
type ContextValidatable interface {
	ValidateInContext(vctx any) error
}

// validateCustom runs the custom validation layer on a decoded instance.
// instance is a pointer to the freshly decoded struct.
func validateCustom(instance any, vctx any, hasCtx bool) error {
	if hasCtx {
		if cv, ok := instance.(ContextValidatable); ok {
			return cv.ValidateInContext(vctx)
		}
	}
	if v, ok := instance.(Validatable); ok {
		return v.Validate()
	}
	return nil
}
