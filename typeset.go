package instructor

import "reflect"

// ExtractCandidates recovers the ordered candidate set from a typehint of
// shape "slice (or array) of X". Any other shape fails with a
// *TypeShapeError naming the offending type.
//
// Go cannot enumerate the implementations of an interface, so a union of
// candidate types is declared as a sum-type struct, using either of two
// equivalent conventions:
//
//   - every exported field is a pointer to a named struct; the members are
//     the pointed-to types, or
//   - every field is an embedded named struct; the members are the embedded
//     types.
//
// Members are returned in field order. A single-member union (either
// convention) yields the same one-element result as a plain []T element.
// An element that follows neither convention is the non-union case: one
// candidate, the element type itself.
//
// ExtractCandidates is pure: deterministic, no side effects beyond schema
// generation for the returned candidates.
func ExtractCandidates(typehint reflect.Type) ([]Candidate, error) {
	if typehint == nil || (typehint.Kind() != reflect.Slice && typehint.Kind() != reflect.Array) {
		return nil, &TypeShapeError{Type: typehint}
	}
	elem := typehint.Elem()
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	members := unionMembers(elem)
	if members == nil {
		members = []reflect.Type{elem}
	}
	candidates := make([]Candidate, 0, len(members))
	for _, t := range members {
		m, err := newModelForType(t)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, m)
	}
	return candidates, nil
}

// CandidatesOf is ExtractCandidates for a compile-time typehint, e.g.
// CandidatesOf[[]WeatherOrSearch]().
func CandidatesOf[S any]() ([]Candidate, error) {
	return ExtractCandidates(reflect.TypeOf((*S)(nil)).Elem())
}

// unionMembers returns the member types of a sum-type struct, or nil when t
// follows neither union convention.
func unionMembers(t reflect.Type) []reflect.Type {
	if t.Kind() != reflect.Struct || t.NumField() == 0 {
		return nil
	}
	pointers := true
	embedded := true
	for i := range t.NumField() {
		f := t.Field(i)
		// An embedded field's name is its type name, so embedding an
		// unexported type yields an unexported field; only named variant
		// fields must be exported.
		if !f.IsExported() && !f.Anonymous {
			return nil
		}
		if !(f.Type.Kind() == reflect.Pointer && f.Type.Elem().Kind() == reflect.Struct && f.Type.Elem().Name() != "") {
			pointers = false
		}
		if !(f.Anonymous && f.Type.Kind() == reflect.Struct && f.Type.Name() != "") {
			embedded = false
		}
	}
	if !pointers && !embedded {
		return nil
	}
	members := make([]reflect.Type, t.NumField())
	for i := range members {
		ft := t.Field(i).Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		members[i] = ft
	}
	return members
}
