package domain

// Optional is a tri-state field for partial updates:
//   - Set=false: the field was absent and must be left untouched.
//   - Set=true, Value=nil: the field was explicitly null.
//   - Set=true, Value!=nil: the field carries a new value.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns an Optional that explicitly clears the field.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// IsNull reports whether the field was present and explicitly null.
func (o Optional[T]) IsNull() bool {
	return o.Set && o.Value == nil
}
