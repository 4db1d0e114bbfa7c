package kit

// Option holds either a value or nothing.
// The zero Option is empty.
//
// Absence carries no reason: callers can only tell that a value is
// missing, not why.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool { return !o.ok }

// OrElse returns the value if present and def otherwise.
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// MustGet returns the value and panics if the Option is empty.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic("kit: MustGet called on empty Option")
	}
	return o.value
}
