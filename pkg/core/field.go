package core

// Field is an optional value that reports changes. Setting a field to its
// current value does nothing; otherwise the change callback runs after the
// write. The zero Field is unset and has no callback.
type Field[T comparable] struct {
	value    T
	set      bool
	onChange func()
}

// NewField returns an unset field that calls onChange after each change.
func NewField[T comparable](onChange func()) Field[T] {
	return Field[T]{onChange: onChange}
}

// OnChange replaces the change callback.
func (f *Field[T]) OnChange(fn func()) { f.onChange = fn }

// Get returns the value and whether it is set.
func (f *Field[T]) Get() (T, bool) { return f.value, f.set }

// Value returns the value, or the zero value when unset.
func (f *Field[T]) Value() T { return f.value }

// IsSet reports whether the field holds a value.
func (f *Field[T]) IsSet() bool { return f.set }

// Set stores v and reports whether the field changed.
func (f *Field[T]) Set(v T) bool {
	if f.set && f.value == v {
		return false
	}
	f.value = v
	f.set = true
	f.changed()
	return true
}

// Clear unsets the field and reports whether it changed.
func (f *Field[T]) Clear() bool {
	if !f.set {
		return false
	}
	var zero T
	f.value = zero
	f.set = false
	f.changed()
	return true
}

func (f *Field[T]) changed() {
	if f.onChange != nil {
		f.onChange()
	}
}

// lazy is a single-value cache: computed on first access, reused until
// cleared.
type lazy[T any] struct {
	value T
	valid bool
}

func (c *lazy[T]) get(compute func() T) T {
	if !c.valid {
		c.value = compute()
		c.valid = true
	}
	return c.value
}

func (c *lazy[T]) clear() {
	var zero T
	c.value = zero
	c.valid = false
}
