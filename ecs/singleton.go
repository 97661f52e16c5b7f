package ecs

// Singleton holds at most one value that is not stored in any table. Use this
// for entities that exist once per world (the player) or for global resources
// that may be absent (the cursor when it leaves the window).
type Singleton[T any] struct {
	value  T
	exists bool
}

// NewSingleton creates a Singleton. If initializer is provided the singleton
// starts out present with that value, otherwise it starts absent.
func NewSingleton[T any](initializer ...T) Singleton[T] {
	var s Singleton[T]
	if len(initializer) > 0 {
		s.Set(initializer[0])
	}
	return s
}

// Get returns a pointer to the value, or nil if the singleton is absent.
func (s *Singleton[T]) Get() *T {
	if !s.exists {
		return nil
	}
	return &s.value
}

// Set stores the value and marks the singleton present.
func (s *Singleton[T]) Set(value T) {
	s.value = value
	s.exists = true
}

// Clear removes the value.
func (s *Singleton[T]) Clear() {
	var zero T
	s.value = zero
	s.exists = false
}

// Exists returns true if a value is present
func (s *Singleton[T]) Exists() bool {
	return s.exists
}
