package router

// StackEntry is a route left behind by forward navigation together with the
// resume state its screen returned (scroll position and the like).
type StackEntry struct {
	Route  Route
	Resume any
}

// Stack holds back entries. With two screens and no Detail to Detail edge it
// never grows past one entry, but transition functions should not rely on it.
type Stack struct {
	entries []StackEntry
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0, 1),
	}
}

// Push records the route being left and its resume state.
func (s *Stack) Push(route Route, resume any) {
	s.entries = append(s.entries, StackEntry{
		Route:  route,
		Resume: resume,
	})
}

// Pop removes and returns the top entry, or nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it, or nil if empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear drops every entry.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
