package domain

// CompletionMap records which workout ids are marked completed.
// Absent ids are not completed; entries may outlive their records.
type CompletionMap map[string]bool

// Toggle flips the entry for id. An absent entry becomes true.
func (c CompletionMap) Toggle(id string) bool {
	c[id] = !c[id]
	return c[id]
}

// Completed reports whether id is marked completed.
func (c CompletionMap) Completed(id string) bool {
	return c[id]
}

// CountCompleted returns the number of true entries, including entries
// whose record no longer exists.
func (c CompletionMap) CountCompleted() int {
	n := 0
	for _, done := range c {
		if done {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (c CompletionMap) Clone() CompletionMap {
	out := make(CompletionMap, len(c))
	for id, done := range c {
		out[id] = done
	}
	return out
}
