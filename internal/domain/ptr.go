package domain

// IntFromPtrWithDefault returns the first non-nil value, or fallback.
func IntFromPtrWithDefault(fallback int, ptrs ...*int) int {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// Float64FromPtrWithDefault returns the first non-nil value, or fallback.
func Float64FromPtrWithDefault(fallback float64, ptrs ...*float64) float64 {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

func IntPtr(v int) *int { return &v }

func Float64Ptr(v float64) *float64 { return &v }
