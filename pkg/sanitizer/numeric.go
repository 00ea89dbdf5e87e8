package sanitizer

// Numeric represents numeric types that support ordering.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Clamp constrains value to [min, max].
func Clamp[T Numeric](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampMin ensures value is not less than min.
func ClampMin[T Numeric](value, min T) T {
	if value < min {
		return min
	}
	return value
}
