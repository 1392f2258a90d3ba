package protocol

// ClampU8 bounds a user-supplied parameter to a hardware-accepted range.
func ClampU8(value, min, max uint8) uint8 {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}

// ClampU16 is ClampU8 for 16-bit parameters.
func ClampU16(value, min, max uint16) uint16 {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}
