package internal

// ============================================================================
// STRING/BYTE CONVERSIONS
// ============================================================================

// StringToBytes converts string to []byte.
// Using standard conversion for safety and compatibility.
func StringToBytes(s string) []byte {
	return []byte(s)
}

// BytesToString converts a byte slice to a string.
// Uses standard library conversion for safety.
// Note: For performance-critical code where the caller guarantees the slice
// won't be modified, consider using a separate unsafe version with clear documentation.
func BytesToString(b []byte) string {
	return string(b)
}
