package utils

// IsDigits reports whether s is non-empty and contains only ASCII decimal
// digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsValidTag reports whether tag is exactly two ASCII decimal digits, the
// only tag shape the EMV payload schema uses.
func IsValidTag(tag string) bool {
	return len(tag) == 2 && IsDigits(tag)
}
