package validate

// ValidateSerialNumber accepts the shop's human-facing order numbers:
// non-empty strings of digits.
func ValidateSerialNumber(number string) bool {
	if number == "" {
		return false
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidateSerialNumbers reports the first invalid entry, or "" when all
// entries are acceptable.
func ValidateSerialNumbers(numbers []string) (string, bool) {
	for _, n := range numbers {
		if !ValidateSerialNumber(n) {
			return n, false
		}
	}
	return "", true
}
