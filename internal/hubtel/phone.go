package hubtel

import "strings"

// ghanaCountryCode is prepended to 9-digit local numbers starting with 0.
const ghanaCountryCode = "+233"

// FormatPhoneNumber normalizes a recipient number:
//
//   - every non-digit is removed, including a leading '+';
//   - 9 digits starting with '0' become "+233" followed by the last 8 digits;
//   - more than 9 digits get a '+' prefix;
//   - anything shorter is returned as bare digits.
func FormatPhoneNumber(number string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)

	if len(digits) == 9 && digits[0] == '0' {
		return ghanaCountryCode + digits[1:]
	}

	if len(digits) > 9 {
		return "+" + digits
	}

	return digits
}
