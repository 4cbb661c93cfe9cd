package otp

import (
	"strings"

	"github.com/MKhiriev/accbox/models"
)

// CodeSeparator splits even-length codes at the midpoint.
const CodeSeparator = "·"

// FormatCode renders code for display. Even-length decimal codes are split
// at the midpoint ("123·456"), Steam codes are letter-spaced ("H 9 G V 7").
func FormatCode(code string, typ models.OTPType) string {
	if code == "" {
		return ""
	}

	if typ == models.OTPTypeSteam {
		return strings.Join(strings.Split(code, ""), " ")
	}

	if len(code)%2 != 0 {
		return code
	}

	mid := len(code) / 2
	return code[:mid] + CodeSeparator + code[mid:]
}
