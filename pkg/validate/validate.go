package validate

import (
	"net/mail"
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

const (
	minCouponLength = 4
	maxCouponLength = 64
)

func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// CouponCode normalizes an imported code to upper case and reports whether
// it is made of letters, digits and dashes only.
func CouponCode(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) < minCouponLength || len(code) > maxCouponLength {
		return "", false
	}
	for _, r := range code {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		default:
			return "", false
		}
	}
	return code, true
}

// GeneratedCoupon reports whether code has the prefix and a Luhn-valid body.
func GeneratedCoupon(prefix, code string) bool {
	body, ok := strings.CutPrefix(code, prefix)
	return ok && IsLuhn(body)
}

func Email(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
