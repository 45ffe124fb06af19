package validate

import (
	"testing"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/stretchr/testify/assert"
)

func TestIsLuhn(t *testing.T) {
	assert.True(t, IsLuhn("79927398713"))
	assert.False(t, IsLuhn("79927398710"))
	assert.False(t, IsLuhn("abc"))
}

func TestCouponCode(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		want  string
		valid bool
	}{
		{name: "Trimmed and upper-cased", code: "  save30-abc ", want: "SAVE30-ABC", valid: true},
		{name: "Too short", code: "AB"},
		{name: "Illegal characters", code: "SAVE 30"},
		{name: "Empty", code: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CouponCode(tt.code)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGeneratedCoupon(t *testing.T) {
	body := goluhn.Generate(12)
	assert.True(t, GeneratedCoupon("D30-", "D30-"+body))
	assert.False(t, GeneratedCoupon("D50-", "D30-"+body))
	assert.False(t, GeneratedCoupon("D30-", "D30-123"))
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("ada@example.com"))
	assert.False(t, Email("Ada <ada@example.com>"))
	assert.False(t, Email("not-an-email"))
}
