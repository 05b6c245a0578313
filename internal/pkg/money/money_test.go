package money

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	out := FormatINR(1500.5)
	assert.True(t, strings.HasPrefix(out, "₹"))
	assert.True(t, strings.HasSuffix(out, ".50"))

	assert.True(t, strings.HasSuffix(FormatINR(0), "0.00"))
}
