package helper

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInvoiceCode(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	code := GenerateInvoiceCode("ROOM", now)
	parts := strings.Split(code, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "ROOM", parts[0])
	assert.Equal(t, "260830", parts[1])
	assert.Len(t, parts[2], 6)

	for _, ch := range parts[2] {
		assert.Contains(t, codeAlphabet, string(ch), "code %q uses char outside alphabet", code)
	}
}

func TestGenerateInvoiceCodeUniqueEnough(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code := GenerateInvoiceCode("UTIL", now)
		assert.False(t, seen[code], "duplicate code %q after %d draws", code, i)
		seen[code] = true
	}
}
