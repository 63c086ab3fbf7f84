// file: internals/helpers/invoice_code.go
package helper

import (
	"crypto/rand"
	"fmt"
	"time"
)

// Crockford-ish alphabet: no 0/O, 1/I lookalikes, codes get read over the phone.
const codeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

// GenerateInvoiceCode builds a display code like "ROOM-250830-7KQ2MX".
// Low collision probability only; the DB unique index on invoice_code is
// what actually guarantees uniqueness.
func GenerateInvoiceCode(prefix string, now time.Time) string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the host is broken; fall back to a
		// timestamp-only suffix rather than panicking mid-request.
		return fmt.Sprintf("%s-%s-%06d", prefix, now.Format("060102"), now.UnixNano()%1000000)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("060102"), string(buf))
}
