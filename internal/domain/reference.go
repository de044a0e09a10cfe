package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// NewReference builds a cosmetic booking reference of the form
// QR-YYYYMMDD-XXXX where XXXX is 4 random uppercase hex characters.
// References are shown to customers and the owner; lookups always go
// through ids or tokens.
func NewReference(eventDate time.Time) string {
	buf := make([]byte, 2)
	_, _ = rand.Read(buf)
	suffix := strings.ToUpper(hex.EncodeToString(buf))
	return fmt.Sprintf("QR-%s-%s", eventDate.Format("20060102"), suffix)
}
