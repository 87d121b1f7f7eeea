package service

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// randomToken returns n characters of base36 noise. Identifiers built from
// it are unique enough for correlation; collisions are accepted as
// negligible, not eliminated.
func randomToken(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return string(b)
}

// NewInquiryID generates an identifier like INQ-1700000000000-k3j9x2m1q.
func NewInquiryID() string {
	return fmt.Sprintf("INQ-%d-%s", time.Now().UnixMilli(), randomToken(9))
}

// NewOrderID generates an identifier like ORD-1700000000000-K3J9X2M1Q.
func NewOrderID() string {
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), strings.ToUpper(randomToken(9)))
}
