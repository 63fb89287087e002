package bookings

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	referencePrefix      = "NT"
	referenceSuffixLen   = 4
	referenceSuffixChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewReference builds a human-readable booking reference:
//
//	NT-<base36 millisecond timestamp>-<4 random base36 chars>
//
// The timestamp keeps references roughly sortable; the random suffix guards
// against two bookings landing in the same millisecond. Uniqueness is still
// enforced by the database index.
func NewReference(now time.Time) (string, error) {
	timestamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))

	suffix := make([]byte, referenceSuffixLen)
	max := big.NewInt(int64(len(referenceSuffixChars)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generating reference suffix: %w", err)
		}
		suffix[i] = referenceSuffixChars[n.Int64()]
	}

	return fmt.Sprintf("%s-%s-%s", referencePrefix, timestamp, string(suffix)), nil
}
