package packages

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	trackingPrefix      = "COL"
	trackingSuffixLen   = 6
	trackingSuffixChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewTrackingCode builds an opaque tracking code: a fixed prefix, the creation
// instant in base36, and a random alphanumeric suffix. The time component
// orders codes roughly by creation; the suffix keeps concurrent creations
// from colliding. No uniqueness check is made against the store.
func NewTrackingCode() (string, error) {
	suffix, err := randomSuffix(trackingSuffixLen)
	if err != nil {
		return "", fmt.Errorf("generating tracking suffix: %w", err)
	}
	stamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixNano(), 36))
	return trackingPrefix + "-" + stamp + "-" + suffix, nil
}

func randomSuffix(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = trackingSuffixChars[int(buf[i])%len(trackingSuffixChars)]
	}
	return string(buf), nil
}
