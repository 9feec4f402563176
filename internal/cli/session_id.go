package cli

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"time"
)

const sessionIDSuffixBytes = 6

// newSessionID returns a fresh identifier for one wizard session. It only
// appears in verbose logs, never in the written profile.
func newSessionID() (string, error) {
	return newSessionIDWithRand(time.Now().UTC(), rand.Reader)
}

func newSessionIDWithRand(now time.Time, r io.Reader) (string, error) {
	if r == nil {
		return "", fmt.Errorf("random reader is nil")
	}
	buf := make([]byte, sessionIDSuffixBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	suffix := hex.EncodeToString(buf)
	return formatSessionID(now, suffix), nil
}

func formatSessionID(now time.Time, suffix string) string {
	return now.UTC().Format("20060102T150405Z") + "-" + suffix
}
