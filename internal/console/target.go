package console

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyTarget picks the word of the day from candidates: a keyed hash of the
// date selects an index, so every caller with the same salt and list agrees.
func DailyTarget(date time.Time, salt string, candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	key := []byte(salt)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum256(key)
		key = sum[:]
	}
	h, err := blake2b.New256(key)
	if err != nil {
		return "", false
	}
	_, _ = h.Write([]byte(DateKey(date)))
	n := binary.BigEndian.Uint64(h.Sum(nil)[:8])
	return candidates[n%uint64(len(candidates))], true
}
