// internal/digest/digest.go
//
// Salted fingerprints of puzzle inputs, used as run cache keys.
// Inputs are normalized first, so CRLF and trailing blank lines do not
// produce a different key for the same puzzle.

package digest

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/robalobadob/aoc2021/internal/parse"
)

// Sum returns hex(HMAC-SHA256(salt, day || normalized text)).
func Sum(salt string, day int, text string) string {
	h := hmac.New(sha256.New, []byte(salt))
	var d [8]byte
	binary.BigEndian.PutUint64(d[:], uint64(day))
	h.Write(d[:])
	h.Write([]byte(parse.Normalize(text)))
	return hex.EncodeToString(h.Sum(nil))
}

// Short is the first 12 hex characters of a digest, for logs.
func Short(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}
