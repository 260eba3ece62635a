package geohash

import (
	"crypto/md5"
	"encoding/hex"

	"cloud.google.com/go/civil"
)

// Digest hashes a date and an index value into the 32-character lowercase
// hex string the decoder consumes. The input is the date in YYYY-MM-DD
// form, a single hyphen, and the index value verbatim; no validation is
// applied to the value text. Identical inputs always produce identical
// digests.
func Digest(date civil.Date, index string) string {
	sum := md5.Sum([]byte(date.String() + "-" + index))
	return hex.EncodeToString(sum[:])
}
