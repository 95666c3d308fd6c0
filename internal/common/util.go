package common

import "encoding/hex"

// WipeByteArray overwrites b with zeros. It is used to drop passwords and
// derived keys from memory once they are no longer needed. A nil slice is a
// no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// HexPreview returns the hex encoding of at most n leading bytes of b,
// followed by "..." when b was truncated.
func HexPreview(b []byte, n int) string {
	if n < 0 {
		n = 0
	}
	if len(b) <= n {
		return hex.EncodeToString(b)
	}
	return hex.EncodeToString(b[:n]) + "..."
}
