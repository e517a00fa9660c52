// internal/utils/random.go
package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomString returns a hex string of the requested length, suitable for
// opaque credentials such as tenant passkeys.
func RandomString(length int) string {
	bytes := make([]byte, length)
	_, err := rand.Read(bytes)
	if err != nil {
		panic(err)
	}
	return hex.EncodeToString(bytes)[:length]
}
