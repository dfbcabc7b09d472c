package utils

import (
    "crypto/rand"
    "encoding/hex"
)

// NewID mints an entity identifier by appending nine characters of
// cryptographically random hex to the given prefix, e.g. "res" ->
// "res4f1c2a98b".  The ledger and user store use prefixes to keep IDs
// recognizable in logs ("res", "bill", "item", "u").
func NewID(prefix string) (string, error) {
    raw, err := randomHex(5) // 5 bytes -> 10 hex chars
    if err != nil {
        return "", err
    }
    return prefix + raw[:9], nil
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.  If the random number generator
// fails, an error is returned.
func randomHex(n int) (string, error) {
    buf := make([]byte, n)
    if _, err := rand.Read(buf); err != nil {
        return "", err
    }
    return hex.EncodeToString(buf), nil
}
