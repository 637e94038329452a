package kqoauth

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Noncer provides random nonce strings.
type Noncer interface {
	Nonce() string
}

// Base64Noncer reads 32 bytes from crypto/rand and
// returns those bytes as a base64 encoded string.
type Base64Noncer struct{}

// Nonce provides a random nonce string.
func (n Base64Noncer) Nonce() string {
	b := make([]byte, 32)
	rand.Read(b)
	return base64.StdEncoding.EncodeToString(b)
}

// HexNoncer reads 32 bytes from crypto/rand and
// returns those bytes as a hex encoded string.
type HexNoncer struct{}

// Nonce provides a random nonce string.
func (n HexNoncer) Nonce() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// UUIDNoncer returns random version 4 UUID strings.
type UUIDNoncer struct{}

// Nonce provides a random nonce string.
func (n UUIDNoncer) Nonce() string {
	return uuid.NewString()
}

// epoch formats t as decimal Unix epoch seconds, the oauth_timestamp
// wire form.
func epoch(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

// derivedNonce hashes the request timestamp with MD5 and returns the hex
// digest. Requests created within the same second therefore share a
// nonce; install a Noncer on the Config when the provider enforces
// nonce uniqueness.
func derivedNonce(timestamp string) string {
	digest := md5.Sum([]byte(timestamp))
	return hex.EncodeToString(digest[:])
}
