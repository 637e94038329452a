package kqoauth

import (
	"crypto"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"hash"
)

// Signature method identifiers carried in oauth_signature_method
// (RFC 5849 3.4).
const (
	SignatureMethodHMACSHA1   = "HMAC-SHA1"
	SignatureMethodHMACSHA256 = "HMAC-SHA256"
	SignatureMethodRSASHA1    = "RSA-SHA1"
	SignatureMethodPlaintext  = "PLAINTEXT"
)

// A Signer signs base strings to create signed OAuth1 requests.
type Signer interface {
	// Name returns the method identifier carried in oauth_signature_method.
	Name() string
	// Sign signs the message using the given token secret. The token
	// secret is the empty string before a token has been issued.
	Sign(tokenSecret, message string) (string, error)
}

// signingKey builds the symmetric key shared by the HMAC and PLAINTEXT
// methods: the percent encoded consumer secret and token secret joined
// with "&" (RFC 5849 3.4.2).
func signingKey(consumerSecret, tokenSecret string) string {
	return PercentEncode(consumerSecret) + "&" + PercentEncode(tokenSecret)
}

func hmacSign(consumerSecret, tokenSecret, message string, algo func() hash.Hash) (string, error) {
	mac := hmac.New(algo, []byte(signingKey(consumerSecret, tokenSecret)))
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// HMACSigner signs messages with an HMAC SHA1 digest keyed by the
// concatenated consumer secret and token secret. This is the default
// signing method.
type HMACSigner struct {
	ConsumerSecret string
}

// Name returns the HMAC-SHA1 method.
func (s *HMACSigner) Name() string {
	return SignatureMethodHMACSHA1
}

// Sign calculates the HMAC digest of the message and returns the base64
// encoded digest bytes.
func (s *HMACSigner) Sign(tokenSecret, message string) (string, error) {
	return hmacSign(s.ConsumerSecret, tokenSecret, message, sha1.New)
}

// HMAC256Signer signs messages with an HMAC SHA256 digest keyed by the
// concatenated consumer secret and token secret. Some providers, NetSuite
// among them, require it in place of HMAC-SHA1.
type HMAC256Signer struct {
	ConsumerSecret string
}

// Name returns the HMAC-SHA256 method.
func (s *HMAC256Signer) Name() string {
	return SignatureMethodHMACSHA256
}

// Sign calculates the HMAC digest of the message and returns the base64
// encoded digest bytes.
func (s *HMAC256Signer) Sign(tokenSecret, message string) (string, error) {
	return hmacSign(s.ConsumerSecret, tokenSecret, message, sha256.New)
}

// PlaintextSigner implements the PLAINTEXT method: the signature is the
// signing key itself, transmitted without any digest (RFC 5849 3.4.4).
type PlaintextSigner struct {
	ConsumerSecret string
}

// Name returns the PLAINTEXT method.
func (s *PlaintextSigner) Name() string {
	return SignatureMethodPlaintext
}

// Sign returns the concatenated encoded secrets; the message is unused.
func (s *PlaintextSigner) Sign(tokenSecret, message string) (string, error) {
	return signingKey(s.ConsumerSecret, tokenSecret), nil
}

// RSASigner signs SHA1 digests of messages with RSA PKCS1-v1_5 using the
// given private key.
type RSASigner struct {
	PrivateKey *rsa.PrivateKey
}

// Name returns the RSA-SHA1 method.
func (s *RSASigner) Name() string {
	return SignatureMethodRSASHA1
}

// Sign uses RSA PKCS1-v1_5 to sign a SHA1 digest of the given message.
// The token secret is not used with this signing scheme.
func (s *RSASigner) Sign(tokenSecret, message string) (string, error) {
	digest := sha1.Sum([]byte(message))
	signature, err := rsa.SignPKCS1v15(rand.Reader, s.PrivateKey, crypto.SHA1, digest[:])
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(signature), nil
}
