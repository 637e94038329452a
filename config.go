package kqoauth

import (
	"github.com/sirupsen/logrus"
)

// OAuth protocol parameter names (RFC 5849 3.1).
const (
	oauthCallbackParam        = "oauth_callback"
	oauthConsumerKeyParam     = "oauth_consumer_key"
	oauthNonceParam           = "oauth_nonce"
	oauthSignatureParam       = "oauth_signature"
	oauthSignatureMethodParam = "oauth_signature_method"
	oauthTimestampParam       = "oauth_timestamp"
	oauthTokenParam           = "oauth_token"
	oauthVerifierParam        = "oauth_verifier"
	oauthVersionParam         = "oauth_version"
	defaultOauthVersion       = "1.0"
)

// Config represents an OAuth1 consumer's (client's) key and secret, the
// callback URL, and signing collaborators. A Config is constructed once
// per consumer and is never mutated by request building; share one Config
// across requests and goroutines freely.
type Config struct {
	// Consumer Key (Client Identifier)
	ConsumerKey string
	// Consumer Secret (Client Shared-Secret)
	ConsumerSecret string
	// Callback URL, carried in oauth_callback for temporary
	// credential requests
	CallbackURL string
	// Realm of authorization, emitted in the Authorization header
	// only; never part of the signature base string
	Realm string
	// OAuth1 Signer (defaults to HMAC-SHA1)
	Signer Signer
	// Noncer creates request nonces (defaults to an MD5 digest of the
	// request timestamp)
	Noncer Noncer
	// Logger receives configuration and validation warnings
	// (defaults to the package logger)
	Logger logrus.FieldLogger
	// Strict turns configuration errors and validation failures into
	// errors returned from Request.Parameters. The default is the
	// permissive mode: warn and sign anyway, leaving rejection to the
	// server.
	Strict bool
}

// NewConfig returns a new Config with the given consumer key and secret.
func NewConfig(consumerKey, consumerSecret string) *Config {
	return &Config{
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
	}
}

// Returns the Config's Signer or the default Signer.
func (c *Config) signer() Signer {
	if c.Signer != nil {
		return c.Signer
	}
	return &HMACSigner{ConsumerSecret: c.ConsumerSecret}
}

// Returns the Config's logger or the package logger.
func (c *Config) logger() logrus.FieldLogger {
	if c.Logger != nil {
		return c.Logger
	}
	return std
}
