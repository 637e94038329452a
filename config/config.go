// Package config loads OAuth consumer credentials from the environment
// and turns them into a ready to use kqoauth.Config.
package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	kqoauth "github.com/mikelcal/kQOAuth"
)

// Credentials are the consumer and token credentials read from the
// environment.
type Credentials struct {
	// A value used by the Consumer to identify itself to the Service
	// Provider.
	ConsumerKey string `envconfig:"CONSUMER_KEY" required:"true"`
	// A secret used by the Consumer to establish ownership of the
	// Consumer Key.
	ConsumerSecret string `envconfig:"CONSUMER_SECRET" required:"true"`
	// A value used by the Consumer to access Protected Resources on
	// behalf of the User. Empty until a token has been issued.
	AccessToken string `envconfig:"ACCESS_TOKEN"`
	// A secret used by the Consumer to establish ownership of a given
	// Token.
	AccessSecret string `envconfig:"ACCESS_SECRET"`
	// Callback URL for temporary credential requests.
	CallbackURL string `envconfig:"CALLBACK_URL"`
	// Realm of authorization.
	Realm string `envconfig:"REALM"`
}

// Load reads credentials from prefixed environment variables, e.g.
// NETSUITE_CONSUMER_KEY for prefix "netsuite", falling back to the bare
// names. The consumer key and secret are required.
func Load(prefix string) (*Credentials, error) {
	var c Credentials
	if err := envconfig.Process(prefix, &c); err != nil {
		return nil, errors.Wrap(err, "loading oauth credentials")
	}
	return &c, nil
}

// Config returns a kqoauth.Config carrying the consumer credentials,
// callback URL and realm. The access token and secret stay on the
// Credentials; pass them to the individual request when signing
// authorized calls.
func (c *Credentials) Config() *kqoauth.Config {
	cfg := kqoauth.NewConfig(c.ConsumerKey, c.ConsumerSecret)
	cfg.CallbackURL = c.CallbackURL
	cfg.Realm = c.Realm
	return cfg
}
