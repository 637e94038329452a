package kqoauth

import (
	"fmt"
	"strings"
)

// ConfigurationError reports an input the request builder could not act
// on, such as an invalid endpoint URL or an unknown request type. In the
// default permissive mode it is logged as a warning and building
// continues with whatever state is usable; Config.Strict turns it into an
// error returned from Parameters.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "kqoauth: " + e.Reason
}

// ValidationError reports inputs that are mandatory for the request type
// but empty. In the default permissive mode it is logged as a warning and
// signing proceeds anyway; Config.Strict turns it into an error returned
// from Parameters.
type ValidationError struct {
	Type    RequestType
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("kqoauth: %s request missing %s", e.Type, strings.Join(e.Missing, ", "))
}

// paramRule emits one protocol parameter for a request type.
type paramRule struct {
	key   string
	value func(r *Request) string
}

// fieldRule names one input a request type cannot be signed without.
type fieldRule struct {
	name  string
	value func(r *Request) string
}

// flavor pairs a request type's protocol parameters with the inputs it
// requires. Population and validation dispatch through this table, so a
// new request type is a table entry rather than new control flow.
type flavor struct {
	params   []paramRule
	required []fieldRule
}

var flavors = map[RequestType]flavor{
	TemporaryCredentials: {
		params: []paramRule{
			// The callback value is stored percent encoded; the base
			// string encodes it a second time and the header emits it
			// as stored.
			{oauthCallbackParam, func(r *Request) string { return PercentEncode(r.config.CallbackURL) }},
			{oauthSignatureMethodParam, func(r *Request) string { return r.config.signer().Name() }},
			{oauthConsumerKeyParam, func(r *Request) string { return r.config.ConsumerKey }},
			{oauthVersionParam, func(r *Request) string { return defaultOauthVersion }},
			{oauthTimestampParam, func(r *Request) string { return r.Timestamp() }},
			{oauthNonceParam, func(r *Request) string { return r.Nonce() }},
		},
		required: []fieldRule{
			{"endpoint", func(r *Request) string { return r.endpointString() }},
			{"callback url", func(r *Request) string { return r.config.CallbackURL }},
			{"consumer key", func(r *Request) string { return r.config.ConsumerKey }},
			{"nonce", func(r *Request) string { return r.nonce }},
			{"signature method", func(r *Request) string { return r.config.signer().Name() }},
			{"timestamp", func(r *Request) string { return r.timestamp }},
			{"version", func(r *Request) string { return defaultOauthVersion }},
		},
	},
	AccessToken: {
		params: []paramRule{
			{oauthSignatureMethodParam, func(r *Request) string { return r.config.signer().Name() }},
			{oauthConsumerKeyParam, func(r *Request) string { return r.config.ConsumerKey }},
			{oauthVersionParam, func(r *Request) string { return defaultOauthVersion }},
			{oauthTimestampParam, func(r *Request) string { return r.Timestamp() }},
			{oauthNonceParam, func(r *Request) string { return r.Nonce() }},
			{oauthTokenParam, func(r *Request) string { return r.token }},
			{oauthVerifierParam, func(r *Request) string { return r.verifier }},
		},
		required: []fieldRule{
			{"endpoint", func(r *Request) string { return r.endpointString() }},
			{"consumer key", func(r *Request) string { return r.config.ConsumerKey }},
			{"token", func(r *Request) string { return r.token }},
			{"verifier", func(r *Request) string { return r.verifier }},
			{"nonce", func(r *Request) string { return r.nonce }},
			{"signature method", func(r *Request) string { return r.config.signer().Name() }},
			{"timestamp", func(r *Request) string { return r.timestamp }},
			{"version", func(r *Request) string { return defaultOauthVersion }},
		},
	},
	ResourceOwnerAuthorization: {
		params: []paramRule{
			{oauthTokenParam, func(r *Request) string { return r.token }},
		},
		required: []fieldRule{
			{"endpoint", func(r *Request) string { return r.endpointString() }},
			{"token", func(r *Request) string { return r.token }},
		},
	},
}

// Validate checks that every input the request type requires is present.
// It never blocks building: the permissive pipeline logs the returned
// error and signs anyway. Callers that need the output to be trustworthy
// inspect Validate themselves or set Config.Strict.
func (r *Request) Validate() error {
	f, ok := flavors[r.requestType]
	if !ok {
		return &ConfigurationError{Reason: fmt.Sprintf("unknown request type %d", r.requestType)}
	}
	var missing []string
	for _, field := range f.required {
		if field.value(r) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Type: r.requestType, Missing: missing}
	}
	return nil
}
