package kqoauth

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RequestType selects which request of the OAuth 1.0a flow the
// parameters are built for (RFC 5849 2.1, 2.2, 2.3).
type RequestType int

const (
	TemporaryCredentials RequestType = iota
	ResourceOwnerAuthorization
	AccessToken
)

func (t RequestType) String() string {
	switch t {
	case TemporaryCredentials:
		return "temporary credentials"
	case ResourceOwnerAuthorization:
		return "resource owner authorization"
	case AccessToken:
		return "access token"
	}
	return fmt.Sprintf("RequestType(%d)", int(t))
}

// Request accumulates the inputs for one signing pass: the request type,
// endpoint, HTTP method, token material, and any additional parameters,
// together with the timestamp and nonce frozen by Init.
//
// A Request is a one-shot builder. Configure it with the setters, call
// Init, then Parameters; the first Parameters call performs the build and
// later calls return the same list. Create a new Request for each request
// to be signed, and do not share one across goroutines.
type Request struct {
	config      *Config
	requestType RequestType
	endpoint    *url.URL
	method      string
	token       string
	tokenSecret string
	verifier    string
	additional  ParameterList
	timestamp   string
	nonce       string

	// first configuration error seen, returned by Parameters in
	// strict mode
	configErr error

	built  bool
	params ParameterList
	base   []byte
	err    error
}

// NewRequest returns a Request bound to the Config's credentials and
// collaborators. The HTTP method defaults to POST.
func (c *Config) NewRequest() *Request {
	return &Request{
		config: c,
		method: http.MethodPost,
	}
}

// Init binds the request to a type and an absolute endpoint URL and
// freezes the timestamp and nonce for the lifetime of the request. An
// invalid endpoint or unknown request type is logged and recorded as a
// configuration error; building still proceeds with whatever state is
// usable.
func (r *Request) Init(requestType RequestType, endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil || !u.IsAbs() {
		return r.configError(fmt.Sprintf("endpoint URL %q is not valid; this request might not work", endpoint))
	}
	r.endpoint = u
	var cerr error
	if _, ok := flavors[requestType]; !ok {
		cerr = r.configError(fmt.Sprintf("unknown request type %d; this request might not work", requestType))
	}
	r.requestType = requestType
	r.timestamp = r.Timestamp()
	if r.nonce == "" {
		r.nonce = r.newNonce()
	}
	return cerr
}

// SetHTTPMethod sets the HTTP method the request will be signed for.
// GET, POST, HEAD and DELETE are accepted; anything else is logged as a
// configuration error and the previous method is kept.
func (r *Request) SetHTTPMethod(method string) {
	switch m := strings.ToUpper(method); m {
	case http.MethodGet, http.MethodPost, http.MethodHead, http.MethodDelete:
		r.method = m
	default:
		r.configError(fmt.Sprintf("invalid HTTP method %q, keeping %s", method, r.method))
	}
}

// SetToken sets the oauth_token credential: the temporary token for an
// access token request, or the token to send the user to authorize.
func (r *Request) SetToken(token string) {
	r.token = token
}

// SetTokenSecret sets the secret paired with the token, used as the
// second half of the signing key. It is empty before a token has been
// issued.
func (r *Request) SetTokenSecret(secret string) {
	r.tokenSecret = secret
}

// SetVerifier sets the oauth_verifier received from the authorization
// callback, required for access token requests.
func (r *Request) SetVerifier(verifier string) {
	r.verifier = verifier
}

// SetAdditionalParameters replaces the caller supplied parameters that
// are signed along with the protocol parameters. They are appended in
// key order; keys colliding with protocol parameters are kept as
// duplicates rather than overriding them.
func (r *Request) SetAdditionalParameters(params map[string]string) {
	r.additional = nil
	for key, value := range params {
		r.additional.Add(key, value)
	}
	r.additional.Sort()
}

// AddAdditionalParameter appends one caller supplied parameter.
// Duplicate keys are preserved.
func (r *Request) AddAdditionalParameter(key, value string) {
	r.additional.Add(key, value)
}

// SetTimestamp overrides the request timestamp with a fixed value. Call
// it before Init. It exists for deterministic output in tests; production
// requests use the wall clock.
func (r *Request) SetTimestamp(timestamp string) {
	r.timestamp = timestamp
}

// SetNonce overrides the request nonce with a fixed value. Call it
// before Init. It exists for deterministic output in tests.
func (r *Request) SetNonce(nonce string) {
	r.nonce = nonce
}

// Timestamp returns the frozen or overridden timestamp when one is set
// and the current Unix time in decimal seconds otherwise.
func (r *Request) Timestamp() string {
	if r.timestamp != "" {
		return r.timestamp
	}
	return epoch(time.Now())
}

// Nonce returns the frozen or overridden nonce when one is set.
// Otherwise it derives one from the request timestamp, generating a
// timestamp first if none is set yet.
func (r *Request) Nonce() string {
	if r.nonce != "" {
		return r.nonce
	}
	return derivedNonce(r.Timestamp())
}

// HTTPMethod returns the method the request will be signed for.
func (r *Request) HTTPMethod() string {
	return r.method
}

// Endpoint returns the endpoint URL the request was initialized with,
// or the empty string before Init.
func (r *Request) Endpoint() string {
	return r.endpointString()
}

func (r *Request) endpointString() string {
	if r.endpoint == nil {
		return ""
	}
	return r.endpoint.String()
}

// newNonce produces the nonce frozen at Init time: the Config's Noncer
// when one is installed, else an MD5 digest of the frozen timestamp.
func (r *Request) newNonce() string {
	if r.config.Noncer != nil {
		return r.config.Noncer.Nonce()
	}
	return derivedNonce(r.timestamp)
}

// configError logs the reason, records the first configuration error for
// strict mode, and returns it.
func (r *Request) configError(reason string) error {
	err := &ConfigurationError{Reason: reason}
	r.config.logger().Warn(err.Error())
	if r.configErr == nil {
		r.configErr = err
	}
	return err
}

// Parameters runs the build and sign pass and returns the final ordered
// parameter list with oauth_signature last. The first call performs the
// work and the result is memoized, so re-reads are idempotent.
//
// In the default permissive mode validation failures are logged and the
// request is signed anyway; the returned error is non-nil only when the
// signer itself fails. With Config.Strict set, configuration errors and
// validation failures are returned instead.
func (r *Request) Parameters() (ParameterList, error) {
	if !r.built {
		r.params, r.err = r.build()
		r.built = true
	}
	return r.params, r.err
}

// BaseString returns the signature base string of the build pass,
// triggering it if it has not run yet. It is nil when a strict mode
// error prevented the build.
func (r *Request) BaseString() []byte {
	r.Parameters()
	return r.base
}

func (r *Request) build() (ParameterList, error) {
	if r.config.Strict && r.configErr != nil {
		return nil, r.configErr
	}
	if err := r.Validate(); err != nil {
		if r.config.Strict {
			return nil, err
		}
		r.config.logger().Warnf("request is not valid, signing anyway: %v", err)
	}
	params := r.prepare()
	params.Sort()
	r.base = signatureBase(r.method, r.endpoint, params)
	signature, err := r.config.signer().Sign(r.tokenSecret, string(r.base))
	if err != nil {
		return nil, err
	}
	params.Add(oauthSignatureParam, signature)
	return params, nil
}

// prepare collects the protocol parameters for the request type followed
// by the caller supplied additional parameters. Missing inputs yield
// empty values here; flagging them is the validator's job.
func (r *Request) prepare() ParameterList {
	var params ParameterList
	if f, ok := flavors[r.requestType]; ok {
		for _, rule := range f.params {
			params.Add(rule.key, rule.value(r))
		}
	}
	return append(params, r.additional...)
}
