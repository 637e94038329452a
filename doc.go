// Package kqoauth builds OAuth 1.0a request authorization parameters: it
// collects the oauth_* protocol parameters for a request, normalizes and
// percent encodes them into the signature base string defined by RFC 5849,
// signs the base string, and returns the final ordered parameter set ready
// to be carried in an Authorization header or a query string.
//
// The package only produces parameters. Sending the signed request, parsing
// provider responses and driving the three-legged authorization flow are
// left to the caller.
package kqoauth
