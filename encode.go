package kqoauth

import (
	"bytes"
	"net/url"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// PercentEncode percent encodes a string according to RFC 3986 2.1. Bytes
// outside the unreserved set are escaped as uppercase %XX, so the encoding
// is safe for arbitrary UTF-8 and binary input.
func PercentEncode(input string) string {
	var buf strings.Builder
	buf.Grow(len(input))
	for i := 0; i < len(input); i++ {
		b := input[i]
		if shouldEscape(b) {
			buf.WriteByte('%')
			buf.WriteByte(upperhex[b>>4])
			buf.WriteByte(upperhex[b&15])
		} else {
			buf.WriteByte(b)
		}
	}
	return buf.String()
}

// shouldEscape returns false if the byte is an unreserved character that
// should not be escaped and true otherwise, according to RFC 3986 2.1.
func shouldEscape(c byte) bool {
	// RFC 3986 2.3 unreserved characters
	if 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' {
		return false
	}
	switch c {
	case '-', '.', '_', '~':
		return false
	}
	// all other bytes must be escaped
	return true
}

// stripQuery returns the endpoint in the form carried into the base string:
// the URL with its query component removed. The rest of the URL is left
// untouched; the full endpoint is still what the request is sent to.
func stripQuery(endpoint *url.URL) string {
	if endpoint == nil {
		return ""
	}
	stripped := *endpoint
	stripped.RawQuery = ""
	stripped.ForceQuery = false
	return stripped.String()
}

// encodedParameterList renders normalized parameters as percent encoded
// pairs. The parameter block is itself one encoded segment of the base
// string, so the joining characters are carried pre-encoded: "%3D" between
// key and value, "%26" between pairs.
func encodedParameterList(params ParameterList) []byte {
	var list bytes.Buffer
	for i, p := range params {
		if i > 0 {
			list.WriteString("%26")
		}
		list.WriteString(PercentEncode(p.Key))
		list.WriteString("%3D")
		list.WriteString(PercentEncode(p.Value))
	}
	return list.Bytes()
}

// signatureBase assembles the signature base string per RFC 5849 3.4.1:
// the uppercase HTTP method, the percent encoded endpoint with its query
// component removed, and the encoded parameter list, joined with "&".
// The oauth_signature parameter is never part of the list by construction.
func signatureBase(method string, endpoint *url.URL, params ParameterList) []byte {
	var base bytes.Buffer
	base.WriteString(method)
	base.WriteByte('&')
	base.WriteString(PercentEncode(stripQuery(endpoint)))
	base.WriteByte('&')
	base.Write(encodedParameterList(params))
	return base.Bytes()
}
