package kqoauth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizationHeader(t *testing.T) {
	params := ParameterList{
		{Key: "oauth_callback", Value: "https%3A%2F%2Fexample.com%2Fcb"},
		{Key: "oauth_consumer_key", Value: "ck"},
		{Key: "oauth_signature", Value: "abc+/="},
	}
	header := AuthorizationHeader(params, "Example")
	assert.Equal(t, `OAuth realm="Example", `+
		`oauth_callback="https%3A%2F%2Fexample.com%2Fcb", `+
		`oauth_consumer_key="ck", `+
		`oauth_signature="abc%2B%2F%3D"`, header)
}

func TestAuthorizationHeaderWithoutRealm(t *testing.T) {
	params := ParameterList{
		{Key: "oauth_consumer_key", Value: "ck"},
	}
	assert.Equal(t, `OAuth oauth_consumer_key="ck"`, AuthorizationHeader(params, ""))
}

func TestAuthorizationHeaderCallbackNotReencoded(t *testing.T) {
	// the callback value is stored percent encoded by the collector;
	// a second pass would mangle it on the wire
	params := ParameterList{
		{Key: "oauth_callback", Value: "https%3A%2F%2Fexample.com%2Fcb"},
	}
	header := AuthorizationHeader(params, "")
	assert.Contains(t, header, `oauth_callback="https%3A%2F%2Fexample.com%2Fcb"`)
	assert.NotContains(t, header, "%253A")
}

func TestQueryString(t *testing.T) {
	params := ParameterList{
		{Key: "oauth_token", Value: "t"},
		{Key: "q", Value: "a b"},
	}
	assert.Equal(t, "oauth_token=t&q=a%20b", QueryString(params))
}

func TestAuthorizationHeaderFromRequest(t *testing.T) {
	r := fixedRequest(t, testConfig())
	params, err := r.Parameters()
	require.NoError(t, err)

	header := AuthorizationHeader(params, "")
	assert.True(t, strings.HasPrefix(header, `OAuth oauth_callback="https%3A%2F%2Fexample.com%2Fcb", `))
	assert.Contains(t, header, `oauth_consumer_key="ck"`)
	assert.Contains(t, header, `oauth_nonce="abc123"`)
	assert.Contains(t, header, `oauth_signature="`)
}
