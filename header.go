package kqoauth

import "strings"

const (
	authorizationPrefix = "OAuth " // trailing space is intentional
	realmParam          = "realm"
)

// AuthorizationHeader formats signed parameters as an Authorization
// header value according to RFC 5849 3.5.1: the "OAuth " prefix, the
// realm first when one is given, then key="value" pairs joined with
// ", " in the parameters' final order. The realm is excluded from the
// signature base string, so it is supplied here rather than carried in
// the parameter list.
func AuthorizationHeader(params ParameterList, realm string) string {
	pairs := make([]string, 0, len(params)+1)
	if realm != "" {
		pairs = append(pairs, realmParam+`="`+PercentEncode(realm)+`"`)
	}
	for _, p := range params {
		pairs = append(pairs, PercentEncode(p.Key)+`="`+wireValue(p)+`"`)
	}
	return authorizationPrefix + strings.Join(pairs, ", ")
}

// QueryString formats signed parameters as a query string, for callers
// attaching them to the request URL instead of an Authorization header.
func QueryString(params ParameterList) string {
	pairs := make([]string, 0, len(params))
	for _, p := range params {
		pairs = append(pairs, PercentEncode(p.Key)+"="+wireValue(p))
	}
	return strings.Join(pairs, "&")
}

// wireValue returns the percent encoded wire form of a parameter value.
// The collector stores the oauth_callback value percent encoded already,
// so it passes through untouched rather than being encoded twice.
func wireValue(p Parameter) string {
	if p.Key == oauthCallbackParam {
		return p.Value
	}
	return PercentEncode(p.Value)
}
