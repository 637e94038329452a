package kqoauth

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/fatih/structs"
)

// Parameter is a single key/value pair carried into the signature base
// string. Duplicate keys are legal and every occurrence is preserved.
type Parameter struct {
	Key   string
	Value string
}

// ParameterList is an ordered sequence of parameters. The order is
// insertion order until Sort redefines it; after signing the list ends
// with oauth_signature.
type ParameterList []Parameter

// Add appends a pair to the list.
func (p *ParameterList) Add(key, value string) {
	*p = append(*p, Parameter{Key: key, Value: value})
}

// Sort orders the list by key and, on equal keys, by value, comparing the
// unencoded strings (RFC 5849 3.4.1.3.2). The sort is stable: pairs that
// compare equal keep their relative order.
func (p ParameterList) Sort() {
	sort.SliceStable(p, func(i, j int) bool {
		if p[i].Key == p[j].Key {
			return p[i].Value < p[j].Value
		}
		return p[i].Key < p[j].Key
	})
}

// Strings renders the list as "key=value" tokens in list order, one per
// parameter, with the values as stored. Callers joining the tokens into a
// header or query string are responsible for any further encoding.
func (p ParameterList) Strings() []string {
	tokens := make([]string, len(p))
	for i, param := range p {
		tokens[i] = param.Key + "=" + param.Value
	}
	return tokens
}

// ParamsFromStruct flattens a struct into an additional-parameter map for
// SetAdditionalParameters. Field names become keys unless renamed with a
// `structs` tag; values are rendered in their query form. Only flat
// structs are supported.
func ParamsFromStruct(v interface{}) map[string]string {
	mapped := structs.Map(v)
	params := make(map[string]string, len(mapped))
	for key, value := range mapped {
		params[key] = paramValue(value)
	}
	return params
}

func paramValue(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.FormatInt(int64(value), 10)
	case int32:
		return strconv.FormatInt(int64(value), 10)
	case int64:
		return strconv.FormatInt(value, 10)
	case uint:
		return strconv.FormatUint(uint64(value), 10)
	case uint64:
		return strconv.FormatUint(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprintf("%v", value)
	}
}
