package routes

import (
	"net/http"
	"os"
	"strings"
)

// methodCalls are the registration calls InferMethods looks for, in result
// order.
var methodCalls = []struct {
	method string
	call   string
}{
	{http.MethodGet, "router.get("},
	{http.MethodPost, "router.post("},
	{http.MethodPut, "router.put("},
	{http.MethodDelete, "router.delete("},
}

// InferMethods guesses the HTTP methods a route file registers by scanning
// its text for router.Get(, router.Post(, router.Put( and router.Delete(
// (case-insensitive, so the lower-case forms match too).
//
// This is a substring match, not an analysis of the code: calls inside
// comments or strings are reported, and methods registered through a loop,
// a helper or a differently named router variable are missed. A missing or
// unreadable file yields no methods.
func InferMethods(source string) []string {
	data, err := os.ReadFile(source)
	if err != nil {
		return nil
	}
	text := strings.ToLower(string(data))

	var methods []string
	for _, mc := range methodCalls {
		if strings.Contains(text, mc.call) {
			methods = append(methods, mc.method)
		}
	}
	return methods
}
