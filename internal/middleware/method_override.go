package middleware

import (
	"net/http"
	"strings"
)

// MethodOverride rewrites POST requests carrying a _method parameter into
// the verb they stand for, so HTML forms can express PUT and DELETE.
//
// It must wrap the router rather than run as route middleware: the router
// matches on the method, so the rewrite has to happen before dispatch.
// The parameter is read from the query string, or from the body for
// urlencoded forms (multipart bodies are left untouched for the handler).
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if m := overriddenMethod(r); m != "" {
				r.Method = m
			}
		}
		next.ServeHTTP(w, r)
	})
}

func overriddenMethod(r *http.Request) string {
	method := r.URL.Query().Get("_method")

	if method == "" && strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err == nil {
			method = r.PostForm.Get("_method")
		}
	}

	switch strings.ToUpper(method) {
	case http.MethodPut:
		return http.MethodPut
	case http.MethodDelete:
		return http.MethodDelete
	}
	return ""
}
