// Package handler provides type-safe HTTP request handling built around a
// generic HandlerFunc[C, R]: C is the request context, R the bound request
// type. Wrap converts a typed handler into an http.HandlerFunc, running the
// configured binders, the handler itself, and the returned Response.
//
// Responses come in three flavors: JSON (with validation failures rendered
// as a 422 field map), Templ (server-rendered HTML pages) and Redirect.
package handler
