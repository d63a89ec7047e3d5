// Package middleware carries the cross-cutting HTTP concerns: JWT
// authentication, role guards, error-to-status mapping, and binding
// error formatting.
package middleware
