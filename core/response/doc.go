// Package response builds handler.Response values for common replies:
// plain text, HTML, status-only, redirects and typed HTTP errors.
package response
