// Package fallback writes redirect pages for static hosts that cannot run the
// locale redirect middleware, such as GitHub Pages.
package fallback
