// Package slug derives URL-safe identifiers from post titles.
package slug
