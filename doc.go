// Package main provides the entry point for the inkwell content
// management backend. It runs a web server using the Fiber framework
// that exposes a REST API for blog posts, site settings, an admin login
// check and a raw SQL console, and serves the embedded single-page
// admin UI. The application uses gorm for data persistence.
package main
