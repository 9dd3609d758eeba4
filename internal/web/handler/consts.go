package handler

const (
	// APIBasePath is the base path stripped before route matching.
	APIBasePath = "/api"

	// RootPath is the root path of a route group.
	RootPath = "/"

	// ErrNilACDFatalLogMsg is used if api or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "api, cfg or db is nil"
)
