package log

// Logger modes and encodings accepted by ZapConfig.
const (
	ModeProduction = "production"
	ModeDebug      = "debug"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// RequestIDKey is the context key under which the HTTP layer stores the request id.
type RequestIDKey struct{}
