package logger

// ContextKeyRequestID keys the request id in a context
const ContextKeyRequestID = "request_id"

const (
	LogFormatJSON = "json"
	LogFormatText = "text"

	levelWarningAlias = "warning"
)

const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
)

// Attribute keys on every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
