package model

// Scope identifies the caller of a use case.
type Scope struct {
	SessionID string
	UserID    string
}

// EnvironmentName is the deployment environment from config.
type EnvironmentName string

const (
	EnvironmentDevelopment EnvironmentName = "development"
	EnvironmentProduction  EnvironmentName = "production"
)
