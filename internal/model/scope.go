package model

// Scope carries the identity of the requesting user. All store operations
// are implicitly scoped to UserID.
type Scope struct {
	UserID string
}

// Environment identifies the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
