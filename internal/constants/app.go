package constants

// Application Information
const (
	AppName    = "Bara Sakti Submission API"
	AppVersion = "1.0.0"
)

// Environment Types
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Default Application Settings
const (
	DefaultPort        = "8080"
	DefaultEnvironment = EnvDevelopment
)

// Cache Key Prefixes
const (
	CacheKeyPrefix    = "barasakti:"
	CacheKeyRateLimit = CacheKeyPrefix + "ratelimit:"
	CacheKeyOrder     = CacheKeyPrefix + "order:"
)

// Submission Status
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
)

// Metadata
const (
	SubmissionSource    = "website"
	AnonymousIdentifier = "anonymous"
)
