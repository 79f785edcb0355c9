// Package constants holds string and numeric values shared across layers.
package constants

import "time"

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Token scopes carried in the signed "scope" claim. Email-verification tokens carry none.
const (
	ScopeAccessToken  = "access_token"
	ScopeRefreshToken = "refresh_token"
	ScopeNone         = ""
)

// TokenTypeBearer is returned with every token pair.
const TokenTypeBearer = "bearer"

// Default lifetimes.
const (
	DefaultAccessTokenTTL       = 15 * time.Minute
	DefaultRefreshTokenTTL      = 7 * 24 * time.Hour
	DefaultVerificationTokenTTL = 7 * 24 * time.Hour
	DefaultResetTokenTTL        = time.Hour
	DefaultSessionCacheTTL      = 900 * time.Second
)

// SessionCacheKeyPrefix prefixes the cached user snapshot key; the suffix is the email.
const SessionCacheKeyPrefix = "user:"

// Contact listing bounds.
const (
	DefaultContactsLimit = 100
	MaxContactsLimit     = 500
	UpcomingBirthdayDays = 7
)
