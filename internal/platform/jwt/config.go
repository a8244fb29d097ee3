// Package jwtmw provides JWT token generation and Gin authentication middleware.
package jwtmw

import "time"

// EnvKeyJWTSecret is the environment variable holding the token signing secret.
// Its presence is checked at process startup; a missing secret is a fatal
// configuration error, not a per-request one.
const EnvKeyJWTSecret = "JWT_SECRET"

// TokenTTL is the fixed validity window of issued tokens. There is no refresh
// mechanism; an expired token requires a new login.
const TokenTTL = 7 * 24 * time.Hour
