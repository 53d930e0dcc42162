package configs

import "time"

// MinSecretLen is the minimum length of JWTSecret and NonceKey in bytes.
const MinSecretLen = 32

// Auth configures admin tokens and action nonces. Both secrets have no
// default and must be set explicitly.
type Auth struct {
	// JWTSecret signs admin bearer tokens (HS256).
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`
	// NonceKey authenticates nonces.
	NonceKey string `env:"NONCE_KEY,required,notEmpty"`
	// NonceLifetime is how long an issued nonce stays valid.
	NonceLifetime time.Duration `env:"NONCE_LIFETIME" envDefault:"24h"`
	// TokenLifetime is the validity of tokens issued by cmd/admintoken.
	TokenLifetime time.Duration `env:"TOKEN_LIFETIME" envDefault:"720h"`
}
