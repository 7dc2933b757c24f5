// Package config loads server configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Store backends selectable via STORE_BACKEND.
const (
	BackendDynamo = "dynamo"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds all server settings.
type Config struct {
	Port     string `env:"PORT,default=8080"`
	LogLevel string `env:"LOG_LEVEL,default=info"`

	StoreBackend string `env:"STORE_BACKEND,default=dynamo"`
	AWSRegion    string `env:"AWS_REGION,default=us-east-1"`
	DynamoTable  string `env:"DYNAMO_TABLE,default=PetNetKV"`
	RedisAddr    string `env:"REDIS_ADDR,default=localhost:6379"`
	RedisPass    string `env:"REDIS_PASSWORD,default="`
	RedisDB      int    `env:"REDIS_DB,default=0"`

	JWTSecret     string `env:"JWT_SECRET,default=petnet-dev-secret"`
	TokenTTLHours int    `env:"TOKEN_TTL_HOURS,default=24"`

	S3Bucket string `env:"S3_BUCKET_NAME,default="`

	RateLimitRPS   int `env:"RATE_LIMIT_RPS,default=20"`
	RateLimitBurst int `env:"RATE_LIMIT_BURST,default=40"`
}

// Load reads .env if present, then decodes the environment into a Config.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}
	return &cfg, nil
}
