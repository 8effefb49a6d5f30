package redis

import "time"

// Config holds Redis connection settings. ConnectionURL accepts redis:// and
// rediss:// schemes and may carry pool parameters, e.g.
// "redis://:password@localhost:6379/0?pool_size=20".
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}
