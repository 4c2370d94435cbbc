package redis_test

import (
	"testing"
	"tourcrm/config"
	"tourcrm/infras/redis"

	"github.com/stretchr/testify/assert"
)

func TestNew_Disabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enable = false
	cfg.App.RateLimiter.Enable = false

	assert.Nil(t, redis.New(cfg))
}
