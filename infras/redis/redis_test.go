package redis_test

import (
	"testing"

	"gomoto/config"
	"gomoto/infras/redis"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	opts := redis.Options(config.RedisEndpoint{Host: "cache", Port: "6380", Password: "pw", DB: 2})

	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 2, opts.DB)
}
