package redis

import (
	"context"
	"net"
	"time"

	"gomoto/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 5 * time.Second

// Options maps the primary redis endpoint onto client options.
func Options(endpoint config.RedisEndpoint) *goRedis.Options {
	return &goRedis.Options{
		Addr:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Password: endpoint.Password,
		DB:       endpoint.DB,
	}
}

func New(cfg *config.Config) *goRedis.Client {
	endpoint := cfg.Cache.Redis.Primary
	client := goRedis.NewClient(Options(endpoint))

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", client.Options().Addr).Msg("failed to connect to redis")
	}

	log.Info().Str("addr", client.Options().Addr).Int("db", endpoint.DB).Msg("connected to redis")

	return client
}
