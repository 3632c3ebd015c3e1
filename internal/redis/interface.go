package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the stores use. It is the full universal
// client so single-node and cluster deployments share one code path.
type Client interface {
	redis.UniversalClient
}
