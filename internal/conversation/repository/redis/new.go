package redis

import (
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"travel-assistant/internal/conversation/repository"
	"travel-assistant/pkg/log"
)

// DefaultPrefix namespaces session keys.
const DefaultPrefix = "travel:session:"

type implRepository struct {
	client *backend.Client
	l      log.Logger
	prefix string
	ttl    time.Duration
}

var _ repository.Repository = (*implRepository)(nil)

type Option func(*implRepository)

// WithTTL expires idle sessions. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(r *implRepository) {
		r.ttl = ttl
	}
}

func WithPrefix(prefix string) Option {
	return func(r *implRepository) {
		r.prefix = prefix
	}
}

// New creates a Redis-backed Repository on an existing client.
func New(client *backend.Client, l log.Logger, opts ...Option) repository.Repository {
	if client == nil {
		panic("conversation/repository/redis: client is required")
	}
	r := &implRepository{
		client: client,
		l:      l,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *implRepository) key(id string) string {
	return r.prefix + id
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("conversation/repository/redis.%s", method)
}
