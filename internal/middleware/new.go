package middleware

import (
	"github.com/SamTech-crypto/audit-workflow-app/config"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/log"
)

type Middleware struct {
	l   log.Logger
	cfg *config.Config

	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:           l,
		cfg:         cfg,
		rateLimiter: newRateLimiter(cfg.RateLimit.RequestsPerMin),
	}
}
