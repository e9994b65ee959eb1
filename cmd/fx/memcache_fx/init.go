package memcache_fx

import (
	"time"

	"go.uber.org/fx"
	"utsav/internal/config"
	mem "utsav/pkg/memcache"
)

var Module = fx.Provide(provideSessionStore)

func provideSessionStore(cfg *config.PlannerConfig) mem.SessionStore {
	return mem.NewSessionStore(time.Duration(cfg.SessionTTLMin) * time.Minute)
}
