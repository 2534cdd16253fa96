package console

import (
	"log/slog"
	"math/rand/v2"

	"github.com/couchcryptid/radar-console/internal/config"
	"github.com/couchcryptid/radar-console/internal/domain"
	"github.com/couchcryptid/radar-console/internal/observability"
	"github.com/couchcryptid/radar-console/internal/scan"
	"github.com/jonboulle/clockwork"
)

// FromConfig wires an engine and generator from cfg into a new Console.
// Without TARGET_SEED the generator is seeded randomly.
func FromConfig(cfg *config.Config, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Console {
	engine := scan.NewEngine(cfg.PRF, cfg.RotationRPM, cfg.IlluminationDeg)

	seed1, seed2 := rand.Uint64(), rand.Uint64()
	if cfg.TargetSeeded {
		seed1, seed2 = cfg.TargetSeed, cfg.TargetSeed
	}
	generator := domain.NewGenerator(rand.New(rand.NewPCG(seed1, seed2)), cfg.TargetKinematics)

	return New(engine, clock, generator, Options{
		TargetCount:     cfg.TargetCount,
		AutoStart:       cfg.AutoStart,
		RefreshInterval: cfg.RefreshInterval,
	}, logger, metrics)
}
