package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/primelabel/labelview/internal/api/metrics"
	"github.com/primelabel/labelview/internal/core/domain"
	"github.com/primelabel/labelview/internal/core/ports"
)

type labelService struct {
	gateway ports.LabelGateway
	log     zerolog.Logger

	mu     sync.Mutex
	latest map[string]uint64
}

// NewLabelService returns a LabelService backed by the upstream gateway.
func NewLabelService(gateway ports.LabelGateway, log zerolog.Logger) ports.LabelService {
	return &labelService{
		gateway: gateway,
		log:     log,
		latest:  make(map[string]uint64),
	}
}

// Issue hands out the next sequence number for the scope. Any resolution
// still in flight with a lower number is superseded from this point on.
func (s *labelService) Issue(scope string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[scope]++
	return s.latest[scope]
}

func (s *labelService) current(scope string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest[scope]
}

// Resolve maps the lookup key onto exactly one upstream call and returns the
// label or the error the caller should surface. Invalid keys short-circuit
// without touching the upstream.
func (s *labelService) Resolve(ctx context.Context, scope string, seq uint64, key domain.LookupKey) (*domain.Label, error) {
	if !key.Valid() {
		metrics.LookupsTotal.WithLabelValues(string(key.Kind), "invalid").Inc()
		return nil, domain.ErrInvalidLookup
	}

	start := time.Now()

	var label *domain.Label
	var err error
	switch key.Kind {
	case domain.LookupByIdentifier:
		label, err = s.gateway.LabelByIdentifier(ctx, key.Code)
	case domain.LookupByBatch:
		label, err = s.gateway.LabelByBatch(ctx, key.Sponsor, key.Trial, key.Batch)
	case domain.LookupByKit:
		label, err = s.gateway.LabelByKit(ctx, key.Sponsor, key.Trial, key.Kit)
	}

	// A lookup issued after this one wins, whatever this one returned.
	if seq != 0 && s.current(scope) != seq {
		s.log.Debug().Str("scope", scope).Uint64("seq", seq).Msg("discarding superseded lookup result")
		metrics.LookupsTotal.WithLabelValues(string(key.Kind), "superseded").Inc()
		return nil, domain.ErrSuperseded
	}

	if err != nil {
		s.log.Info().
			Err(err).
			Str("kind", string(key.Kind)).
			Dur("elapsed", time.Since(start)).
			Msg("label lookup failed")
		metrics.LookupsTotal.WithLabelValues(string(key.Kind), "error").Inc()
		return nil, err
	}

	metrics.LookupsTotal.WithLabelValues(string(key.Kind), "ok").Inc()
	metrics.LookupDuration.WithLabelValues(string(key.Kind)).Observe(time.Since(start).Seconds())
	return label, nil
}
