package ports

import (
	"context"

	"github.com/primelabel/labelview/internal/core/domain"
)

// LabelService resolves a lookup key into exactly one upstream call.
//
// Each resolution is tagged with a sequence number issued per scope (one
// scope per viewing session), so that a slow response which has been
// superseded by a newer lookup in the same scope is discarded instead of
// overwriting fresher state.
type LabelService interface {
	// Issue returns the next sequence number for the scope, marking any
	// in-flight resolution with a lower number as superseded.
	Issue(scope string) uint64

	// Resolve performs the lookup. It returns domain.ErrInvalidLookup
	// without any upstream call when the key satisfies no shape, and
	// domain.ErrSuperseded when a newer sequence number has been issued
	// for the scope by the time the upstream answers.
	Resolve(ctx context.Context, scope string, seq uint64, key domain.LookupKey) (*domain.Label, error)
}
