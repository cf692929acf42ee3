// audit/service.go
package audit

import (
	"context"
	"fmt"
	"time"

	things_errors "github.com/dev-mohitbeniwal/thingsconsole/errors"
)

// Service answers history queries over mirrored entries.
type Service interface {
	History(ctx context.Context, from, to time.Time, operation string) ([]Entry, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) History(ctx context.Context, from, to time.Time, operation string) ([]Entry, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%w: from %s is after to %s", things_errors.ErrInvalidTimeRange,
			from.UTC().Format(TimestampLayout), to.UTC().Format(TimestampLayout))
	}
	return s.repo.QueryEntries(ctx, from, to, operation)
}
