package ports

import (
	"context"

	"github.com/vncsmyrnk/ledger/internal/core/domain"
)

type TallyService interface {
	Tally(ctx context.Context) ([]domain.CandidateTally, error)
}
