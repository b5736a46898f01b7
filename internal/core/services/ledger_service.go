package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vncsmyrnk/ledger/internal/core/domain"
	"github.com/vncsmyrnk/ledger/internal/core/ports"
)

type ledgerService struct {
	repo   ports.VoteRepository
	clock  ports.Clock
	ids    ports.IDGenerator
	logger *slog.Logger
}

func NewLedgerService(repo ports.VoteRepository, clock ports.Clock, ids ports.IDGenerator, logger *slog.Logger) ports.LedgerService {
	return &ledgerService{
		repo:   repo,
		clock:  clock,
		ids:    ids,
		logger: resolveLogger(logger),
	}
}

func (s *ledgerService) CastVote(ctx context.Context, voterID, candidate string) (domain.Vote, error) {
	if voterID == "" || candidate == "" {
		return domain.Vote{}, domain.ErrInvalidInput
	}

	hasVoted, err := s.repo.HasVoted(ctx, voterID)
	if err != nil {
		return domain.Vote{}, s.infrastructure(ctx, "check voter", err)
	}
	if hasVoted {
		return domain.Vote{}, domain.ErrDuplicateVoter
	}

	id, err := s.ids.NewID()
	if err != nil {
		return domain.Vote{}, s.infrastructure(ctx, "generate vote id", err)
	}

	createdAt, err := s.clock.Now()
	if err != nil {
		return domain.Vote{}, s.infrastructure(ctx, "read clock", err)
	}

	vote := domain.Vote{
		ID:        id,
		VoterID:   voterID,
		Candidate: candidate,
		CreatedAt: createdAt,
	}

	// The store repeats the uniqueness check atomically with the write, so a
	// concurrent vote by the same voter surfaces here as ErrDuplicateVoter.
	if err := s.repo.Insert(ctx, vote); err != nil {
		if errors.Is(err, domain.ErrDuplicateVoter) {
			return domain.Vote{}, domain.ErrDuplicateVoter
		}
		return domain.Vote{}, s.infrastructure(ctx, "insert vote", err)
	}

	s.logger.DebugContext(ctx, "vote cast", "vote_id", vote.ID, "candidate", vote.Candidate)
	return vote, nil
}

func (s *ledgerService) GetVoteByID(ctx context.Context, id string) (domain.Vote, bool, error) {
	vote, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Vote{}, false, s.infrastructure(ctx, "get vote", err)
	}
	return vote, found, nil
}

func (s *ledgerService) HasVoted(ctx context.Context, voterID string) (bool, error) {
	hasVoted, err := s.repo.HasVoted(ctx, voterID)
	if err != nil {
		return false, s.infrastructure(ctx, "check voter", err)
	}
	return hasVoted, nil
}

func (s *ledgerService) TotalVotes(ctx context.Context) (int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return 0, s.infrastructure(ctx, "count votes", err)
	}
	return total, nil
}

func (s *ledgerService) CountVotesForCandidate(ctx context.Context, candidate string) (int64, error) {
	count, err := s.repo.CountByCandidate(ctx, candidate)
	if err != nil {
		return 0, s.infrastructure(ctx, "count candidate votes", err)
	}
	return count, nil
}

func (s *ledgerService) ListCandidates(ctx context.Context) ([]string, error) {
	candidates, err := s.repo.Candidates(ctx)
	if err != nil {
		return nil, s.infrastructure(ctx, "list candidates", err)
	}
	return candidates, nil
}

func (s *ledgerService) ListVoters(ctx context.Context) ([]string, error) {
	voters, err := s.repo.Voters(ctx)
	if err != nil {
		return nil, s.infrastructure(ctx, "list voters", err)
	}
	return voters, nil
}

func (s *ledgerService) ResetVotes(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		return s.infrastructure(ctx, "reset votes", err)
	}
	s.logger.InfoContext(ctx, "ledger reset")
	return nil
}

func (s *ledgerService) infrastructure(ctx context.Context, op string, err error) error {
	s.logger.ErrorContext(ctx, "ledger operation failed", "op", op, "error", err)
	return fmt.Errorf("%w: failed to %s: %w", domain.ErrInfrastructure, op, err)
}
