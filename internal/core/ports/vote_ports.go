package ports

import (
	"context"

	"github.com/vncsmyrnk/ledger/internal/core/domain"
)

// VoteRepository stores the ledger. Insert must check voter uniqueness and
// write the vote as one atomic step, returning domain.ErrDuplicateVoter when
// the voter already has a vote.
type VoteRepository interface {
	Insert(ctx context.Context, vote domain.Vote) error
	GetByID(ctx context.Context, id string) (domain.Vote, bool, error)
	HasVoted(ctx context.Context, voterID string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByCandidate(ctx context.Context, candidate string) (int64, error)
	Candidates(ctx context.Context) ([]string, error)
	Voters(ctx context.Context) ([]string, error)
	Reset(ctx context.Context) error
}

type LedgerService interface {
	CastVote(ctx context.Context, voterID, candidate string) (domain.Vote, error)
	GetVoteByID(ctx context.Context, id string) (domain.Vote, bool, error)
	HasVoted(ctx context.Context, voterID string) (bool, error)
	TotalVotes(ctx context.Context) (int64, error)
	CountVotesForCandidate(ctx context.Context, candidate string) (int64, error)
	ListCandidates(ctx context.Context) ([]string, error)
	ListVoters(ctx context.Context) ([]string, error)
	ResetVotes(ctx context.Context) error
}
