package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/vncsmyrnk/ledger/internal/core/domain"
	"github.com/vncsmyrnk/ledger/internal/core/ports"
)

const (
	uniqueViolation      = "23505"
	voterIDConstraint    = "votes_voter_id_key"
	primaryKeyConstraint = "votes_pkey"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// Insert relies on the votes_voter_id_key constraint, so the uniqueness check
// and the write happen in a single statement.
func (r *voteRepository) Insert(ctx context.Context, vote domain.Vote) error {
	query := `
		INSERT INTO votes (id, voter_id, candidate, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.db.ExecContext(ctx, query, vote.ID, vote.VoterID, vote.Candidate, int64(vote.CreatedAt))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			switch pqErr.Constraint {
			case voterIDConstraint:
				return domain.ErrDuplicateVoter
			case primaryKeyConstraint:
				return domain.ErrVoteIDConflict
			}
		}
		return fmt.Errorf("failed to save vote: %w", err)
	}
	return nil
}

func (r *voteRepository) GetByID(ctx context.Context, id string) (domain.Vote, bool, error) {
	query := `SELECT id, voter_id, candidate, created_at FROM votes WHERE id = $1`

	var (
		vote      domain.Vote
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(&vote.ID, &vote.VoterID, &vote.Candidate, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Vote{}, false, nil
		}
		return domain.Vote{}, false, fmt.Errorf("failed to get vote: %w", err)
	}
	vote.CreatedAt = uint64(createdAt)
	return vote, true, nil
}

func (r *voteRepository) HasVoted(ctx context.Context, voterID string) (bool, error) {
	query := `SELECT 1 FROM votes WHERE voter_id = $1 LIMIT 1`
	var exists int
	err := r.db.QueryRowContext(ctx, query, voterID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return true, nil
}

func (r *voteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return count, nil
}

func (r *voteRepository) CountByCandidate(ctx context.Context, candidate string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes WHERE candidate = $1`, candidate).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count votes for candidate: %w", err)
	}
	return count, nil
}

func (r *voteRepository) Candidates(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT candidate FROM votes ORDER BY candidate`)
}

func (r *voteRepository) Voters(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT voter_id FROM votes ORDER BY voter_id`)
}

func (r *voteRepository) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `TRUNCATE TABLE votes RESTART IDENTITY`); err != nil {
		return fmt.Errorf("failed to reset votes: %w", err)
	}
	return nil
}

func (r *voteRepository) distinct(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list values: %w", err)
	}
	defer rows.Close()

	items := make([]string, 0)
	for rows.Next() {
		var item string
		if err := rows.Scan(&item); err != nil {
			return nil, fmt.Errorf("failed to scan value: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating values: %w", err)
	}
	return items, nil
}
