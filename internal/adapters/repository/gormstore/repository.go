package gormstore

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vncsmyrnk/ledger/internal/core/domain"
	"github.com/vncsmyrnk/ledger/internal/core/ports"
	"gorm.io/gorm"
)

const (
	uniqueViolation      = "23505"
	voterIDConstraint    = "votes_voter_id_key"
	primaryKeyConstraint = "votes_pkey"
)

// Repository is a VoteRepository over GORM. It shares the votes table and
// migrations with the database/sql store.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ ports.VoteRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) Insert(ctx context.Context, vote domain.Vote) error {
	row := voteModelFromEntity(vote)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			switch pgErr.ConstraintName {
			case voterIDConstraint:
				return domain.ErrDuplicateVoter
			case primaryKeyConstraint:
				return domain.ErrVoteIDConflict
			}
		}
		return r.logError("ledger_repo_insert_vote_failed", err, "vote_id", vote.ID)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (domain.Vote, bool, error) {
	var row voteModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Vote{}, false, nil
		}
		return domain.Vote{}, false, r.logError("ledger_repo_get_vote_failed", err, "vote_id", id)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) HasVoted(ctx context.Context, voterID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&voteModel{}).Where("voter_id = ?", voterID).Limit(1).Count(&count).Error
	if err != nil {
		return false, r.logError("ledger_repo_has_voted_failed", err)
	}
	return count > 0, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&voteModel{}).Count(&count).Error; err != nil {
		return 0, r.logError("ledger_repo_count_failed", err)
	}
	return count, nil
}

func (r *Repository) CountByCandidate(ctx context.Context, candidate string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&voteModel{}).Where("candidate = ?", candidate).Count(&count).Error
	if err != nil {
		return 0, r.logError("ledger_repo_count_candidate_failed", err, "candidate", candidate)
	}
	return count, nil
}

func (r *Repository) Candidates(ctx context.Context) ([]string, error) {
	items := make([]string, 0)
	err := r.db.WithContext(ctx).Model(&voteModel{}).
		Distinct("candidate").
		Order("candidate").
		Pluck("candidate", &items).
		Error
	if err != nil {
		return nil, r.logError("ledger_repo_list_candidates_failed", err)
	}
	return items, nil
}

func (r *Repository) Voters(ctx context.Context) ([]string, error) {
	items := make([]string, 0)
	err := r.db.WithContext(ctx).Model(&voteModel{}).
		Order("voter_id").
		Pluck("voter_id", &items).
		Error
	if err != nil {
		return nil, r.logError("ledger_repo_list_voters_failed", err)
	}
	return items, nil
}

func (r *Repository) Reset(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Exec("TRUNCATE TABLE votes RESTART IDENTITY").Error; err != nil {
		return r.logError("ledger_repo_reset_failed", err)
	}
	return nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+6)
	fields = append(fields,
		"event", event,
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("ledger repository operation failed", fields...)
	return err
}

// voteModel maps the votes table. CreatedAtNanos must not be named CreatedAt:
// GORM would fill a zero value with its own unix timestamp.
type voteModel struct {
	ID             string `gorm:"column:id;primaryKey"`
	VoterID        string `gorm:"column:voter_id"`
	Candidate      string `gorm:"column:candidate"`
	CreatedAtNanos int64  `gorm:"column:created_at"`
}

func (voteModel) TableName() string {
	return "votes"
}

func voteModelFromEntity(vote domain.Vote) voteModel {
	return voteModel{
		ID:             vote.ID,
		VoterID:        vote.VoterID,
		Candidate:      vote.Candidate,
		CreatedAtNanos: int64(vote.CreatedAt),
	}
}

func (m voteModel) toEntity() domain.Vote {
	return domain.Vote{
		ID:        m.ID,
		VoterID:   m.VoterID,
		Candidate: m.Candidate,
		CreatedAt: uint64(m.CreatedAtNanos),
	}
}
