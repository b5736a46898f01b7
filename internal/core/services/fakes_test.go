package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vncsmyrnk/ledger/internal/core/domain"
	"github.com/vncsmyrnk/ledger/internal/core/ports"
)

type fakeClock struct {
	mu  sync.Mutex
	now uint64
	err error
}

func (c *fakeClock) Now() (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return 0, c.err
	}
	c.now++
	return c.now, nil
}

type sequentialIDs struct {
	mu   sync.Mutex
	next int
	err  error
}

func (g *sequentialIDs) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return "", g.err
	}
	g.next++
	return fmt.Sprintf("vote-%d", g.next), nil
}

var errStoreDown = errors.New("store down")

// failingRepository wraps a real store and fails the operations named in fail.
type failingRepository struct {
	ports.VoteRepository
	fail map[string]bool
}

func (r *failingRepository) Insert(ctx context.Context, vote domain.Vote) error {
	if r.fail["insert"] {
		return errStoreDown
	}
	return r.VoteRepository.Insert(ctx, vote)
}

func (r *failingRepository) HasVoted(ctx context.Context, voterID string) (bool, error) {
	if r.fail["has_voted"] {
		return false, errStoreDown
	}
	return r.VoteRepository.HasVoted(ctx, voterID)
}

func (r *failingRepository) Count(ctx context.Context) (int64, error) {
	if r.fail["count"] {
		return 0, errStoreDown
	}
	return r.VoteRepository.Count(ctx)
}

func (r *failingRepository) CountByCandidate(ctx context.Context, candidate string) (int64, error) {
	if r.fail["count_by_candidate"] {
		return 0, errStoreDown
	}
	return r.VoteRepository.CountByCandidate(ctx, candidate)
}

// racingRepository reports that nobody has voted yet, forcing the insert to be
// the step that detects the duplicate.
type racingRepository struct {
	ports.VoteRepository
}

func (r *racingRepository) HasVoted(context.Context, string) (bool, error) {
	return false, nil
}
