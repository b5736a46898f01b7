package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vncsmyrnk/ledger/internal/core/domain"
	"github.com/vncsmyrnk/ledger/internal/core/ports"
)

// VoteRepository keeps the ledger in process memory. Votes are kept in write
// order; byID and byVoter index into that slice.
type VoteRepository struct {
	mu sync.RWMutex

	votes   []domain.Vote
	byID    map[string]int
	byVoter map[string]string
}

var _ ports.VoteRepository = (*VoteRepository)(nil)

func NewVoteRepository() *VoteRepository {
	return &VoteRepository{
		byID:    make(map[string]int),
		byVoter: make(map[string]string),
	}
}

func (r *VoteRepository) Insert(_ context.Context, vote domain.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byVoter[vote.VoterID]; ok {
		return domain.ErrDuplicateVoter
	}
	if _, ok := r.byID[vote.ID]; ok {
		return domain.ErrVoteIDConflict
	}

	r.byID[vote.ID] = len(r.votes)
	r.byVoter[vote.VoterID] = vote.ID
	r.votes = append(r.votes, vote)
	return nil
}

func (r *VoteRepository) GetByID(_ context.Context, id string) (domain.Vote, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return domain.Vote{}, false, nil
	}
	return r.votes[i], true, nil
}

func (r *VoteRepository) HasVoted(_ context.Context, voterID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byVoter[voterID]
	return ok, nil
}

func (r *VoteRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.votes)), nil
}

func (r *VoteRepository) CountByCandidate(_ context.Context, candidate string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, vote := range r.votes {
		if vote.Candidate == candidate {
			count++
		}
	}
	return count, nil
}

func (r *VoteRepository) Candidates(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	items := make([]string, 0)
	for _, vote := range r.votes {
		if _, ok := seen[vote.Candidate]; ok {
			continue
		}
		seen[vote.Candidate] = struct{}{}
		items = append(items, vote.Candidate)
	}
	sort.Strings(items)
	return items, nil
}

func (r *VoteRepository) Voters(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]string, 0, len(r.byVoter))
	for voterID := range r.byVoter {
		items = append(items, voterID)
	}
	sort.Strings(items)
	return items, nil
}

func (r *VoteRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.votes = nil
	r.byID = make(map[string]int)
	r.byVoter = make(map[string]string)
	return nil
}
