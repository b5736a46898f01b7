package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/ledger/internal/core/domain"
)

func TestInsertAndRead(t *testing.T) {
	ctx := context.Background()
	repo := NewVoteRepository()

	vote := domain.Vote{ID: "v1", VoterID: "alice", Candidate: "X", CreatedAt: 10}
	require.NoError(t, repo.Insert(ctx, vote))

	got, found, err := repo.GetByID(ctx, "v1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, vote, got)

	_, found, err = repo.GetByID(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	voted, err := repo.HasVoted(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, voted)

	voted, err = repo.HasVoted(ctx, "Alice")
	require.NoError(t, err)
	assert.False(t, voted, "voter ids are case-sensitive")
}

func TestInsertRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewVoteRepository()
	require.NoError(t, repo.Insert(ctx, domain.Vote{ID: "v1", VoterID: "alice", Candidate: "X"}))

	err := repo.Insert(ctx, domain.Vote{ID: "v2", VoterID: "alice", Candidate: "Y"})
	assert.ErrorIs(t, err, domain.ErrDuplicateVoter)

	err = repo.Insert(ctx, domain.Vote{ID: "v1", VoterID: "bob", Candidate: "Y"})
	assert.ErrorIs(t, err, domain.ErrVoteIDConflict)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAggregates(t *testing.T) {
	ctx := context.Background()
	repo := NewVoteRepository()
	require.NoError(t, repo.Insert(ctx, domain.Vote{ID: "v1", VoterID: "carol", Candidate: "Y"}))
	require.NoError(t, repo.Insert(ctx, domain.Vote{ID: "v2", VoterID: "alice", Candidate: "X"}))
	require.NoError(t, repo.Insert(ctx, domain.Vote{ID: "v3", VoterID: "bob", Candidate: "X"}))

	count, err := repo.CountByCandidate(ctx, "X")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByCandidate(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, count)

	candidates, err := repo.Candidates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, candidates)

	voters, err := repo.Voters(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, voters)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	repo := NewVoteRepository()
	require.NoError(t, repo.Insert(ctx, domain.Vote{ID: "v1", VoterID: "alice", Candidate: "X"}))

	require.NoError(t, repo.Reset(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	candidates, err := repo.Candidates(ctx)
	require.NoError(t, err)
	assert.Empty(t, candidates)

	require.NoError(t, repo.Insert(ctx, domain.Vote{ID: "v2", VoterID: "alice", Candidate: "Y"}))
}

func TestConcurrentInsertSameVoter(t *testing.T) {
	ctx := context.Background()
	repo := NewVoteRepository()

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.Insert(ctx, domain.Vote{ID: fmt.Sprintf("v%d", i), VoterID: "alice", Candidate: "X"})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, domain.ErrDuplicateVoter)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
