package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vncsmyrnk/ledger/internal/core/domain"
	"github.com/vncsmyrnk/ledger/internal/core/ports"
)

type tallyService struct {
	ledger ports.LedgerService
}

func NewTallyService(ledger ports.LedgerService) ports.TallyService {
	return &tallyService{
		ledger: ledger,
	}
}

// Tally counts every candidate concurrently and reports each share of the
// total. Results are ordered by vote count, highest first, then by name.
func (s *tallyService) Tally(ctx context.Context) ([]domain.CandidateTally, error) {
	candidates, err := s.ledger.ListCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	var wg sync.WaitGroup
	counts := make([]int64, len(candidates))
	errChan := make(chan error, len(candidates))

	for i, candidate := range candidates {
		wg.Add(1)
		go func(i int, candidate string) {
			defer wg.Done()
			count, err := s.ledger.CountVotesForCandidate(ctx, candidate)
			if err != nil {
				errChan <- fmt.Errorf("failed to count votes for %q: %w", candidate, err)
				return
			}
			counts[i] = count
		}(i, candidate)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	var total int64
	for _, count := range counts {
		total += count
	}

	result := make([]domain.CandidateTally, 0, len(candidates))
	for i, candidate := range candidates {
		percentage := 0.0
		if total > 0 {
			percentage = (float64(counts[i]) / float64(total)) * 100
		}
		result = append(result, domain.CandidateTally{
			Candidate:  candidate,
			VoteCount:  counts[i],
			Percentage: percentage,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].VoteCount != result[j].VoteCount {
			return result[i].VoteCount > result[j].VoteCount
		}
		return result[i].Candidate < result[j].Candidate
	})

	return result, nil
}
