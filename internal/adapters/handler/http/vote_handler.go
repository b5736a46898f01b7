package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/ledger/internal/core/domain"
	"github.com/vncsmyrnk/ledger/internal/core/ports"
)

type VoteHandler struct {
	service ports.LedgerService
}

func NewVoteHandler(service ports.LedgerService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type castVoteRequest struct {
	VoterID   string `json:"voter_id"`
	Candidate string `json:"candidate"`
}

// CastVote godoc
// @Summary      Casts a vote
// @Description  Records one vote for the voter. A voter can only vote once until the ledger is reset.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Failure      409
// @Router       /votes [post]
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req castVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	vote, err := h.service.CastVote(r.Context(), req.VoterID, req.Candidate)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, vote)
}

// GetVote godoc
// @Summary      Gets a vote
// @Description  Returns the vote with the given id.
// @Tags         votes
// @Produce      json
// @Param        id   path      string  true  "Vote ID"
// @Success      200
// @Failure      404
// @Router       /votes/{id} [get]
func (h *VoteHandler) GetVote(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		http.Error(w, "invalid vote id", http.StatusBadRequest)
		return
	}

	vote, found, err := h.service.GetVoteByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !found {
		http.Error(w, "vote not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, vote)
}

// TotalVotes godoc
// @Summary      Total votes
// @Description  Number of votes currently in the ledger.
// @Tags         votes
// @Produce      json
// @Success      200
// @Router       /votes/total [get]
func (h *VoteHandler) TotalVotes(w http.ResponseWriter, r *http.Request) {
	total, err := h.service.TotalVotes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"total": total})
}

// ResetVotes godoc
// @Summary      Resets the ledger
// @Description  Removes every vote. Voters who already voted may vote again afterwards.
// @Tags         votes
// @Success      204
// @Router       /votes [delete]
func (h *VoteHandler) ResetVotes(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ResetVotes(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HasVoted godoc
// @Summary      Checks a voter
// @Description  Reports whether the voter already has a vote in the ledger.
// @Tags         voters
// @Produce      json
// @Param        voterID   path      string  true  "Voter ID"
// @Success      200
// @Router       /voters/{voterID} [get]
func (h *VoteHandler) HasVoted(w http.ResponseWriter, r *http.Request) {
	voterID, err := pathParam(r, "voterID")
	if err != nil {
		http.Error(w, "invalid voter id", http.StatusBadRequest)
		return
	}

	hasVoted, err := h.service.HasVoted(r.Context(), voterID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"voter_id": voterID, "has_voted": hasVoted})
}

// ListVoters godoc
// @Summary      Lists voters
// @Description  Every voter with a vote in the ledger.
// @Tags         voters
// @Produce      json
// @Success      200
// @Router       /voters [get]
func (h *VoteHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	voters, err := h.service.ListVoters(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, voters)
}

// ListCandidates godoc
// @Summary      Lists candidates
// @Description  Every candidate that received at least one vote.
// @Tags         candidates
// @Produce      json
// @Success      200
// @Router       /candidates [get]
func (h *VoteHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.service.ListCandidates(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, candidates)
}

// CountVotesForCandidate godoc
// @Summary      Votes for a candidate
// @Description  Number of votes for the candidate. Unknown candidates have zero votes.
// @Tags         candidates
// @Produce      json
// @Param        candidate   path      string  true  "Candidate"
// @Success      200
// @Router       /candidates/{candidate}/votes [get]
func (h *VoteHandler) CountVotesForCandidate(w http.ResponseWriter, r *http.Request) {
	candidate, err := pathParam(r, "candidate")
	if err != nil {
		http.Error(w, "invalid candidate", http.StatusBadRequest)
		return
	}

	count, err := h.service.CountVotesForCandidate(r.Context(), candidate)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"candidate": candidate, "votes": count})
}

// pathParam returns the decoded URL parameter. chi matches against RawPath
// when the request has one (an escaped "/" for instance), leaving the value
// escaped; otherwise the value was already decoded from Path.
func pathParam(r *http.Request, key string) (string, error) {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value, nil
	}
	return url.PathUnescape(value)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrDuplicateVoter):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, domain.ErrInfrastructure.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
