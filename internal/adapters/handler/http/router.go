package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(voteHandler *VoteHandler, tallyHandler *TallyHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("welcome"))
		})

		r.Route("/votes", func(r chi.Router) {
			r.Post("/", voteHandler.CastVote)
			r.Delete("/", voteHandler.ResetVotes)
			r.Get("/total", voteHandler.TotalVotes)
			r.Get("/{id}", voteHandler.GetVote)
		})

		r.Route("/voters", func(r chi.Router) {
			r.Get("/", voteHandler.ListVoters)
			r.Get("/{voterID}", voteHandler.HasVoted)
		})

		r.Route("/candidates", func(r chi.Router) {
			r.Get("/", voteHandler.ListCandidates)
			r.Get("/{candidate}/votes", voteHandler.CountVotesForCandidate)
		})

		r.Get("/tally", tallyHandler.Tally)
	})

	return r
}
