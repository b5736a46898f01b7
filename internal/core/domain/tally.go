package domain

type CandidateTally struct {
	Candidate  string  `json:"candidate"`
	VoteCount  int64   `json:"vote_count"`
	Percentage float64 `json:"percentage"`
}
