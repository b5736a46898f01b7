package domain

// Vote is a single ballot. It is never modified once it has been recorded.
type Vote struct {
	ID        string `json:"id"`
	VoterID   string `json:"voter_id"`
	Candidate string `json:"candidate"`
	CreatedAt uint64 `json:"created_at"`
}
