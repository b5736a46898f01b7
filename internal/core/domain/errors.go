package domain

import "errors"

var (
	ErrInvalidInput   = errors.New("voter id and candidate are required")
	ErrDuplicateVoter = errors.New("voter has already voted")
	ErrInfrastructure = errors.New("ledger infrastructure failure")
	ErrVoteIDConflict = errors.New("vote id already exists")
)
