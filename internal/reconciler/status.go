package reconciler

import (
	"errors"
	"fmt"

	"openfund/internal/repository"
)

var ErrUnknownStatus = errors.New("unknown on-chain project status")

// On-chain ProjectStatus enum.
const (
	StatusInitialCreated uint8 = iota
	StatusRaisingPeriod
	StatusVotingPeriod
	StatusFundingFailed
	StatusFundingCompleted
)

// MapStatus translates the contract status enum to the stored funding status.
// Values outside the enum are an error, never a default.
func MapStatus(status uint8) (repository.FundingStatus, error) {
	switch status {
	case StatusInitialCreated:
		return repository.FundingCreated, nil
	case StatusRaisingPeriod:
		return repository.FundingRaising, nil
	case StatusVotingPeriod:
		return repository.FundingVoting, nil
	case StatusFundingFailed:
		return repository.FundingFailed, nil
	case StatusFundingCompleted:
		return repository.FundingCompleted, nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownStatus, status)
	}
}
