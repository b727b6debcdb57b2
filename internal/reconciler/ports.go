package reconciler

import (
	"context"

	"openfund/internal/ethereum"
	"openfund/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ProjectStore . ProjectStore
type ProjectStore interface {
	GetActiveProjects(ctx context.Context) ([]repository.Project, error)
	ApplyChainState(ctx context.Context, projectID int64, state repository.ChainState) (bool, error)
}

//counterfeiter:generate -o fake -fake-name ChainReader . ChainReader
type ChainReader interface {
	ProjectDetails(ctx context.Context, projectID int64) (ethereum.ProjectDetails, error)
}
