package publisher

import (
	"context"

	"openfund/internal/ethereum"
	"openfund/internal/repository"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ProjectStore . ProjectStore
type ProjectStore interface {
	GetProjectsAwaitingListing(ctx context.Context) ([]repository.Project, error)
	MarkProjectCreated(ctx context.Context, projectID int64) error
}

//counterfeiter:generate -o fake -fake-name ProjectCreator . ProjectCreator
type ProjectCreator interface {
	CreateProject(ctx context.Context, params ethereum.CreateProjectParams) (common.Hash, error)
}

//counterfeiter:generate -o fake -fake-name ChainReader . ChainReader
type ChainReader interface {
	ProjectDetails(ctx context.Context, projectID int64) (ethereum.ProjectDetails, error)
}
