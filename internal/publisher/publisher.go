// Package publisher creates accepted projects on chain.
package publisher

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"openfund/internal/ethereum"
	"openfund/internal/metrics"
	"openfund/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var ErrInvalidProject error = errors.New("project cannot be created on chain")

const jobName = "project_publisher"

type Publisher struct {
	logs     *zap.SugaredLogger
	store    ProjectStore
	creator  ProjectCreator
	chain    ChainReader
	metrics  *metrics.Metrics
	interval time.Duration
}

func New(logger *zap.SugaredLogger, store ProjectStore, creator ProjectCreator, chain ChainReader, m *metrics.Metrics, interval time.Duration) *Publisher {
	return &Publisher{
		logs:     logger,
		store:    store,
		creator:  creator,
		chain:    chain,
		metrics:  m,
		interval: interval,
	}
}

func (p *Publisher) Name() string {
	return jobName
}

func (p *Publisher) Interval() time.Duration {
	return p.interval
}

func (p *Publisher) Execute(ctx context.Context) {
	published, err := p.PublishOnce(ctx)
	if err != nil {
		p.logs.Errorw("publish pass failed", "error", err)
		return
	}
	if published > 0 {
		p.logs.Infow("publish pass completed", "published", published)
	}
}

// PublishOnce creates every accepted, not yet listed project on chain and
// marks it created. Projects are handled one at a time because they share the
// operator account nonce.
func (p *Publisher) PublishOnce(ctx context.Context) (int, error) {
	projects, err := p.store.GetProjectsAwaitingListing(ctx)
	if err != nil {
		return 0, fmt.Errorf("list projects awaiting listing: %w", err)
	}

	published := 0
	for _, project := range projects {
		if ctx.Err() != nil {
			return published, nil
		}

		if err := p.publish(ctx, project); err != nil {
			p.metrics.PublishErrors.Inc()
			p.logs.Errorw("failed to publish project",
				"project_id", project.ID,
				"error", err)
			continue
		}
		published++
	}

	return published, nil
}

func (p *Publisher) publish(ctx context.Context, project repository.Project) error {
	params, err := ToCreateParams(project)
	if err != nil {
		return err
	}

	// a previous pass may have created it without recording that
	details, err := p.chain.ProjectDetails(ctx, project.ID)
	if err != nil {
		return fmt.Errorf("check project on chain: %w", err)
	}
	if details.Raiser != (common.Address{}) {
		if err := p.store.MarkProjectCreated(ctx, project.ID); err != nil {
			return fmt.Errorf("mark existing project created: %w", err)
		}
		p.logs.Warnw("project already on chain, marked created",
			"project_id", project.ID,
			"raiser", details.Raiser.Hex())
		return nil
	}

	txHash, err := p.creator.CreateProject(ctx, params)
	if err != nil {
		return fmt.Errorf("create project on chain: %w", err)
	}

	if err := p.store.MarkProjectCreated(ctx, project.ID); err != nil {
		return fmt.Errorf("mark created after %s: %w", txHash.Hex(), err)
	}

	p.metrics.ProjectsPublished.Inc()
	p.logs.Infow("project created on chain",
		"project_id", project.ID,
		"tx_hash", txHash.Hex())

	return nil
}

// ToCreateParams maps a stored project onto createProject arguments. The token
// price is sent in six-decimal fixed point.
func ToCreateParams(project repository.Project) (ethereum.CreateProjectParams, error) {
	if !common.IsHexAddress(project.FundingAddress) {
		return ethereum.CreateProjectParams{}, fmt.Errorf("%w: funding address %q", ErrInvalidProject, project.FundingAddress)
	}
	if !common.IsHexAddress(project.TokenAddress) {
		return ethereum.CreateProjectParams{}, fmt.Errorf("%w: token address %q", ErrInvalidProject, project.TokenAddress)
	}
	if !project.TokenPrice.IsPositive() || !project.TokenToSell.IsPositive() {
		return ethereum.CreateProjectParams{}, fmt.Errorf("%w: price and supply must be positive", ErrInvalidProject)
	}

	return ethereum.CreateProjectParams{
		ProjectID:      big.NewInt(project.ID),
		Raiser:         common.HexToAddress(project.FundingAddress),
		TokenAddress:   common.HexToAddress(project.TokenAddress),
		TokensToSell:   project.TokenToSell.BigInt(),
		TokenPrice:     ethereum.FromDecimal(project.TokenPrice),
		EndFundingTime: big.NewInt(project.InvestmentEndTime),
		Decimals:       project.Decimal,
	}, nil
}
