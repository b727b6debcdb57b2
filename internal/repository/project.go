package repository

import (
	"context"
	"fmt"
)

// GetActiveProjects returns the accepted projects whose funding is still open on chain.
func (r *Repository) GetActiveProjects(ctx context.Context) ([]Project, error) {
	projects := []Project{}
	err := r.db.FindWhere(ctx, &projects,
		"listing_status = ? AND funding_status IN ?",
		ListingAccepted, ActiveFundingStatuses)
	if err != nil {
		return nil, fmt.Errorf("get active projects: %w", err)
	}
	return projects, nil
}

// ApplyChainState overwrites the mutable projection of a project. The write is
// skipped, and false returned, when the stored status is already past the
// given one, so a stale read never regresses a project.
func (r *Repository) ApplyChainState(ctx context.Context, projectID int64, state ChainState) (bool, error) {
	values := map[string]any{
		"token_sold":            state.TokenSold,
		"fund_raised":           state.FundRaised,
		"funding_status":        state.FundingStatus,
		"vote_for_refund":       state.VoteForRefund,
		"vote_for_refund_count": state.VoteForRefundCount,
		"fund_claimed":          state.FundClaimed,
	}

	rows, err := r.db.UpdateWhere(ctx, &Project{}, values,
		"id = ? AND funding_status IN ?",
		projectID, PrecedingStatuses(state.FundingStatus))
	if err != nil {
		return false, fmt.Errorf("apply chain state to project %d: %w", projectID, err)
	}

	return rows > 0, nil
}

// GetProjectsAwaitingListing returns accepted projects not yet created on chain.
func (r *Repository) GetProjectsAwaitingListing(ctx context.Context) ([]Project, error) {
	projects := []Project{}
	err := r.db.FindWhere(ctx, &projects,
		"listing_status = ? AND funding_status = ?",
		ListingAccepted, FundingNotListed)
	if err != nil {
		return nil, fmt.Errorf("get projects awaiting listing: %w", err)
	}
	return projects, nil
}

func (r *Repository) MarkProjectCreated(ctx context.Context, projectID int64) error {
	rows, err := r.db.UpdateWhere(ctx, &Project{},
		map[string]any{"funding_status": FundingCreated},
		"id = ? AND funding_status = ?",
		projectID, FundingNotListed)
	if err != nil {
		return fmt.Errorf("mark project %d created: %w", projectID, err)
	}
	if rows == 0 {
		return fmt.Errorf("mark project %d created: %w", projectID, ErrProjectNotFound)
	}
	return nil
}
