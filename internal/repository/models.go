package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

type FundingStatus string

const (
	FundingNotListed FundingStatus = "not listed"
	FundingCreated   FundingStatus = "created"
	FundingRaising   FundingStatus = "raising"
	FundingVoting    FundingStatus = "voting"
	FundingFailed    FundingStatus = "failed"
	FundingCompleted FundingStatus = "completed"
)

// ActiveFundingStatuses are the statuses the reconciler keeps in sync with the chain.
var ActiveFundingStatuses = []FundingStatus{FundingCreated, FundingRaising, FundingVoting}

var fundingRank = map[FundingStatus]int{
	FundingCreated:   0,
	FundingRaising:   1,
	FundingVoting:    2,
	FundingFailed:    3,
	FundingCompleted: 4,
}

func (s FundingStatus) IsTerminal() bool {
	return s == FundingFailed || s == FundingCompleted
}

// PrecedingStatuses returns the stored statuses that may legally move to next:
// every non-terminal status ranked at or below next, and next itself.
func PrecedingStatuses(next FundingStatus) []FundingStatus {
	nextRank, ok := fundingRank[next]
	if !ok {
		return nil
	}

	out := make([]FundingStatus, 0, len(fundingRank))
	for _, s := range []FundingStatus{FundingCreated, FundingRaising, FundingVoting} {
		if fundingRank[s] <= nextRank && s != next {
			out = append(out, s)
		}
	}
	return append(out, next)
}

type ListingStatus string

const (
	ListingPending  ListingStatus = "pending"
	ListingAccepted ListingStatus = "accepted"
	ListingRejected ListingStatus = "rejected"
)

type TransactionType string

const (
	TransactionInvestment TransactionType = "investment"
	TransactionVote       TransactionType = "vote"
	TransactionRefund     TransactionType = "get_refund"
)

type Project struct {
	ID                 int64           `gorm:"primaryKey"`
	RaiserID           string          `gorm:"size:36;index"`
	FundingAddress     string          `gorm:"size:42;not null"`
	TokenAddress       string          `gorm:"size:42;not null"`
	TokenPrice         decimal.Decimal `gorm:"type:numeric(30,6);not null"` // stablecoin units per token
	TokenToSell        decimal.Decimal `gorm:"type:numeric(78,0);not null"`
	Decimal            uint8           `gorm:"not null;default:18"`
	InvestmentEndTime  int64           `gorm:"not null"` // unix seconds
	TokenSold          decimal.Decimal `gorm:"type:numeric(78,0);not null;default:0"`
	FundRaised         decimal.Decimal `gorm:"type:numeric(30,6);not null;default:0"`
	FundingStatus      FundingStatus   `gorm:"size:16;not null;default:'not listed';index"`
	VoteForRefund      decimal.Decimal `gorm:"type:numeric(30,6);not null;default:0"`
	VoteForRefundCount int64           `gorm:"not null;default:0"`
	FundClaimed        bool            `gorm:"not null;default:false"`
	ListingStatus      ListingStatus   `gorm:"size:16;not null;default:'pending';index"`
	Hidden             bool            `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Project) TableName() string { return "project" }

// Transaction is an immutable ledger row derived from a contract event.
type Transaction struct {
	ID              uint                `gorm:"primaryKey"`
	ProjectID       int64               `gorm:"not null;index"`
	InvestorAddress string              `gorm:"size:42;not null;index"` // lowercase
	Amount          decimal.NullDecimal `gorm:"type:numeric(30,6)"`     // null for votes
	TokenReceived   decimal.NullDecimal `gorm:"type:numeric(78,0)"`
	TransactionHash string              `gorm:"size:66;not null;uniqueIndex:idx_transaction_hash_type,priority:1"`
	Type            TransactionType     `gorm:"size:16;not null;uniqueIndex:idx_transaction_hash_type,priority:2"`
	BlockNumber     uint64              `gorm:"not null;index"`
	LogIndex        uint                `gorm:"not null"`
	TransactionTime time.Time           `gorm:"not null"` // block time
}

func (Transaction) TableName() string { return "transaction" }

type Investor struct {
	ID            uint   `gorm:"primaryKey"`
	WalletAddress string `gorm:"size:42;uniqueIndex;not null"` // lowercase
	Name          string `gorm:"size:100"`
	Email         string `gorm:"size:255"`
	Bio           string `gorm:"type:text"`
	AvatarURL     string `gorm:"size:512"`
	CreatedAt     time.Time
}

func (Investor) TableName() string { return "investor" }

type Raiser struct {
	ID            string `gorm:"primaryKey;autoIncrement:false"`
	FirstName     string `gorm:"size:100;not null"`
	LastName      string `gorm:"size:100;not null"`
	Email         string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash  string `gorm:"not null"`
	WalletAddress string `gorm:"size:42;uniqueIndex;not null"` // lowercase
	CreatedAt     time.Time
}

func (Raiser) TableName() string { return "raiser" }

// ChainState is the reconciled on-chain projection of a project.
type ChainState struct {
	TokenSold          decimal.Decimal
	FundRaised         decimal.Decimal
	FundingStatus      FundingStatus
	VoteForRefund      decimal.Decimal
	VoteForRefundCount int64
	FundClaimed        bool
}
