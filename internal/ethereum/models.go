package ethereum

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

const (
	EventInvestmentMade = "InvestmentMade"
	EventVoteCast       = "VoteCast"
	EventRefunded       = "Refunded"
)

// ContractEvent is a decoded OpenFund log. Amount and TokensToReceive are raw
// on-chain integers and stay nil for events that do not carry them.
type ContractEvent struct {
	Name            string
	ProjectID       *big.Int
	Account         common.Address
	Amount          *big.Int
	TokensToReceive *big.Int
	TxHash          common.Hash
	BlockNumber     uint64
	LogIndex        uint
	BlockTime       time.Time
}

// ProjectDetails mirrors the getProjectDetails view. Field names follow the
// ABI output names so the result can be unpacked directly.
type ProjectDetails struct {
	Raiser               common.Address
	TokenAddress         common.Address
	TokensToSell         *big.Int
	TokensSold           *big.Int
	TokenPrice           *big.Int
	EndFundingTime       *big.Int
	FundsRaised          *big.Int
	Status               uint8
	InvestorsCount       *big.Int
	VotersForRefundCount *big.Int
	VoteForRefund        *big.Int
	FundsClaimed         bool
}

type CreateProjectParams struct {
	ProjectID      *big.Int
	Raiser         common.Address
	TokenAddress   common.Address
	TokensToSell   *big.Int
	TokenPrice     *big.Int
	EndFundingTime *big.Int
	Decimals       uint8
}

type blockTimeResult struct {
	number uint64
	time   time.Time
	err    error
}
