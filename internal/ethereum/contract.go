package ethereum

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	ErrUnknownEvent = errors.New("unknown event signature")
	ErrMalformedLog = errors.New("malformed log")
)

const openFundABI = `[
	{"anonymous":false,"name":"InvestmentMade","type":"event","inputs":[
		{"indexed":true,"name":"projectId","type":"uint256"},
		{"indexed":true,"name":"investor","type":"address"},
		{"indexed":false,"name":"amount","type":"uint256"},
		{"indexed":false,"name":"tokensToReceive","type":"uint256"}]},
	{"anonymous":false,"name":"VoteCast","type":"event","inputs":[
		{"indexed":true,"name":"projectId","type":"uint256"},
		{"indexed":true,"name":"voter","type":"address"}]},
	{"anonymous":false,"name":"Refunded","type":"event","inputs":[
		{"indexed":true,"name":"projectId","type":"uint256"},
		{"indexed":true,"name":"investor","type":"address"},
		{"indexed":false,"name":"amount","type":"uint256"}]},
	{"name":"getProjectDetails","type":"function","stateMutability":"view",
		"inputs":[{"name":"_projectId","type":"uint256"}],
		"outputs":[
			{"name":"raiser","type":"address"},
			{"name":"tokenAddress","type":"address"},
			{"name":"tokensToSell","type":"uint256"},
			{"name":"tokensSold","type":"uint256"},
			{"name":"tokenPrice","type":"uint256"},
			{"name":"endFundingTime","type":"uint256"},
			{"name":"fundsRaised","type":"uint256"},
			{"name":"status","type":"uint8"},
			{"name":"investorsCount","type":"uint256"},
			{"name":"votersForRefundCount","type":"uint256"},
			{"name":"voteForRefund","type":"uint256"},
			{"name":"fundsClaimed","type":"bool"}]},
	{"name":"createProject","type":"function","stateMutability":"nonpayable",
		"inputs":[
			{"name":"_projectId","type":"uint256"},
			{"name":"_raiser","type":"address"},
			{"name":"_tokenAddress","type":"address"},
			{"name":"_tokensToSell","type":"uint256"},
			{"name":"_tokenPrice","type":"uint256"},
			{"name":"_endFundingTime","type":"uint256"},
			{"name":"_decimal","type":"uint8"}],
		"outputs":[]}
]`

const (
	methodProjectDetails = "getProjectDetails"
	methodCreateProject  = "createProject"
)

// Contract binds the OpenFund ABI to a deployed address.
type Contract struct {
	address common.Address
	abi     abi.ABI
}

func NewContract(address string) (*Contract, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid contract address %q", address)
	}

	parsed, err := abi.JSON(strings.NewReader(openFundABI))
	if err != nil {
		return nil, fmt.Errorf("parse contract abi: %w", err)
	}

	return &Contract{
		address: common.HexToAddress(address),
		abi:     parsed,
	}, nil
}

func (c *Contract) Address() common.Address {
	return c.address
}

func (c *Contract) ABI() abi.ABI {
	return c.abi
}

// EventTopics returns the topic0 hashes of the ledger events, in one slice so
// a single log query covers all of them.
func (c *Contract) EventTopics() []common.Hash {
	return []common.Hash{
		c.abi.Events[EventInvestmentMade].ID,
		c.abi.Events[EventVoteCast].ID,
		c.abi.Events[EventRefunded].ID,
	}
}

// ParseLog decodes a raw log into a ContractEvent. BlockTime is left for the
// caller to fill in.
func (c *Contract) ParseLog(lg types.Log) (ContractEvent, error) {
	if len(lg.Topics) == 0 {
		return ContractEvent{}, fmt.Errorf("%w: no topics", ErrMalformedLog)
	}

	event, err := c.abi.EventByID(lg.Topics[0])
	if err != nil {
		return ContractEvent{}, fmt.Errorf("%w: %s", ErrUnknownEvent, lg.Topics[0].Hex())
	}

	// every ledger event indexes projectId and an account
	if len(lg.Topics) < 3 {
		return ContractEvent{}, fmt.Errorf("%w: %s has %d topics", ErrMalformedLog, event.Name, len(lg.Topics))
	}

	out := ContractEvent{
		Name:        event.Name,
		ProjectID:   new(big.Int).SetBytes(lg.Topics[1].Bytes()),
		Account:     common.BytesToAddress(lg.Topics[2].Bytes()),
		TxHash:      lg.TxHash,
		BlockNumber: lg.BlockNumber,
		LogIndex:    lg.Index,
	}

	switch event.Name {
	case EventInvestmentMade:
		var data struct {
			Amount          *big.Int
			TokensToReceive *big.Int
		}
		if err := c.abi.UnpackIntoInterface(&data, event.Name, lg.Data); err != nil {
			return ContractEvent{}, fmt.Errorf("%w: unpack %s: %w", ErrMalformedLog, event.Name, err)
		}
		out.Amount = data.Amount
		out.TokensToReceive = data.TokensToReceive
	case EventRefunded:
		var data struct {
			Amount *big.Int
		}
		if err := c.abi.UnpackIntoInterface(&data, event.Name, lg.Data); err != nil {
			return ContractEvent{}, fmt.Errorf("%w: unpack %s: %w", ErrMalformedLog, event.Name, err)
		}
		out.Amount = data.Amount
	case EventVoteCast:
	default:
		return ContractEvent{}, fmt.Errorf("%w: %s", ErrUnknownEvent, event.Name)
	}

	return out, nil
}
