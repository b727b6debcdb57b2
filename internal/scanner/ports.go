package scanner

import (
	"context"
	"time"

	"openfund/internal/ethereum"

	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainReader . ChainReader
type ChainReader interface {
	LatestBlock(ctx context.Context) (uint64, error)
	FetchLogs(ctx context.Context, from, to uint64) ([]types.Log, error)
	ParseLog(lg types.Log) (ethereum.ContractEvent, error)
	BlockTimes(ctx context.Context, blocks []uint64) (map[uint64]time.Time, error)
}

//counterfeiter:generate -o fake -fake-name CheckpointStore . CheckpointStore
type CheckpointStore interface {
	Load(ctx context.Context) (uint64, error)
	Advance(ctx context.Context, from, to uint64) error
}

//counterfeiter:generate -o fake -fake-name LedgerWriter . LedgerWriter
type LedgerWriter interface {
	Write(ctx context.Context, event ethereum.ContractEvent) error
}
