// Package scanner ingests contract event logs into the ledger in bounded
// block ranges, advancing a durable checkpoint after each committed range.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"openfund/internal/ethereum"
	"openfund/internal/ledger"
	"openfund/internal/metrics"

	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

type Config struct {
	// StartBlock is where a scanner without a checkpoint begins. Zero scans
	// from genesis.
	StartBlock uint64
	// ChunkSize bounds the block range of one log query.
	ChunkSize    uint64
	PollInterval time.Duration
	Backoff      time.Duration
}

type Scanner struct {
	logs       *zap.SugaredLogger
	chain      ChainReader
	checkpoint CheckpointStore
	writer     LedgerWriter
	metrics    *metrics.Metrics
	cfg        Config
}

func New(logger *zap.SugaredLogger, chain ChainReader, checkpoint CheckpointStore, writer LedgerWriter, m *metrics.Metrics, cfg Config) *Scanner {
	return &Scanner{
		logs:       logger,
		chain:      chain,
		checkpoint: checkpoint,
		writer:     writer,
		metrics:    m,
		cfg:        cfg,
	}
}

// Run polls the chain until ctx is cancelled. Failed cycles are retried after
// the backoff; the loop itself never gives up.
func (s *Scanner) Run(ctx context.Context) {
	s.logs.Infow("event scanner started",
		"chunk_size", s.cfg.ChunkSize,
		"poll_interval", s.cfg.PollInterval,
		"start_block", s.cfg.StartBlock)

	for {
		advanced, err := s.ScanOnce(ctx)

		var wait time.Duration
		switch {
		case err != nil:
			s.metrics.ScanErrors.Inc()
			s.logs.Errorw("scan cycle failed", "error", err, "backoff", s.cfg.Backoff)
			wait = s.cfg.Backoff
		case !advanced:
			wait = s.cfg.PollInterval
		}

		select {
		case <-ctx.Done():
			s.logs.Infow("event scanner stopped")
			return
		case <-time.After(wait):
		}
	}
}

// ScanOnce ingests every block between the checkpoint and the current head.
// It reports whether the checkpoint moved.
func (s *Scanner) ScanOnce(ctx context.Context) (bool, error) {
	stored, err := s.checkpoint.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load checkpoint: %w", err)
	}

	cursor := stored
	if stored == 0 && s.cfg.StartBlock > 0 {
		cursor = s.cfg.StartBlock - 1
	}

	head, err := s.chain.LatestBlock(ctx)
	if err != nil {
		return false, fmt.Errorf("get chain head: %w", err)
	}
	s.metrics.ChainHead.Set(float64(head))

	if cursor >= head {
		return false, nil
	}

	// a started chunk is finished even if shutdown is requested meanwhile
	chunkCtx := context.WithoutCancel(ctx)

	advanced := false
	for from := cursor + 1; from <= head; {
		if ctx.Err() != nil {
			return advanced, nil
		}

		to := min(from+s.cfg.ChunkSize-1, head)

		if err := s.processChunk(chunkCtx, from, to); err != nil {
			return advanced, fmt.Errorf("process blocks [%d, %d]: %w", from, to, err)
		}

		if err := s.checkpoint.Advance(chunkCtx, stored, to); err != nil {
			return advanced, fmt.Errorf("advance checkpoint to %d: %w", to, err)
		}

		stored = to
		advanced = true
		s.metrics.ChunksCommitted.Inc()
		s.metrics.Checkpoint.Set(float64(to))
		s.logs.Infow("blocks committed", "from", from, "to", to, "head", head)

		from = to + 1
	}

	return advanced, nil
}

// processChunk writes every event in [from, to]. Undecodable logs are skipped
// for good; a failed write does not stop its siblings but fails the chunk so
// the checkpoint stays put and the range is retried.
func (s *Scanner) processChunk(ctx context.Context, from, to uint64) error {
	logs, err := s.chain.FetchLogs(ctx, from, to)
	if err != nil {
		return fmt.Errorf("fetch logs: %w", err)
	}
	if len(logs) == 0 {
		return nil
	}

	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].BlockNumber != logs[j].BlockNumber {
			return logs[i].BlockNumber < logs[j].BlockNumber
		}
		return logs[i].Index < logs[j].Index
	})

	events, blocks := s.decode(logs)
	if len(events) == 0 {
		return nil
	}

	times, err := s.chain.BlockTimes(ctx, blocks)
	if err != nil {
		return fmt.Errorf("resolve block times: %w", err)
	}

	var writeErr error
	for _, event := range events {
		event.BlockTime = times[event.BlockNumber]

		err := s.writer.Write(ctx, event)
		if err == nil {
			continue
		}

		if errors.Is(err, ledger.ErrInvalidEvent) {
			s.metrics.EventsSkipped.WithLabelValues("invalid").Inc()
			s.logs.Errorw("skipping invalid event",
				"error", err,
				"tx_hash", event.TxHash.Hex(),
				"block", event.BlockNumber)
			continue
		}

		s.logs.Errorw("failed to write ledger event",
			"error", err,
			"event", event.Name,
			"tx_hash", event.TxHash.Hex(),
			"block", event.BlockNumber)
		writeErr = errors.Join(writeErr, err)
	}

	return writeErr
}

func (s *Scanner) decode(logs []types.Log) ([]ethereum.ContractEvent, []uint64) {
	events := make([]ethereum.ContractEvent, 0, len(logs))
	blocks := make([]uint64, 0)
	seen := make(map[uint64]struct{})

	for _, lg := range logs {
		if lg.Removed {
			continue
		}

		event, err := s.chain.ParseLog(lg)
		if err != nil {
			s.metrics.EventsSkipped.WithLabelValues("decode").Inc()
			s.logs.Errorw("skipping undecodable log",
				"error", err,
				"tx_hash", lg.TxHash.Hex(),
				"block", lg.BlockNumber,
				"log_index", lg.Index)
			continue
		}

		events = append(events, event)
		if _, ok := seen[event.BlockNumber]; !ok {
			seen[event.BlockNumber] = struct{}{}
			blocks = append(blocks, event.BlockNumber)
		}
	}

	return events, blocks
}
