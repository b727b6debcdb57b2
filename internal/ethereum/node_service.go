package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/panjf2000/ants/v2"
)

// HeaderFetchLimit bounds concurrent header requests per BlockTimes call.
const HeaderFetchLimit = 16

// EthService is the read side of the chain: head, logs, block times and
// project views.
type EthService struct {
	client   EthClient
	contract *Contract
}

func NewEthService(ethClient EthClient, contract *Contract) *EthService {
	return &EthService{
		client:   ethClient,
		contract: contract,
	}
}

func (s *EthService) LatestBlock(ctx context.Context) (uint64, error) {
	head, err := s.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("get block number: %w", err)
	}
	return head, nil
}

// FetchLogs returns every ledger event log of the contract in [from, to].
func (s *EthService) FetchLogs(ctx context.Context, from, to uint64) ([]types.Log, error) {
	q := geth.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(to),
		Addresses: []common.Address{s.contract.Address()},
		Topics:    [][]common.Hash{s.contract.EventTopics()},
	}

	logs, err := s.client.FilterLogs(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("filter logs [%d, %d]: %w", from, to, err)
	}
	return logs, nil
}

func (s *EthService) ParseLog(lg types.Log) (ContractEvent, error) {
	return s.contract.ParseLog(lg)
}

// BlockTimes resolves the timestamps of the given blocks with at most
// HeaderFetchLimit requests in flight. Blocks that fail are left out of the
// result and reported in the joined error.
func (s *EthService) BlockTimes(ctx context.Context, blocks []uint64) (map[uint64]time.Time, error) {
	times := make(map[uint64]time.Time, len(blocks))
	if len(blocks) == 0 {
		return times, nil
	}

	pool, err := ants.NewPool(min(len(blocks), HeaderFetchLimit))
	if err != nil {
		return nil, fmt.Errorf("create header fetch pool: %w", err)
	}
	defer pool.Release()

	resultsChan := make(chan blockTimeResult, len(blocks))
	var wg sync.WaitGroup

	for _, number := range blocks {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			header, err := s.client.HeaderByNumber(ctx, new(big.Int).SetUint64(number))
			if err != nil {
				resultsChan <- blockTimeResult{number: number, err: fmt.Errorf("fetching header %d: %w", number, err)}
				return
			}
			resultsChan <- blockTimeResult{number: number, time: time.Unix(int64(header.Time), 0).UTC()}
		})
		if err != nil {
			wg.Done()
			resultsChan <- blockTimeResult{number: number, err: fmt.Errorf("schedule header %d: %w", number, err)}
		}
	}

	wg.Wait()
	close(resultsChan)

	var aggrErr error
	for result := range resultsChan {
		if result.err != nil {
			aggrErr = errors.Join(aggrErr, result.err)
			continue
		}
		times[result.number] = result.time
	}

	return times, aggrErr
}

// ProjectDetails calls the getProjectDetails view for one project.
func (s *EthService) ProjectDetails(ctx context.Context, projectID int64) (ProjectDetails, error) {
	input, err := s.contract.abi.Pack(methodProjectDetails, big.NewInt(projectID))
	if err != nil {
		return ProjectDetails{}, fmt.Errorf("pack %s: %w", methodProjectDetails, err)
	}

	to := s.contract.Address()
	output, err := s.client.CallContract(ctx, geth.CallMsg{To: &to, Data: input}, nil)
	if err != nil {
		return ProjectDetails{}, fmt.Errorf("call %s(%d): %w", methodProjectDetails, projectID, err)
	}

	var details ProjectDetails
	if err := s.contract.abi.UnpackIntoInterface(&details, methodProjectDetails, output); err != nil {
		return ProjectDetails{}, fmt.Errorf("unpack %s(%d): %w", methodProjectDetails, projectID, err)
	}

	return details, nil
}
