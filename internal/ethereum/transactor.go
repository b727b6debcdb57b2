package ethereum

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// ProjectCreator submits createProject transactions signed by the operator key.
type ProjectCreator struct {
	backend  TransactBackend
	contract *bind.BoundContract
	opts     *bind.TransactOpts
}

func NewProjectCreator(ctx context.Context, backend TransactBackend, contract *Contract, privateKeyHex string) (*ProjectCreator, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse operator key: %w", err)
	}

	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("create transactor: %w", err)
	}

	return &ProjectCreator{
		backend:  backend,
		contract: bind.NewBoundContract(contract.Address(), contract.ABI(), backend, backend, backend),
		opts:     opts,
	}, nil
}

// CreateProject sends the transaction and blocks until it is mined.
func (p *ProjectCreator) CreateProject(ctx context.Context, params CreateProjectParams) (common.Hash, error) {
	opts := *p.opts
	opts.Context = ctx

	tx, err := p.contract.Transact(&opts, methodCreateProject,
		params.ProjectID,
		params.Raiser,
		params.TokenAddress,
		params.TokensToSell,
		params.TokenPrice,
		params.EndFundingTime,
		params.Decimals,
	)
	if err != nil {
		return common.Hash{}, fmt.Errorf("send %s(%s): %w", methodCreateProject, params.ProjectID, err)
	}

	receipt, err := bind.WaitMined(ctx, p.backend, tx)
	if err != nil {
		return tx.Hash(), fmt.Errorf("wait for %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return tx.Hash(), fmt.Errorf("%s reverted in block %s", tx.Hash().Hex(), receipt.BlockNumber)
	}

	return tx.Hash(), nil
}
