// Package service exposes the overwatch node operations on top of the submission engine.
package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/overwatch-node/internal/substrate/chaindata"
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/extrinsic"
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/model"
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/submit"
	"github.com/goodnatureofminers/overwatch-node/pkg/workerpool"
)

// Custom record RPC methods.
const (
	MethodSubnetNodes         = "network_getSubnetNodes"
	MethodSubnetNodesIncluded = "network_getSubnetNodesIncluded"
	MethodRewardsData         = "network_getRewardsData"
)

const defaultWorkerCount = 4

// OverwatchService runs overwatch calls for one signing identity. Submissions are
// serialized so two calls never race for the same nonce.
type OverwatchService struct {
	engine      Submitter
	records     RecordSource
	normalizer  *chaindata.Normalizer
	keypair     submit.Keypair
	logger      *zap.Logger
	workerCount int

	mu sync.Mutex
}

// NewOverwatchService builds the service. workerCount bounds concurrent record reads.
func NewOverwatchService(
	engine Submitter,
	records RecordSource,
	normalizer *chaindata.Normalizer,
	keypair submit.Keypair,
	logger *zap.Logger,
	workerCount int,
) (*OverwatchService, error) {
	if engine == nil || records == nil || normalizer == nil {
		return nil, errors.New("engine, record source and normalizer are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}
	return &OverwatchService{
		engine:      engine,
		records:     records,
		normalizer:  normalizer,
		keypair:     keypair,
		logger:      logger,
		workerCount: workerCount,
	}, nil
}

// RegisterOverwatchNode registers the signer as an overwatch node.
func (s *OverwatchService) RegisterOverwatchNode(ctx context.Context, params extrinsic.RegisterOverwatchNodeParams) (*model.Receipt, error) {
	call, err := extrinsic.RegisterOverwatchNode(params)
	if err != nil {
		return nil, fmt.Errorf("build register_overwatch_node: %w", err)
	}
	return s.submit(ctx, call)
}

// ActivateOverwatchNode activates a registered overwatch node.
func (s *OverwatchService) ActivateOverwatchNode(ctx context.Context, overwatchNodeID uint32) (*model.Receipt, error) {
	return s.submit(ctx, extrinsic.ActivateOverwatchNode(overwatchNodeID))
}

// AddToOverwatchStake adds amount to the signer's overwatch stake.
func (s *OverwatchService) AddToOverwatchStake(ctx context.Context, amount *big.Int) (*model.Receipt, error) {
	call, err := extrinsic.AddToOverwatchStake(amount)
	if err != nil {
		return nil, fmt.Errorf("build add_to_overwatch_stake: %w", err)
	}
	return s.submit(ctx, call)
}

// RemoveOverwatchStake removes amount from the signer's overwatch stake.
func (s *OverwatchService) RemoveOverwatchStake(ctx context.Context, amount *big.Int) (*model.Receipt, error) {
	call, err := extrinsic.RemoveOverwatchStake(amount)
	if err != nil {
		return nil, fmt.Errorf("build remove_overwatch_stake: %w", err)
	}
	return s.submit(ctx, call)
}

// SubmitBenchmarkWeights submits encrypted benchmark weights.
func (s *OverwatchService) SubmitBenchmarkWeights(ctx context.Context, encryptedWeights []byte) (*model.Receipt, error) {
	return s.submit(ctx, extrinsic.SubmitBenchmarkWeights(encryptedWeights))
}

func (s *OverwatchService) submit(ctx context.Context, call extrinsic.Call) (*model.Receipt, error) {
	if s.keypair == nil {
		return nil, errors.New("no signing keypair configured")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	receipt, err := s.engine.Submit(ctx, call, s.keypair)
	if err != nil {
		return receipt, err
	}
	s.logger.Info("call included",
		zap.String("call", call.Name()),
		zap.String("block_hash", receipt.BlockHash),
		zap.Uint64("block_number", receipt.BlockNumber),
	)
	return receipt, nil
}

// BlockNumber returns the current block height.
func (s *OverwatchService) BlockNumber(ctx context.Context) (uint64, error) {
	return s.engine.BlockNumber(ctx)
}

// SubnetNodes returns the nodes registered on subnetID.
func (s *OverwatchService) SubnetNodes(ctx context.Context, subnetID uint32) ([]model.SubnetNode, error) {
	data, err := s.recordBytes(ctx, MethodSubnetNodes, subnetID)
	if err != nil {
		return nil, err
	}
	return s.normalizer.SubnetNodes(data)
}

// IncludedSubnetNodes returns the nodes of subnetID eligible for consensus inclusion.
func (s *OverwatchService) IncludedSubnetNodes(ctx context.Context, subnetID uint32) ([]model.SubnetNode, error) {
	data, err := s.recordBytes(ctx, MethodSubnetNodesIncluded, subnetID)
	if err != nil {
		return nil, err
	}
	return s.normalizer.SubnetNodes(data)
}

// RewardsData returns the reward scores of subnetID for epoch.
func (s *OverwatchService) RewardsData(ctx context.Context, subnetID, epoch uint32) ([]model.RewardsData, error) {
	data, err := s.recordBytes(ctx, MethodRewardsData, subnetID, epoch)
	if err != nil {
		return nil, err
	}
	return s.normalizer.RewardsDataList(data)
}

// SubnetNodesBySubnet reads the nodes of several subnets concurrently.
func (s *OverwatchService) SubnetNodesBySubnet(ctx context.Context, subnetIDs []uint32) (map[uint32][]model.SubnetNode, error) {
	lists, err := workerpool.Map(ctx, s.workerCount, subnetIDs, s.SubnetNodes)
	if err != nil {
		return nil, err
	}
	out := make(map[uint32][]model.SubnetNode, len(subnetIDs))
	for i, id := range subnetIDs {
		out[id] = lists[i]
	}
	return out, nil
}

func (s *OverwatchService) recordBytes(ctx context.Context, method string, params ...any) ([]byte, error) {
	var data []byte
	err := s.engine.Retry(ctx, method, func(ctx context.Context) error {
		var err error
		data, err = s.records.RecordBytes(ctx, method, params...)
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
