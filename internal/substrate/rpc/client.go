// Package rpc connects the submission engine and record readers to a Substrate node.
package rpc

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"

	"github.com/goodnatureofminers/overwatch-node/internal/substrate/extrinsic"
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/model"
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/scale"
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/submit"
	"github.com/goodnatureofminers/overwatch-node/pkg/safe"
)

const (
	eventExtrinsicSuccess = "System.ExtrinsicSuccess"
	eventExtrinsicFailed  = "System.ExtrinsicFailed"
)

// DefaultLookbackBlocks is how many recent blocks FindReceipt scans by default.
const DefaultLookbackBlocks = 20

var _ submit.Connection = (*Client)(nil)
var _ submit.ReceiptFinder = (*Client)(nil)

// Client implements submit.Connection on top of a Node.
type Client struct {
	node     Node
	registry *scale.Registry
	logger   *zap.Logger
	lookback uint64
}

// NewClient creates a Client. Call arguments are encoded with registry.
func NewClient(node Node, registry *scale.Registry, logger *zap.Logger, lookbackBlocks uint64) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if lookbackBlocks == 0 {
		lookbackBlocks = DefaultLookbackBlocks
	}
	return &Client{
		node:     node,
		registry: registry,
		logger:   logger,
		lookback: lookbackBlocks,
	}
}

// BlockNumber returns the number of the best block.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return c.node.BlockNumber()
}

// AccountNonce returns the next nonce of address including pending transactions.
func (c *Client) AccountNonce(ctx context.Context, address string) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return c.node.AccountNextIndex(address)
}

// CreateSignedExtrinsic encodes the call arguments and signs the call with keypair at nonce.
func (c *Client) CreateSignedExtrinsic(ctx context.Context, call extrinsic.Call, keypair submit.Keypair, nonce uint64) (*model.SignedExtrinsic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	kr, ok := keypair.(*Keyring)
	if !ok {
		return nil, fmt.Errorf("unsupported keypair %T", keypair)
	}

	args, err := c.EncodeArgs(call)
	if err != nil {
		return nil, err
	}
	encoded, err := c.node.SignExtrinsic(call.Name(), args, kr.pair, nonce)
	if err != nil {
		return nil, err
	}
	return &model.SignedExtrinsic{
		Call:    call.Name(),
		Signer:  kr.Address(),
		Nonce:   nonce,
		Hash:    ExtrinsicHash(encoded),
		Encoded: encoded,
	}, nil
}

// EncodeArgs concatenates the SCALE encoding of the call parameters in order.
func (c *Client) EncodeArgs(call extrinsic.Call) ([]byte, error) {
	var args []byte
	for _, p := range call.Params() {
		b, err := c.registry.Encode(p.Value, p.Type)
		if err != nil {
			return nil, fmt.Errorf("encode %s argument %s: %w", call.Name(), p.Name, err)
		}
		args = append(args, b...)
	}
	return args, nil
}

// SubmitExtrinsic submits ext. With waitForInclusion it blocks until the extrinsic is in a
// block and returns the receipt built from that block's events; otherwise the receipt only
// carries the extrinsic hash.
func (c *Client) SubmitExtrinsic(ctx context.Context, ext *model.SignedExtrinsic, waitForInclusion bool) (*model.Receipt, error) {
	if ext == nil {
		return nil, errors.New("signed extrinsic is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !waitForInclusion {
		hash, err := c.node.SubmitExtrinsic(ext.Encoded)
		if err != nil {
			return nil, err
		}
		return &model.Receipt{ExtrinsicHash: hash}, nil
	}

	blockHash, err := c.node.WatchExtrinsic(ctx, ext.Encoded)
	if err != nil {
		return nil, err
	}
	block, err := c.node.Block(blockHash)
	if err != nil {
		return nil, err
	}
	index, ok := extrinsicIndex(block, ext.Hash)
	if !ok {
		return nil, submit.Transient(fmt.Errorf("extrinsic %s not found in block %s", ext.Hash, blockHash))
	}
	return c.receipt(ext.Hash, blockHash, block.Number, index)
}

// FindReceipt scans the most recent blocks for extrinsicHash.
func (c *Client) FindReceipt(ctx context.Context, extrinsicHash string) (*model.Receipt, error) {
	latest, err := c.BlockNumber(ctx)
	if err != nil {
		return nil, err
	}

	for i := uint64(0); i < c.lookback && i <= latest; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		number := latest - i
		blockHash, err := c.node.BlockHash(number)
		if err != nil {
			return nil, err
		}
		block, err := c.node.Block(blockHash)
		if err != nil {
			return nil, err
		}
		if index, ok := extrinsicIndex(block, extrinsicHash); ok {
			c.logger.Debug("extrinsic found",
				zap.String("extrinsic_hash", extrinsicHash),
				zap.Uint64("block_number", block.Number),
			)
			return c.receipt(extrinsicHash, blockHash, block.Number, index)
		}
	}
	return nil, fmt.Errorf("%w: %s in last %d blocks", submit.ErrReceiptNotFound, extrinsicHash, c.lookback)
}

// RecordBytes calls a custom record RPC returning SCALE bytes as a list of integers.
// A null result yields no bytes.
func (c *Client) RecordBytes(ctx context.Context, method string, params ...any) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var raw []int
	if err := c.node.Call(&raw, method, params...); err != nil {
		return nil, err
	}
	b, err := scale.BytesFromInts(raw)
	if err != nil {
		return nil, fmt.Errorf("%s result: %w", method, err)
	}
	return b, nil
}

func (c *Client) receipt(extrinsicHash, blockHash string, blockNumber uint64, index uint32) (*model.Receipt, error) {
	events, err := c.node.BlockEvents(blockHash)
	if err != nil {
		return nil, err
	}

	receipt := &model.Receipt{
		ExtrinsicHash:  extrinsicHash,
		ExtrinsicIndex: index,
		BlockHash:      blockHash,
		BlockNumber:    blockNumber,
	}
	for _, e := range events {
		if !e.ApplyExtrinsic || e.ExtrinsicIndex != index {
			continue
		}
		receipt.Events = append(receipt.Events, e.Event)
		switch e.Name {
		case eventExtrinsicSuccess:
			receipt.Success = true
		case eventExtrinsicFailed:
			receipt.ErrorMessage = dispatchError(e.Event)
		}
	}
	return receipt, nil
}

func dispatchError(e model.Event) string {
	for _, f := range e.Fields {
		if f.Name == "dispatch_error" {
			return fmt.Sprint(f.Value)
		}
	}
	if len(e.Fields) > 0 {
		return fmt.Sprint(e.Fields[0].Value)
	}
	return "extrinsic failed"
}

func extrinsicIndex(block *Block, extrinsicHash string) (uint32, bool) {
	for i, encoded := range block.Extrinsics {
		if ExtrinsicHash(encoded) != extrinsicHash {
			continue
		}
		index, err := safe.Uint32(i)
		if err != nil {
			return 0, false
		}
		return index, true
	}
	return 0, false
}

// ExtrinsicHash returns the 0x-prefixed blake2b-256 hash of an encoded extrinsic.
func ExtrinsicHash(encoded []byte) string {
	sum := blake2b.Sum256(encoded)
	return codec.HexEncodeToString(sum[:])
}
