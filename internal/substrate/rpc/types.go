package rpc

import (
	"context"
	"time"

	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"

	"github.com/goodnatureofminers/overwatch-node/internal/substrate/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Node is the raw node API used by Client. Implementations wrap node and transport
	// failures with submit.Transient and leave local failures unwrapped.
	Node interface {
		BlockNumber() (uint64, error)
		BlockHash(number uint64) (string, error)
		Block(blockHash string) (*Block, error)
		BlockEvents(blockHash string) ([]BlockEvent, error)
		AccountNextIndex(address string) (uint64, error)
		SignExtrinsic(call string, args []byte, signer signature.KeyringPair, nonce uint64) ([]byte, error)
		SubmitExtrinsic(encoded []byte) (string, error)
		WatchExtrinsic(ctx context.Context, encoded []byte) (string, error)
		Call(result any, method string, params ...any) error
	}
	// Metrics records metrics for node RPC calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Block is a block body with its extrinsics in encoded form.
type Block struct {
	Number     uint64
	Extrinsics [][]byte
}

// BlockEvent is a runtime event and the phase it was emitted in.
type BlockEvent struct {
	model.Event
	// ApplyExtrinsic is set when the event belongs to the extrinsic at ExtrinsicIndex.
	ApplyExtrinsic bool
	ExtrinsicIndex uint32
}
