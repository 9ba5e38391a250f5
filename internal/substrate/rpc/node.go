package rpc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	gsrpc "github.com/centrifuge/go-substrate-rpc-client/v4"
	"github.com/centrifuge/go-substrate-rpc-client/v4/registry/retriever"
	regstate "github.com/centrifuge/go-substrate-rpc-client/v4/registry/state"
	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/overwatch-node/internal/substrate/model"
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/submit"
)

// Config describes the node endpoint.
type Config struct {
	URL string
	// RequestsPerSecond throttles RPC calls. Zero disables throttling.
	RequestsPerSecond int
}

var _ Node = (*SubstrateNode)(nil)

// caller is the raw JSON-RPC surface of the gsrpc client.
type caller interface {
	Call(result interface{}, method string, args ...interface{}) error
}

// SubstrateNode is a Node backed by go-substrate-rpc-client. Every call is rate limited and observed.
type SubstrateNode struct {
	api     *gsrpc.SubstrateAPI
	raw     caller
	events  retriever.EventRetriever
	limiter ratelimit.Limiter
	metrics Metrics
	logger  *zap.Logger

	mu          sync.Mutex
	meta        *types.Metadata
	specVersion types.U32
	genesis     *types.Hash
}

// Dial connects to the node at cfg.URL.
func Dial(cfg Config, metrics Metrics, logger *zap.Logger) (*SubstrateNode, error) {
	if cfg.URL == "" {
		return nil, errors.New("node url is required")
	}
	if metrics == nil {
		return nil, errors.New("rpc metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	api, err := gsrpc.NewSubstrateAPI(cfg.URL)
	if err != nil {
		return nil, submit.Transient(fmt.Errorf("connect to %s: %w", cfg.URL, err))
	}
	events, err := retriever.NewDefaultEventRetriever(regstate.NewEventProvider(api.RPC.State), api.RPC.State)
	if err != nil {
		return nil, fmt.Errorf("create event retriever: %w", err)
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RequestsPerSecond > 0 {
		limiter = ratelimit.New(cfg.RequestsPerSecond)
	}
	return &SubstrateNode{
		api:     api,
		raw:     api.Client,
		events:  events,
		limiter: limiter,
		metrics: metrics,
		logger:  logger.Named("substrate_node"),
	}, nil
}

// Close closes the websocket connection.
func (n *SubstrateNode) Close() {
	n.api.Client.Close()
}

// BlockNumber returns the number of the best block.
func (n *SubstrateNode) BlockNumber() (number uint64, err error) {
	started := time.Now()
	defer func() {
		n.metrics.Observe("get_block_number", err, started)
	}()

	n.limiter.Take()
	header, err := n.api.RPC.Chain.GetHeaderLatest()
	if err != nil {
		return 0, transient("chain_getHeader", err)
	}
	return uint64(header.Number), nil
}

// BlockHash returns the hash of the block at number.
func (n *SubstrateNode) BlockHash(number uint64) (hash string, err error) {
	started := time.Now()
	defer func() {
		n.metrics.Observe("get_block_hash", err, started)
	}()

	n.limiter.Take()
	h, err := n.api.RPC.Chain.GetBlockHash(number)
	if err != nil {
		return "", transient("chain_getBlockHash", err)
	}
	return codec.HexEncodeToString(h[:]), nil
}

// Block returns the block with blockHash and its extrinsics re-encoded.
func (n *SubstrateNode) Block(blockHash string) (block *Block, err error) {
	started := time.Now()
	defer func() {
		n.metrics.Observe("get_block", err, started)
	}()

	hash, err := parseHash(blockHash)
	if err != nil {
		return nil, err
	}
	n.limiter.Take()
	signed, err := n.api.RPC.Chain.GetBlock(hash)
	if err != nil {
		return nil, transient("chain_getBlock", err)
	}

	block = &Block{
		Number:     uint64(signed.Block.Header.Number),
		Extrinsics: make([][]byte, 0, len(signed.Block.Extrinsics)),
	}
	for i, ext := range signed.Block.Extrinsics {
		encoded, err := codec.Encode(ext)
		if err != nil {
			return nil, fmt.Errorf("encode extrinsic %d of block %s: %w", i, blockHash, err)
		}
		block.Extrinsics = append(block.Extrinsics, encoded)
	}
	return block, nil
}

// BlockEvents returns the events emitted in the block with blockHash.
func (n *SubstrateNode) BlockEvents(blockHash string) (events []BlockEvent, err error) {
	started := time.Now()
	defer func() {
		n.metrics.Observe("get_block_events", err, started)
	}()

	hash, err := parseHash(blockHash)
	if err != nil {
		return nil, err
	}
	n.limiter.Take()
	parsed, err := n.events.GetEvents(hash)
	if err != nil {
		return nil, transient("state_getStorage(System.Events)", err)
	}

	events = make([]BlockEvent, 0, len(parsed))
	for _, e := range parsed {
		event := BlockEvent{Event: model.Event{Name: e.Name}}
		for _, f := range e.Fields {
			if f == nil {
				continue
			}
			event.Fields = append(event.Fields, model.EventField{Name: f.Name, Value: f.Value})
		}
		if e.Phase != nil && e.Phase.IsApplyExtrinsic {
			event.ApplyExtrinsic = true
			event.ExtrinsicIndex = e.Phase.AsApplyExtrinsic
		}
		events = append(events, event)
	}
	return events, nil
}

// AccountNextIndex returns the next nonce of address, counting transactions in the pool.
func (n *SubstrateNode) AccountNextIndex(address string) (nonce uint64, err error) {
	started := time.Now()
	defer func() {
		n.metrics.Observe("account_next_index", err, started)
	}()

	n.limiter.Take()
	var index uint64
	if err := n.raw.Call(&index, "system_accountNextIndex", address); err != nil {
		return 0, transient("system_accountNextIndex", err)
	}
	return index, nil
}

// SignExtrinsic builds an immortal extrinsic for call with the encoded args and signs it.
func (n *SubstrateNode) SignExtrinsic(call string, args []byte, signer signature.KeyringPair, nonce uint64) (encoded []byte, err error) {
	started := time.Now()
	defer func() {
		n.metrics.Observe("sign_extrinsic", err, started)
	}()

	meta, version, genesis, err := n.runtime()
	if err != nil {
		return nil, err
	}
	index, err := meta.FindCallIndex(call)
	if err != nil {
		return nil, fmt.Errorf("find call %s: %w", call, err)
	}

	ext := types.NewExtrinsic(types.Call{CallIndex: index, Args: args})
	err = ext.Sign(signer, types.SignatureOptions{
		BlockHash:          genesis,
		Era:                types.ExtrinsicEra{IsMortalEra: false},
		GenesisHash:        genesis,
		Nonce:              types.NewUCompactFromUInt(nonce),
		SpecVersion:        version.SpecVersion,
		Tip:                types.NewUCompactFromUInt(0),
		TransactionVersion: version.TransactionVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("sign %s: %w", call, err)
	}
	return codec.Encode(ext)
}

// SubmitExtrinsic submits an encoded extrinsic without waiting and returns its hash.
func (n *SubstrateNode) SubmitExtrinsic(encoded []byte) (hash string, err error) {
	started := time.Now()
	defer func() {
		n.metrics.Observe("submit_extrinsic", err, started)
	}()

	var ext types.Extrinsic
	if err := codec.Decode(encoded, &ext); err != nil {
		return "", fmt.Errorf("decode extrinsic: %w", err)
	}
	n.limiter.Take()
	h, err := n.api.RPC.Author.SubmitExtrinsic(ext)
	if err != nil {
		return "", transient("author_submitExtrinsic", err)
	}
	return codec.HexEncodeToString(h[:]), nil
}

// WatchExtrinsic submits an encoded extrinsic and blocks until it is in a block.
// It returns the hash of that block.
func (n *SubstrateNode) WatchExtrinsic(ctx context.Context, encoded []byte) (blockHash string, err error) {
	started := time.Now()
	defer func() {
		n.metrics.Observe("submit_and_watch_extrinsic", err, started)
	}()

	var ext types.Extrinsic
	if err := codec.Decode(encoded, &ext); err != nil {
		return "", fmt.Errorf("decode extrinsic: %w", err)
	}
	n.limiter.Take()
	sub, err := n.api.RPC.Author.SubmitAndWatchExtrinsic(ext)
	if err != nil {
		return "", transient("author_submitAndWatchExtrinsic", err)
	}
	defer sub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case subErr := <-sub.Err():
			return "", transient("extrinsic status subscription", subErr)
		case status := <-sub.Chan():
			hash, included, statusErr := inclusion(status)
			if statusErr != nil {
				return "", statusErr
			}
			if included {
				return hash, nil
			}
			n.logger.Debug("extrinsic status", zap.String("status", statusName(status)))
		}
	}
}

// Call performs a raw JSON-RPC call.
func (n *SubstrateNode) Call(result any, method string, params ...any) (err error) {
	started := time.Now()
	defer func() {
		n.metrics.Observe(method, err, started)
	}()

	n.limiter.Take()
	if err := n.raw.Call(result, method, params...); err != nil {
		return transient(method, err)
	}
	return nil
}

// runtime returns the metadata, runtime version and genesis hash used for signing.
// Metadata is refetched after a runtime upgrade.
func (n *SubstrateNode) runtime() (*types.Metadata, *types.RuntimeVersion, types.Hash, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.limiter.Take()
	version, err := n.api.RPC.State.GetRuntimeVersionLatest()
	if err != nil {
		return nil, nil, types.Hash{}, transient("state_getRuntimeVersion", err)
	}

	if n.meta == nil || version.SpecVersion != n.specVersion {
		n.limiter.Take()
		meta, err := n.api.RPC.State.GetMetadataLatest()
		if err != nil {
			return nil, nil, types.Hash{}, transient("state_getMetadata", err)
		}
		if n.meta != nil {
			n.logger.Info("runtime upgraded",
				zap.Uint32("old_spec_version", uint32(n.specVersion)),
				zap.Uint32("spec_version", uint32(version.SpecVersion)),
			)
		}
		n.meta = meta
		n.specVersion = version.SpecVersion
	}

	if n.genesis == nil {
		n.limiter.Take()
		genesis, err := n.api.RPC.Chain.GetBlockHash(0)
		if err != nil {
			return nil, nil, types.Hash{}, transient("chain_getBlockHash(0)", err)
		}
		n.genesis = &genesis
	}
	return n.meta, version, *n.genesis, nil
}

// inclusion maps an extrinsic status to the including block hash. Terminal statuses
// other than inclusion are transient failures.
func inclusion(status types.ExtrinsicStatus) (string, bool, error) {
	switch {
	case status.IsInBlock:
		return codec.HexEncodeToString(status.AsInBlock[:]), true, nil
	case status.IsFinalized:
		return codec.HexEncodeToString(status.AsFinalized[:]), true, nil
	case status.IsDropped, status.IsInvalid, status.IsUsurped, status.IsFinalityTimeout:
		return "", false, submit.Transient(fmt.Errorf("extrinsic %s", statusName(status)))
	default:
		return "", false, nil
	}
}

func statusName(status types.ExtrinsicStatus) string {
	switch {
	case status.IsFuture:
		return "future"
	case status.IsReady:
		return "ready"
	case status.IsBroadcast:
		return "broadcast"
	case status.IsInBlock:
		return "in_block"
	case status.IsRetracted:
		return "retracted"
	case status.IsFinalityTimeout:
		return "finality_timeout"
	case status.IsFinalized:
		return "finalized"
	case status.IsUsurped:
		return "usurped"
	case status.IsDropped:
		return "dropped"
	case status.IsInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

func parseHash(s string) (types.Hash, error) {
	b, err := codec.HexDecodeString(s)
	if err != nil {
		return types.Hash{}, fmt.Errorf("parse hash %q: %w", s, err)
	}
	if len(b) != len(types.Hash{}) {
		return types.Hash{}, fmt.Errorf("parse hash %q: %d bytes", s, len(b))
	}
	return types.NewHash(b), nil
}

func transient(method string, err error) error {
	return submit.Transient(fmt.Errorf("%s: %w", method, err))
}
