package chaindata

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/goodnatureofminers/overwatch-node/internal/substrate/model"
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/scale"
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/ss58"
)

// ErrSchemaMismatch means a decoded value does not have the shape of the requested record.
var ErrSchemaMismatch = errors.New("schema mismatch")

type fieldRole uint8

const (
	passthrough fieldRole = iota
	account
)

type fieldRule struct {
	name string
	role fieldRole
}

var (
	subnetNodeRules = []fieldRule{
		{name: "coldkey", role: account},
		{name: "hotkey", role: account},
		{name: "peer_id"},
		{name: "initialized"},
		{name: "classification"},
		{name: "a"},
		{name: "b"},
		{name: "c"},
	}
	classificationRules = []fieldRule{
		{name: "class"},
		{name: "start_epoch"},
	}
	rewardsDataRules = []fieldRule{
		{name: "peer_id"},
		{name: "score"},
	}
)

// Normalizer maps decoded values to domain records. It holds no mutable state.
type Normalizer struct {
	registry *scale.Registry
	network  uint16
}

// NewNormalizer creates a Normalizer encoding account fields for network.
func NewNormalizer(registry *scale.Registry, network uint16) *Normalizer {
	return &Normalizer{registry: registry, network: network}
}

// Normalize converts v into model.SubnetNode or model.RewardsData depending on kind.
// An Option that is None yields a nil record.
func (n *Normalizer) Normalize(v scale.Value, kind Kind) (any, error) {
	if opt, ok := v.(scale.Option); ok {
		if opt.IsNone() {
			return nil, nil
		}
		v = opt.Some
	}
	var (
		record any
		err    error
	)
	switch kind {
	case KindSubnetNode:
		record, err = n.SubnetNode(v)
	case KindRewardsData:
		record, err = n.RewardsData(v)
	default:
		err = fmt.Errorf("%w: unknown record kind %s", ErrSchemaMismatch, kind)
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// NormalizeList decodes a vector of kind records and normalizes each element.
// Absent or empty input yields an empty list.
func (n *Normalizer) NormalizeList(input any, kind Kind) ([]any, error) {
	return normalizeList(n, input, kind, func(v scale.Value) (any, error) {
		return n.Normalize(v, kind)
	})
}

// SubnetNodes decodes and normalizes a vector of SubnetNode records.
func (n *Normalizer) SubnetNodes(input any) ([]model.SubnetNode, error) {
	return normalizeList(n, input, KindSubnetNode, n.SubnetNode)
}

// RewardsDataList decodes and normalizes a vector of RewardsData records.
func (n *Normalizer) RewardsDataList(input any) ([]model.RewardsData, error) {
	return normalizeList(n, input, KindRewardsData, n.RewardsData)
}

func normalizeList[T any](n *Normalizer, input any, kind Kind, one func(scale.Value) (T, error)) ([]T, error) {
	data, err := scale.InputBytes(input)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []T{}, nil
	}

	decoded, err := n.registry.Decode(data, kind.TypeName(), true, false)
	if err != nil {
		return nil, err
	}
	items, ok := decoded.(scale.Vec)
	if !ok {
		return nil, fmt.Errorf("%w: %s list decoded as %T", ErrSchemaMismatch, kind, decoded)
	}

	out := make([]T, 0, len(items))
	for i, item := range items {
		record, err := one(item)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", kind, i, err)
		}
		out = append(out, record)
	}
	return out, nil
}

// SubnetNode normalizes a decoded SubnetNode struct.
func (n *Normalizer) SubnetNode(v scale.Value) (model.SubnetNode, error) {
	f, err := n.fields(v, KindSubnetNode.TypeName(), subnetNodeRules)
	if err != nil {
		return model.SubnetNode{}, err
	}

	var node model.SubnetNode
	if node.Coldkey, err = f.address("coldkey"); err != nil {
		return model.SubnetNode{}, err
	}
	if node.Hotkey, err = f.address("hotkey"); err != nil {
		return model.SubnetNode{}, err
	}
	if node.PeerID, err = f.bytes("peer_id"); err != nil {
		return model.SubnetNode{}, err
	}
	if node.Initialized, err = f.uint64("initialized"); err != nil {
		return model.SubnetNode{}, err
	}
	if node.Classification, err = n.classification(f.values["classification"]); err != nil {
		return model.SubnetNode{}, err
	}
	if node.A, err = f.bytes("a"); err != nil {
		return model.SubnetNode{}, err
	}
	if node.B, err = f.bytes("b"); err != nil {
		return model.SubnetNode{}, err
	}
	if node.C, err = f.bytes("c"); err != nil {
		return model.SubnetNode{}, err
	}
	return node, nil
}

// RewardsData normalizes a decoded RewardsData struct.
func (n *Normalizer) RewardsData(v scale.Value) (model.RewardsData, error) {
	f, err := n.fields(v, KindRewardsData.TypeName(), rewardsDataRules)
	if err != nil {
		return model.RewardsData{}, err
	}

	var rewards model.RewardsData
	if rewards.PeerID, err = f.bytes("peer_id"); err != nil {
		return model.RewardsData{}, err
	}
	if rewards.Score, err = f.uint128("score"); err != nil {
		return model.RewardsData{}, err
	}
	return rewards, nil
}

func (n *Normalizer) classification(v any) (model.SubnetNodeClassification, error) {
	value, _ := v.(scale.Value)
	f, err := n.fields(value, "SubnetNodeClassification", classificationRules)
	if err != nil {
		return model.SubnetNodeClassification{}, err
	}

	en, ok := f.values["class"].(scale.Enum)
	if !ok {
		return model.SubnetNodeClassification{}, f.mismatch("class", "enum")
	}
	class, ok := model.ParseSubnetNodeClass(en.Variant)
	if !ok {
		return model.SubnetNodeClassification{}, fmt.Errorf("%w: %s.class: unknown variant %q", ErrSchemaMismatch, f.record, en.Variant)
	}
	epoch, err := f.uint64("start_epoch")
	if err != nil {
		return model.SubnetNodeClassification{}, err
	}
	return model.SubnetNodeClassification{Class: class, StartEpoch: epoch}, nil
}

// fields checks that v is a struct with exactly the rule fields and applies the account mapping.
func (n *Normalizer) fields(v scale.Value, record string, rules []fieldRule) (recordFields, error) {
	s, ok := v.(scale.Struct)
	if !ok {
		return recordFields{}, fmt.Errorf("%w: %s: expected struct, got %T", ErrSchemaMismatch, record, v)
	}
	if len(s) != len(rules) {
		return recordFields{}, fmt.Errorf("%w: %s: expected %d fields, got %d", ErrSchemaMismatch, record, len(rules), len(s))
	}

	values := make(map[string]any, len(rules))
	for _, f := range s {
		if _, dup := values[f.Name]; dup {
			return recordFields{}, fmt.Errorf("%w: %s: duplicate field %q", ErrSchemaMismatch, record, f.Name)
		}
		values[f.Name] = f.Value
	}

	for _, rule := range rules {
		raw, ok := values[rule.name]
		if !ok {
			return recordFields{}, fmt.Errorf("%w: %s: missing field %q", ErrSchemaMismatch, record, rule.name)
		}
		if rule.role != account {
			continue
		}
		id, ok := raw.(scale.AccountID)
		if !ok {
			return recordFields{}, fmt.Errorf("%w: %s.%s: expected account id, got %T", ErrSchemaMismatch, record, rule.name, raw)
		}
		address, err := ss58.Encode(id[:], n.network)
		if err != nil {
			return recordFields{}, fmt.Errorf("%s.%s: %w", record, rule.name, err)
		}
		values[rule.name] = address
	}
	return recordFields{record: record, values: values}, nil
}

type recordFields struct {
	record string
	values map[string]any
}

func (f recordFields) mismatch(name, want string) error {
	return fmt.Errorf("%w: %s.%s: expected %s, got %T", ErrSchemaMismatch, f.record, name, want, f.values[name])
}

func (f recordFields) address(name string) (string, error) {
	s, ok := f.values[name].(string)
	if !ok {
		return "", f.mismatch(name, "address")
	}
	return s, nil
}

func (f recordFields) bytes(name string) ([]byte, error) {
	b, ok := f.values[name].(scale.Bytes)
	if !ok {
		return nil, f.mismatch(name, "bytes")
	}
	return []byte(b), nil
}

func (f recordFields) uint64(name string) (uint64, error) {
	v, ok := f.values[name].(scale.U64)
	if !ok {
		return 0, f.mismatch(name, "u64")
	}
	return uint64(v), nil
}

func (f recordFields) uint128(name string) (*big.Int, error) {
	v, ok := f.values[name].(scale.U128)
	if !ok || v.Int == nil {
		return nil, f.mismatch(name, "u128")
	}
	return new(big.Int).Set(v.Int), nil
}
