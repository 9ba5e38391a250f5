// Package chaindata normalizes decoded custom chain records into typed domain records.
package chaindata

import (
	"fmt"

	"github.com/goodnatureofminers/overwatch-node/internal/substrate/model"
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/scale"
)

// Kind identifies a custom record type.
type Kind int

const (
	KindSubnetNode Kind = iota + 1
	KindRewardsData
)

// TypeName returns the registry name of the record type.
func (k Kind) TypeName() string {
	switch k {
	case KindSubnetNode:
		return "SubnetNode"
	case KindRewardsData:
		return "RewardsData"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) String() string {
	return k.TypeName()
}

// Definitions returns the custom record schema.
func Definitions() []scale.TypeDef {
	return []scale.TypeDef{
		scale.StructDef{Name: "SubnetNode", Fields: []scale.FieldDef{
			{Name: "coldkey", Type: "AccountId"},
			{Name: "hotkey", Type: "AccountId"},
			{Name: "peer_id", Type: "Vec<u8>"},
			{Name: "initialized", Type: "u64"},
			{Name: "classification", Type: "SubnetNodeClassification"},
			{Name: "a", Type: "Vec<u8>"},
			{Name: "b", Type: "Vec<u8>"},
			{Name: "c", Type: "Vec<u8>"},
		}},
		scale.StructDef{Name: "SubnetNodeClassification", Fields: []scale.FieldDef{
			{Name: "class", Type: "SubnetNodeClass"},
			{Name: "start_epoch", Type: "u64"},
		}},
		scale.EnumDef{Name: "SubnetNodeClass", Variants: model.SubnetNodeClassNames()},
		scale.StructDef{Name: "RewardsData", Fields: []scale.FieldDef{
			{Name: "peer_id", Type: "Vec<u8>"},
			{Name: "score", Type: "u128"},
		}},
	}
}

// NewRegistry builds the registry of primitives and custom record types.
func NewRegistry() (*scale.Registry, error) {
	return scale.NewRegistry(Definitions()...)
}
