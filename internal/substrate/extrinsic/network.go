package extrinsic

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/goodnatureofminers/overwatch-node/internal/substrate/scale"
	"github.com/goodnatureofminers/overwatch-node/internal/substrate/ss58"
)

// NetworkModule is the runtime module hosting subnet and overwatch calls.
const NetworkModule = "Network"

var errNilAmount = errors.New("amount is required")

// RegisterOverwatchNodeParams are the arguments of Network.register_overwatch_node.
// Nil A, B or C are encoded as None.
type RegisterOverwatchNodeParams struct {
	Hotkey string
	PeerID string
	Stake  *big.Int
	A      []byte
	B      []byte
	C      []byte
}

// RegisterOverwatchNode builds Network.register_overwatch_node.
func RegisterOverwatchNode(p RegisterOverwatchNodeParams) (Call, error) {
	hotkey, err := ss58.DecodeAccountID(p.Hotkey)
	if err != nil {
		return Call{}, fmt.Errorf("hotkey: %w", err)
	}
	stake, err := balance(p.Stake)
	if err != nil {
		return Call{}, fmt.Errorf("stake_to_be_added: %w", err)
	}
	return BuildCall(NetworkModule, "register_overwatch_node",
		Param{Name: "hotkey", Type: "AccountId", Value: scale.AccountID(hotkey)},
		Param{Name: "peer_id", Type: "PeerId", Value: scale.Bytes(p.PeerID)},
		Param{Name: "stake_to_be_added", Type: "Balance", Value: stake},
		optionalBytes("a", p.A),
		optionalBytes("b", p.B),
		optionalBytes("c", p.C),
	), nil
}

// ActivateOverwatchNode builds Network.activate_overwatch_node.
func ActivateOverwatchNode(overwatchNodeID uint32) Call {
	return BuildCall(NetworkModule, "activate_overwatch_node",
		Param{Name: "overwatch_node_id", Type: "u32", Value: scale.U32(overwatchNodeID)},
	)
}

// AddToOverwatchStake builds Network.add_to_overwatch_stake.
func AddToOverwatchStake(amount *big.Int) (Call, error) {
	stake, err := balance(amount)
	if err != nil {
		return Call{}, fmt.Errorf("stake_to_be_added: %w", err)
	}
	return BuildCall(NetworkModule, "add_to_overwatch_stake",
		Param{Name: "stake_to_be_added", Type: "Balance", Value: stake},
	), nil
}

// RemoveOverwatchStake builds Network.remove_overwatch_stake.
func RemoveOverwatchStake(amount *big.Int) (Call, error) {
	stake, err := balance(amount)
	if err != nil {
		return Call{}, fmt.Errorf("stake_to_be_removed: %w", err)
	}
	return BuildCall(NetworkModule, "remove_overwatch_stake",
		Param{Name: "stake_to_be_removed", Type: "Balance", Value: stake},
	), nil
}

// SubmitBenchmarkWeights builds Network.submit_benchmark_weights.
func SubmitBenchmarkWeights(encryptedWeights []byte) Call {
	return BuildCall(NetworkModule, "submit_benchmark_weights",
		Param{Name: "encrypted_weights", Type: "Vec<u8>", Value: scale.Bytes(encryptedWeights)},
	)
}

func balance(amount *big.Int) (scale.U128, error) {
	if amount == nil {
		return scale.U128{}, errNilAmount
	}
	if amount.Sign() < 0 || amount.BitLen() > 128 {
		return scale.U128{}, fmt.Errorf("amount %s out of u128 range", amount)
	}
	return scale.NewU128(amount), nil
}

func optionalBytes(name string, b []byte) Param {
	p := Param{Name: name, Type: "Option<Vec<u8>>", Value: scale.Option{}}
	if b != nil {
		p.Value = scale.Option{Some: scale.Bytes(b)}
	}
	return p
}
