package model

import "math/big"

// SubnetNodeClass is the lifecycle class of a subnet node.
type SubnetNodeClass uint8

const (
	ClassDeactivated SubnetNodeClass = iota
	ClassRegistered
	ClassIdle
	ClassIncluded
	ClassValidator
)

var subnetNodeClassNames = [...]string{
	ClassDeactivated: "Deactivated",
	ClassRegistered:  "Registered",
	ClassIdle:        "Idle",
	ClassIncluded:    "Included",
	ClassValidator:   "Validator",
}

// SubnetNodeClassNames returns the on-chain variant names ordered by discriminant.
func SubnetNodeClassNames() []string {
	return append([]string(nil), subnetNodeClassNames[:]...)
}

func (c SubnetNodeClass) String() string {
	if int(c) < len(subnetNodeClassNames) {
		return subnetNodeClassNames[c]
	}
	return "Unknown"
}

// ParseSubnetNodeClass maps a variant name to its class.
func ParseSubnetNodeClass(name string) (SubnetNodeClass, bool) {
	for i, n := range subnetNodeClassNames {
		if n == name {
			return SubnetNodeClass(i), true
		}
	}
	return 0, false
}

// SubnetNodeClassification is the class of a node and the epoch it entered it.
type SubnetNodeClassification struct {
	Class      SubnetNodeClass
	StartEpoch uint64
}

// SubnetNode is a node registration record. Keys are SS58 addresses.
type SubnetNode struct {
	Coldkey        string
	Hotkey         string
	PeerID         []byte
	Initialized    uint64
	Classification SubnetNodeClassification
	A              []byte
	B              []byte
	C              []byte
}

// RewardsData is the score reported for a peer.
type RewardsData struct {
	PeerID []byte
	Score  *big.Int
}
