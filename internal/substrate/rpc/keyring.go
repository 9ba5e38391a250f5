package rpc

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
)

// Keyring is an sr25519 signing identity.
type Keyring struct {
	pair signature.KeyringPair
}

// NewKeyring derives a keypair from a mnemonic, hex seed or dev URI such as "//Alice".
// The address is encoded for network.
func NewKeyring(secret string, network uint16) (*Keyring, error) {
	if secret == "" {
		return nil, fmt.Errorf("keyring secret is empty")
	}
	pair, err := signature.KeyringPairFromSecret(secret, network)
	if err != nil {
		return nil, fmt.Errorf("derive keypair: %w", err)
	}
	return &Keyring{pair: pair}, nil
}

// Address returns the SS58 address of the keypair.
func (k *Keyring) Address() string {
	return k.pair.Address
}

// PublicKey returns a copy of the raw public key.
func (k *Keyring) PublicKey() []byte {
	return append([]byte(nil), k.pair.PublicKey...)
}
