// Package ss58 encodes raw account identifiers as checksummed SS58 addresses.
package ss58

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

// GenericSubstrate is the network id of generic Substrate addresses.
const GenericSubstrate uint16 = 42

// maxNetworkID is the largest id representable by the two-byte prefix form.
const maxNetworkID = 1<<14 - 1

var checksumPrefix = []byte("SS58PRE")

var (
	ErrInvalidIdentifierLength = errors.New("invalid identifier length")
	ErrInvalidNetwork          = errors.New("invalid network id")
	ErrInvalidAddress          = errors.New("invalid address")
	ErrInvalidChecksum         = errors.New("invalid address checksum")
)

// checksumLength returns the checksum size for a payload length, or 0 if the length is not supported.
func checksumLength(payloadLen int) int {
	switch payloadLen {
	case 1, 2, 4, 8:
		return 1
	case 32, 33:
		return 2
	default:
		return 0
	}
}

// Encode returns the SS58 address of raw bound to network.
func Encode(raw []byte, network uint16) (string, error) {
	n := checksumLength(len(raw))
	if n == 0 {
		return "", fmt.Errorf("%w: %d bytes", ErrInvalidIdentifierLength, len(raw))
	}
	prefix, err := networkPrefix(network)
	if err != nil {
		return "", err
	}

	body := make([]byte, 0, len(prefix)+len(raw)+n)
	body = append(body, prefix...)
	body = append(body, raw...)
	sum := checksum(body)
	body = append(body, sum[:n]...)
	return base58.Encode(body), nil
}

// Decode parses an SS58 address and returns the raw identifier and its network id.
func Decode(address string) ([]byte, uint16, error) {
	data := base58.Decode(address)
	if len(data) < 2 {
		return nil, 0, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}

	var (
		network   uint16
		prefixLen int
	)
	switch {
	case data[0] < 64:
		network, prefixLen = uint16(data[0]), 1
	case data[0] < 128:
		lower := data[0]<<2 | data[1]>>6
		upper := data[1] & 0b0011_1111
		network, prefixLen = uint16(lower)|uint16(upper)<<8, 2
	default:
		return nil, 0, fmt.Errorf("%w: reserved prefix %#x", ErrInvalidAddress, data[0])
	}

	rest := len(data) - prefixLen
	var payloadLen int
	for _, l := range []int{33, 32, 8, 4, 2, 1} {
		if rest == l+checksumLength(l) {
			payloadLen = l
			break
		}
	}
	if payloadLen == 0 {
		return nil, 0, fmt.Errorf("%w: %d bytes after prefix", ErrInvalidIdentifierLength, rest)
	}

	body := data[:prefixLen+payloadLen]
	sum := checksum(body)
	if !bytes.Equal(sum[:checksumLength(payloadLen)], data[prefixLen+payloadLen:]) {
		return nil, 0, fmt.Errorf("%w: %q", ErrInvalidChecksum, address)
	}
	return append([]byte(nil), data[prefixLen:prefixLen+payloadLen]...), network, nil
}

// DecodeAccountID decodes a 32-byte account address.
func DecodeAccountID(address string) ([32]byte, error) {
	var id [32]byte
	raw, _, err := Decode(address)
	if err != nil {
		return id, err
	}
	if len(raw) != len(id) {
		return id, fmt.Errorf("%w: %d bytes", ErrInvalidIdentifierLength, len(raw))
	}
	copy(id[:], raw)
	return id, nil
}

func networkPrefix(network uint16) ([]byte, error) {
	switch {
	case network < 64:
		return []byte{byte(network)}, nil
	case network <= maxNetworkID:
		first := byte(network&0b0000_0000_1111_1100)>>2 | 0b0100_0000
		second := byte(network>>8) | byte(network&0b0000_0000_0000_0011)<<6
		return []byte{first, second}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidNetwork, network)
	}
}

func checksum(body []byte) [blake2b.Size]byte {
	input := make([]byte, 0, len(checksumPrefix)+len(body))
	input = append(input, checksumPrefix...)
	input = append(input, body...)
	return blake2b.Sum512(input)
}
