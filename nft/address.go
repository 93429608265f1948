package nft

import (
	"encoding/hex"
	"strings"
)

const AddressLength = 20

type Address [AddressLength]byte

// ZeroAddress is returned by lookups of names that were never minted.
var ZeroAddress Address

func ParseAddress(s string) (Address, error) {
	var a Address
	h := s
	if strings.HasPrefix(h, "0x") || strings.HasPrefix(h, "0X") {
		h = h[2:]
	}
	if len(h) != AddressLength*2 {
		return a, invalidArgument("address %s", s)
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return a, invalidArgument("address %s", s)
	}
	copy(a[:], b)
	return a, nil
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a Address) IsZero() bool {
	return a == ZeroAddress
}
