package bitcoin

import (
	"bytes"
	"errors"
)

var (
	ErrBadScriptHashLength = errors.New("Script hash has invalid length")
	ErrBadCheckSum         = errors.New("Address has bad checksum")
	ErrBadType             = errors.New("Address type unknown")
)

const (
	AddressTypeMainPKH = 0x00 // Public Key Hash
	AddressTypeTestPKH = 0x6f // Testnet Public Key Hash
)

// Address is a public key hash payment destination. Only PKH addresses
// are supported. Settlement parties and payout destinations are always
// single key identities.
type Address struct {
	addressType byte
	pkh         Hash20
}

// DecodeAddress decodes a base58 text address. It returns an error if there was an issue.
func DecodeAddress(address string) (Address, error) {
	var result Address
	err := result.Decode(address)
	return result, err
}

// Decode decodes a base58 text address. It returns an error if there was an issue.
func (a *Address) Decode(address string) error {
	b, err := decodeWithChecksum(address)
	if err != nil {
		return err
	}

	return a.decodeBytes(b)
}

// decodeBytes decodes a binary address. It returns an error if there was an issue.
func (a *Address) decodeBytes(b []byte) error {
	if len(b) < 2 {
		return ErrBadType
	}

	switch b[0] {
	case AddressTypeMainPKH, AddressTypeTestPKH:
		if len(b)-1 != Hash20Length {
			return ErrBadScriptHashLength
		}
		a.addressType = b[0]
		copy(a.pkh[:], b[1:])
		return nil
	}

	return ErrBadType
}

// NewAddressPKH creates an address from a public key hash.
func NewAddressPKH(pkh []byte, net Network) (Address, error) {
	var result Address

	if len(pkh) != Hash20Length {
		return result, ErrBadScriptHashLength
	}

	if net == MainNet {
		result.addressType = AddressTypeMainPKH
	} else {
		result.addressType = AddressTypeTestPKH
	}
	copy(result.pkh[:], pkh)

	return result, nil
}

// NewAddressFromPublicKey creates an address from the Hash160 of a public key.
func NewAddressFromPublicKey(key PublicKey, net Network) (Address, error) {
	return NewAddressPKH(Hash160(key.Bytes()), net)
}

// PKH returns the public key hash of the address.
func (a Address) PKH() *Hash20 {
	pkh := a.pkh
	return &pkh
}

// Network returns the network id of the address.
func (a Address) Network() Network {
	if a.addressType == AddressTypeMainPKH {
		return MainNet
	}
	return TestNet
}

// String returns the type and address data with a checksum, encoded with Base58.
func (a Address) String() string {
	return encodeWithChecksum(append([]byte{a.addressType}, a.pkh[:]...))
}

// Equal returns true if the parameter address has the same public key hash.
// The network is not compared.
func (a Address) Equal(other Address) bool {
	return bytes.Equal(a.pkh[:], other.pkh[:])
}

// MarshalJSON converts to json.
func (a Address) MarshalJSON() ([]byte, error) {
	return []byte("\"" + a.String() + "\""), nil
}

// UnmarshalJSON converts from json.
func (a *Address) UnmarshalJSON(data []byte) error {
	if len(data) < 2 {
		return ErrBadType
	}

	return a.Decode(string(data[1 : len(data)-1]))
}
