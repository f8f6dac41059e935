package bitcoin

import (
	"errors"

	"github.com/btcsuite/btcd/btcec"
)

var curveS256 = btcec.S256()

var (
	ErrBadKeyLength = errors.New("Key has invalid length")
)

const (
	typeMainPrivKey = 0x80 // Private Key
	typeTestPrivKey = 0xef // Testnet Private Key
)

type Key interface {
	// String returns the type followed by the key data with a checksum, encoded with Base58.
	String() string

	// Network returns the network id for the key.
	Network() Network

	// Bytes returns the key data.
	Bytes() []byte

	// PublicKey returns the public key.
	PublicKey() PublicKey

	// Sign creates a DER serialized signature from a hash.
	Sign([]byte) ([]byte, error)
}

// DecodeKeyString converts WIF (Wallet Import Format) key text to a key.
func DecodeKeyString(s string) (Key, error) {
	b, err := decodeWithChecksum(s)
	if err != nil {
		return nil, err
	}

	var network Network
	switch b[0] {
	case typeMainPrivKey:
		network = MainNet
	case typeTestPrivKey:
		network = TestNet
	default:
		return nil, ErrBadType
	}

	result, err := KeyS256FromBytes(b[1:], network)
	return result, err
}

/****************************************** S256 **************************************************
/* An elliptic curve private key using the secp256k1 elliptic curve.
*/
type KeyS256 struct {
	key *btcec.PrivateKey
	net Network
}

// GenerateKeyS256 randomly generates a new key.
func GenerateKeyS256(net Network) (*KeyS256, error) {
	privkey, err := btcec.NewPrivateKey(curveS256)
	if err != nil {
		return nil, err
	}
	return &KeyS256{key: privkey, net: net}, nil
}

// KeyS256FromBytes creates a key from a set of bytes that represents a 256 bit big-endian integer.
func KeyS256FromBytes(key []byte, net Network) (*KeyS256, error) {
	if len(key) != 32 {
		return nil, ErrBadKeyLength
	}
	privkey, _ := btcec.PrivKeyFromBytes(curveS256, key)
	return &KeyS256{key: privkey, net: net}, nil
}

// String returns the type followed by the key data with a checksum, encoded with Base58.
func (k *KeyS256) String() string {
	var keyType byte

	// Add key type byte in front
	switch k.net {
	case MainNet:
		keyType = typeMainPrivKey
	default:
		keyType = typeTestPrivKey
	}
	return encodeWithChecksum(append([]byte{keyType}, k.key.Serialize()...))
}

// Network returns the network id for the key.
func (k *KeyS256) Network() Network {
	return k.net
}

// Bytes returns the 32 bytes representing the 256 bit big-endian integer of the private key.
func (k *KeyS256) Bytes() []byte {
	return k.key.Serialize()
}

// PublicKey returns the public key.
func (k *KeyS256) PublicKey() PublicKey {
	return publicKeyS256FromBTCEC(k.key.PubKey())
}

// Sign returns the DER serialized signature of the hash for the private key.
func (k *KeyS256) Sign(hash []byte) ([]byte, error) {
	signature, err := k.key.Sign(hash)
	if err != nil {
		return nil, err
	}
	return signature.Serialize(), nil
}
