package bitcoin

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"

	"github.com/btcsuite/btcutil/base58"
	"golang.org/x/crypto/ripemd160"
)

// Base64 returns the Base64 encoding of the input.
//
// See https://en.wikipedia.org/wiki/Base64
func Base64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Base64Decode returns base 64 decodes the argument and returns the result.
func Base64Decode(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}

	return b, nil
}

// Base58 return the Base58 encoding of the input.
//
// See https://en.wikipedia.org/wiki/Base58
func Base58(b []byte) string {
	return base58.Encode(b)
}

// Base58Decode returns base 58 decodes the argument and returns the result.
func Base58Decode(s string) []byte {
	return base58.Decode(s)
}

// DoubleSha256 performs two rounds of SHA256.
func DoubleSha256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Hash160 returns RIPEMD160(SHA256(b)), the hash used for public key
// hash identities.
func Hash160(b []byte) []byte {
	first := sha256.Sum256(b)
	hasher := ripemd160.New()
	hasher.Write(first[:])
	return hasher.Sum(nil)
}

// encodeWithChecksum appends a 4 byte double SHA256 checksum and encodes
// with Base58.
func encodeWithChecksum(b []byte) string {
	checksum := DoubleSha256(b)
	return Base58(append(b, checksum[:4]...))
}

// decodeWithChecksum decodes Base58 text and verifies the trailing 4 byte
// checksum.
func decodeWithChecksum(s string) ([]byte, error) {
	b := Base58Decode(s)

	if len(b) < 5 {
		return nil, ErrBadCheckSum
	}

	checksum := DoubleSha256(b[:len(b)-4])
	if !bytes.Equal(checksum[:4], b[len(b)-4:]) {
		return nil, ErrBadCheckSum
	}

	return b[:len(b)-4], nil
}
