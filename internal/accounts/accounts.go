// Package accounts inspects configured key material locally. Nothing here
// talks to a node.
package accounts

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrEmptyKey   = errors.New("accounts: empty key")
	ErrInvalidKey = errors.New("accounts: invalid private key")
)

// Account is the public view of a configured key.
type Account struct {
	Address   common.Address
	PublicKey string
}

// Trim0x strips a single leading 0x or 0X.
func Trim0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// ParseKey accepts a hex private key with or without the 0x prefix.
func ParseKey(raw string) (*ecdsa.PrivateKey, error) {
	s := Trim0x(strings.TrimSpace(raw))
	if s == "" {
		return nil, ErrEmptyKey
	}
	k, err := crypto.HexToECDSA(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return k, nil
}

func FromKey(raw string) (Account, error) {
	k, err := ParseKey(raw)
	if err != nil {
		return Account{}, err
	}
	return Account{
		Address:   crypto.PubkeyToAddress(k.PublicKey),
		PublicKey: hexutil.Encode(crypto.CompressPubkey(&k.PublicKey)),
	}, nil
}

// Redact hides all but the last four characters of a key.
func Redact(raw string) string {
	s := Trim0x(strings.TrimSpace(raw))
	switch {
	case s == "":
		return ""
	case len(s) <= 4:
		return "0x****"
	default:
		return "0x****" + s[len(s)-4:]
	}
}
