package domain

import (
	"fmt"
	"strings"
)

// DID is a did:pkh identifier for a blockchain account
// Reference: https://github.com/w3c-ccg/did-pkh
type DID string

// NewDID builds the did:pkh identifier of an account on a chain
func NewDID(address string, chain Chain) DID {
	if address == "" {
		return ""
	}
	return DID(fmt.Sprintf("did:pkh:%s:%s", strings.ToLower(string(chain)), strings.ToLower(address)))
}

// Address returns the account part of the identifier
func (d DID) Address() string {
	i := strings.LastIndex(string(d), ":")
	if i < 0 {
		return ""
	}
	return string(d)[i+1:]
}

func (d DID) String() string {
	return string(d)
}
