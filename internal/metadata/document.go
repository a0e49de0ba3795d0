package metadata

import (
	"fmt"
	"strings"

	"github.com/hoofledger/hoofledger/internal/adapter"
)

// Attribute is one ERC-721 metadata trait
type Attribute struct {
	TraitType   string      `json:"trait_type"`
	Value       interface{} `json:"value"`
	DisplayType string      `json:"display_type,omitempty"`
}

// Document is the ERC-721 metadata JSON referenced by a cattle token's URI
type Document struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Image       string      `json:"image,omitempty"`
	Attributes  []Attribute `json:"attributes"`
}

// Cattle holds the animal attributes that end up in the metadata document
type Cattle struct {
	Name      string
	Breed     string
	Color     string
	Weight    uint64
	BirthDate string
	Sire      string
	Dam       string
	Vaccines  string
	Feeding   string
}

// NewDocument builds the metadata document of an animal.
// Empty optional attributes are left out so the document stays stable.
func NewDocument(c Cattle, description, imageURI string) *Document {
	doc := &Document{
		Name:        c.Name,
		Description: description,
		Image:       imageURI,
	}

	add := func(trait string, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		doc.Attributes = append(doc.Attributes, Attribute{TraitType: trait, Value: value})
	}
	add("Breed", c.Breed)
	add("Color", c.Color)
	if c.Weight > 0 {
		doc.Attributes = append(doc.Attributes, Attribute{TraitType: "Weight (kg)", Value: c.Weight, DisplayType: "number"})
	}
	add("Birth Date", c.BirthDate)
	add("Sire", c.Sire)
	add("Dam", c.Dam)
	add("Vaccines", c.Vaccines)
	add("Feeding", c.Feeding)

	if doc.Attributes == nil {
		doc.Attributes = []Attribute{}
	}
	return doc
}

// Canonical returns the RFC 8785 serialization of the document
func (d *Document) Canonical(json adapter.JSON) ([]byte, error) {
	data, err := json.MarshalCanonical(d)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize metadata: %w", err)
	}
	return data, nil
}

// GatewayURL renders an ipfs:// URI through an HTTP gateway. Other URIs are returned unchanged.
func GatewayURL(uri string, gateway string) string {
	cid, ok := strings.CutPrefix(uri, "ipfs://")
	if !ok {
		return uri
	}
	cid = strings.TrimPrefix(cid, "ipfs/")
	return strings.TrimSuffix(gateway, "/") + "/ipfs/" + cid
}
