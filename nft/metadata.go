package nft

import "encoding/json"

const DefaultExternalBase = "https://canvas-329810.web.app/"

type Attribute struct {
	TraitType   string `json:"trait_type"`
	DisplayType string `json:"display_type"`
	Value       int    `json:"value"`
}

// Metadata is the document stored under HostedKey or pinned behind a content hash.
type Metadata struct {
	Description string      `json:"description"`
	ExternalURL string      `json:"external_url"`
	Name        string      `json:"name"`
	Attributes  []Attribute `json:"attributes"`
	Image       string      `json:"image"`
}

func NewMetadata(externalBase, name, description, image string, point, level int) *Metadata {
	if externalBase == "" {
		externalBase = DefaultExternalBase
	}
	return &Metadata{
		Description: description,
		ExternalURL: externalBase + name,
		Name:        name,
		Attributes: []Attribute{
			{TraitType: "Point", DisplayType: "number", Value: point},
			{TraitType: "Level", DisplayType: "number", Value: level},
		},
		Image: image,
	}
}

func (m *Metadata) Marshal() []byte {
	b, err := json.Marshal(m)
	if err != nil {
		panic(err)
	}
	return b
}
