package nft

import (
	"github.com/ipfs/go-cid"
)

const (
	CategoryCollectible = "721_asset"
	CategoryFungible    = "1155_asset"

	DefaultGatewayBase = "https://ipfs.moralis.io:2053/ipfs/"
	DefaultHostedBase  = "https://canvas-nft-userdata.s3.ap-northeast-1.amazonaws.com/"
)

// Resolver turns a minted item into its displayable metadata URI.
// A content hash wins over a hosted path, and an item minted with
// neither resolves to its derived hosted key.
type Resolver struct {
	GatewayBase string
	HostedBase  string
}

func DefaultResolver() *Resolver {
	return &Resolver{
		GatewayBase: DefaultGatewayBase,
		HostedBase:  DefaultHostedBase,
	}
}

func (r *Resolver) Resolve(category string, it *Item) string {
	if h := it.Location.ContentHash; h != "" {
		return r.GatewayBase + h
	}
	if p := it.Location.HostedPath; p != "" {
		return r.HostedBase + p
	}
	return r.HostedBase + HostedKey(category, it.Name)
}

// HostedKey is the object key of the metadata document of a name.
func HostedKey(category, name string) string {
	return category + "/" + name + ".metadata.json"
}

func ValidateContentHash(hash string) error {
	_, err := cid.Decode(hash)
	if err != nil {
		return invalidArgument("content hash %s %v", hash, err)
	}
	return nil
}
