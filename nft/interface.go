package nft

import "time"

type PropertyStore interface {
	WriteProperty(key, val []byte) error
	ReadProperty(key []byte) ([]byte, error)
}

type Store interface {
	PropertyStore

	// WriteMintItems commits all items and the receipt in one transaction,
	// or nothing when any name is already taken.
	WriteMintItems(category string, items []*Item, receipt *Receipt) error
	ReadLastItemId(category string) (uint64, error)
	ReadItem(category string, id uint64) (*Item, error)
	ReadItemByName(category, name string) (*Item, error)
	ListItemNames(category string) ([]string, error)
	ListItemsForOwner(category string, owner Address) ([]*Item, error)

	ReadReceipt(category, traceId string) (*Receipt, error)
	ListReceipts(category string, limit int) ([]*Receipt, error)
}

type Location struct {
	ContentHash string
	HostedPath  string
}

type Item struct {
	Id       uint64
	Name     string
	Owner    Address
	Quantity uint64
	Location Location
	MintedAt time.Time
}

type Receipt struct {
	TraceId   string
	Category  string
	Owner     Address
	Ids       []uint64
	CreatedAt time.Time
}
