package store

import (
	"fmt"

	"github.com/MixinNetwork/canvas/nft"
	"github.com/MixinNetwork/mixin/common"
	"github.com/dgraph-io/badger/v3"
)

const (
	prefixRegistryCounter = "REGISTRY:COUNTER:"
	prefixRegistryItem    = "REGISTRY:ITEM:"
	prefixRegistryName    = "REGISTRY:NAME:"
	prefixRegistryOwner   = "REGISTRY:OWNER:"
)

func (bs *BadgerStore) WriteMintItems(category string, items []*nft.Item, receipt *nft.Receipt) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		last, err := bs.readLastItemId(txn, category)
		if err != nil {
			return err
		}
		for _, it := range items {
			if it.Id != last+1 {
				return fmt.Errorf("stale item id %d %d", it.Id, last)
			}
			old, err := bs.readItemId(txn, category, it.Name)
			if err != nil {
				return err
			} else if old > 0 {
				return &nft.DuplicateNameError{Name: it.Name}
			}
			err = bs.writeItem(txn, category, it)
			if err != nil {
				return err
			}
			last = it.Id
		}

		key := []byte(prefixRegistryCounter + category)
		err = txn.Set(key, uint64ToBytes(last))
		if err != nil {
			return err
		}
		return bs.writeReceipt(txn, receipt)
	})
}

func (bs *BadgerStore) ReadLastItemId(category string) (uint64, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	return bs.readLastItemId(txn, category)
}

func (bs *BadgerStore) ReadItem(category string, id uint64) (*nft.Item, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	return bs.readItem(txn, category, id)
}

func (bs *BadgerStore) ReadItemByName(category, name string) (*nft.Item, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	id, err := bs.readItemId(txn, category, name)
	if err != nil || id == 0 {
		return nil, err
	}
	it, err := bs.readItem(txn, category, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		panic(name)
	}
	return it, nil
}

// ListItemNames returns the names in id order, which is the mint order.
func (bs *BadgerStore) ListItemNames(category string) ([]string, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	opts := badger.DefaultIteratorOptions
	opts.Prefix = itemPrefix(category)
	it := txn.NewIterator(opts)
	defer it.Close()

	names := []string{}
	for it.Seek(opts.Prefix); it.Valid(); it.Next() {
		val, err := it.Item().ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		var item nft.Item
		err = common.MsgpackUnmarshal(val, &item)
		if err != nil {
			return nil, err
		}
		names = append(names, item.Name)
	}
	return names, nil
}

func (bs *BadgerStore) ListItemsForOwner(category string, owner nft.Address) ([]*nft.Item, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = append([]byte(prefixRegistryOwner+category+":"), owner[:]...)
	it := txn.NewIterator(opts)
	defer it.Close()

	var items []*nft.Item
	for it.Seek(opts.Prefix); it.Valid(); it.Next() {
		key := it.Item().Key()
		id := bytesToUint64(key[len(opts.Prefix):])
		item, err := bs.readItem(txn, category, id)
		if err != nil {
			return nil, err
		}
		if item == nil {
			panic(id)
		}
		items = append(items, item)
	}
	return items, nil
}

func (bs *BadgerStore) writeItem(txn *badger.Txn, category string, it *nft.Item) error {
	key := append(itemPrefix(category), uint64ToBytes(it.Id)...)
	val := common.MsgpackMarshalPanic(it)
	err := txn.Set(key, val)
	if err != nil {
		return err
	}

	key = []byte(prefixRegistryName + category + ":" + it.Name)
	err = txn.Set(key, uint64ToBytes(it.Id))
	if err != nil {
		return err
	}

	key = append([]byte(prefixRegistryOwner+category+":"), it.Owner[:]...)
	key = append(key, uint64ToBytes(it.Id)...)
	return txn.Set(key, []byte{1})
}

func (bs *BadgerStore) readLastItemId(txn *badger.Txn, category string) (uint64, error) {
	key := []byte(prefixRegistryCounter + category)
	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return 0, err
	}
	return bytesToUint64(val), nil
}

func (bs *BadgerStore) readItemId(txn *badger.Txn, category, name string) (uint64, error) {
	key := []byte(prefixRegistryName + category + ":" + name)
	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return 0, err
	}
	return bytesToUint64(val), nil
}

func (bs *BadgerStore) readItem(txn *badger.Txn, category string, id uint64) (*nft.Item, error) {
	key := append(itemPrefix(category), uint64ToBytes(id)...)
	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	var it nft.Item
	err = common.MsgpackUnmarshal(val, &it)
	return &it, err
}

func itemPrefix(category string) []byte {
	return []byte(prefixRegistryItem + category + ":")
}
