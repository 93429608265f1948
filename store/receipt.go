package store

import (
	"github.com/MixinNetwork/canvas/nft"
	"github.com/MixinNetwork/mixin/common"
	"github.com/dgraph-io/badger/v3"
)

const (
	prefixReceiptPayload = "REGISTRY:RECEIPT:PAYLOAD:"
	prefixReceiptQueue   = "REGISTRY:RECEIPT:QUEUE:"
)

func (bs *BadgerStore) ReadReceipt(category, traceId string) (*nft.Receipt, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	return bs.readReceipt(txn, category, traceId)
}

func (bs *BadgerStore) ListReceipts(category string, limit int) ([]*nft.Receipt, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = []byte(prefixReceiptQueue + category + ":")
	it := txn.NewIterator(opts)
	defer it.Close()

	var receipts []*nft.Receipt
	for it.Seek(opts.Prefix); it.Valid(); it.Next() {
		key := it.Item().Key()
		id := string(key[len(opts.Prefix)+8:])
		r, err := bs.readReceipt(txn, category, id)
		if err != nil {
			return nil, err
		}
		if r == nil {
			panic(id)
		}
		receipts = append(receipts, r)
		if len(receipts) == limit {
			break
		}
	}
	return receipts, nil
}

func (bs *BadgerStore) writeReceipt(txn *badger.Txn, r *nft.Receipt) error {
	old, err := bs.readReceipt(txn, r.Category, r.TraceId)
	if err != nil {
		return err
	} else if old != nil {
		panic(r.TraceId)
	}

	key := []byte(prefixReceiptPayload + r.Category + ":" + r.TraceId)
	val := common.MsgpackMarshalPanic(r)
	err = txn.Set(key, val)
	if err != nil {
		return err
	}

	key = append([]byte(prefixReceiptQueue+r.Category+":"), tsToBytes(r.CreatedAt)...)
	key = append(key, r.TraceId...)
	return txn.Set(key, []byte{1})
}

func (bs *BadgerStore) readReceipt(txn *badger.Txn, category, traceId string) (*nft.Receipt, error) {
	key := []byte(prefixReceiptPayload + category + ":" + traceId)
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
	var r nft.Receipt
	err = common.MsgpackUnmarshal(val, &r)
	return &r, err
}
