package store

import (
	"context"
	"sync"
	"time"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/dgraph-io/badger/v3"
)

type BadgerStore struct {
	db     *badger.DB
	closed chan struct{}
	once   sync.Once
}

// OpenBadger opens the database at path, or an in-memory one when path is empty.
func OpenBadger(ctx context.Context, path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts = opts.WithLoggingLevel(badger.WARNING)
	if path == "" {
		opts = opts.WithInMemory(true).WithMemTableSize(16 << 20)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	bs := &BadgerStore{
		db:     db,
		closed: make(chan struct{}),
	}
	if path != "" {
		go bs.loopValueLogGC(ctx)
	}
	return bs, nil
}

func (bs *BadgerStore) Close() error {
	bs.once.Do(func() { close(bs.closed) })
	return bs.db.Close()
}

func (bs *BadgerStore) Badger() *badger.DB {
	return bs.db
}

func (bs *BadgerStore) WriteProperty(key, val []byte) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	})
}

func (bs *BadgerStore) ReadProperty(key []byte) ([]byte, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func (bs *BadgerStore) loopValueLogGC(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-bs.closed:
			return
		case <-time.After(5 * time.Minute):
		}
		lsm, vlog := bs.db.Size()
		logger.Printf("Badger LSM %d VLOG %d\n", lsm, vlog)
		if lsm > 1024*1024*8 || vlog > 1024*1024*32 {
			err := bs.db.RunValueLogGC(0.5)
			logger.Printf("Badger RunValueLogGC %v\n", err)
		}
	}
}
