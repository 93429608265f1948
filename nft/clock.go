package nft

import (
	"encoding/binary"
	"sync"
	"time"
)

const clockStorePropertyKey = "REGISTRY:CLOCK:MONOTONIC"

// Clock never goes backwards, even across restarts with a skewed system time.
type Clock struct {
	sync.Mutex
	store PropertyStore
	now   time.Time
}

func NewClock(store PropertyStore) (*Clock, error) {
	bs, err := store.ReadProperty([]byte(clockStorePropertyKey))
	if err != nil {
		return nil, err
	}
	clock := new(Clock)
	clock.store = store
	clock.now = time.Now()
	if len(bs) == 8 {
		ts := time.Unix(0, int64(binary.BigEndian.Uint64(bs)))
		if ts.After(clock.now) {
			clock.now = ts
		}
	}
	return clock, nil
}

func (c *Clock) Now() (time.Time, error) {
	c.Lock()
	defer c.Unlock()

	now := time.Now().Round(0)
	if !now.After(c.now) {
		now = c.now.Add(time.Nanosecond)
	}

	val := binary.BigEndian.AppendUint64(nil, uint64(now.UnixNano()))
	err := c.store.WriteProperty([]byte(clockStorePropertyKey), val)
	if err != nil {
		return time.Time{}, err
	}
	c.now = now
	return now, nil
}
