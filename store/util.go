package store

import (
	"encoding/binary"
	"time"
)

func tsToBytes(ts time.Time) []byte {
	return uint64ToBytes(uint64(ts.UnixNano()))
}

func uint64ToBytes(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}

func bytesToUint64(buf []byte) uint64 {
	if len(buf) != 8 {
		panic(len(buf))
	}
	return binary.BigEndian.Uint64(buf)
}
