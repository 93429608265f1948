package nft_test

import (
	"encoding/binary"
	"encoding/json"
	"testing"
	"time"

	"github.com/MixinNetwork/canvas/nft"
	"github.com/stretchr/testify/require"
)

func TestMetadata(t *testing.T) {
	require := require.New(t)

	m := nft.NewMetadata("", "work-1", "nft from canvas", "https://example.com/work-1.png", 12, 3)
	require.Equal("https://canvas-329810.web.app/work-1", m.ExternalURL)

	var doc map[string]interface{}
	require.NoError(json.Unmarshal(m.Marshal(), &doc))
	require.Equal("work-1", doc["name"])
	require.Equal("nft from canvas", doc["description"])
	require.Equal("https://example.com/work-1.png", doc["image"])
	attrs := doc["attributes"].([]interface{})
	require.Len(attrs, 2)
	point := attrs[0].(map[string]interface{})
	require.Equal("Point", point["trait_type"])
	require.Equal("number", point["display_type"])
	require.Equal(float64(12), point["value"])
	level := attrs[1].(map[string]interface{})
	require.Equal("Level", level["trait_type"])
	require.Equal(float64(3), level["value"])

	m = nft.NewMetadata("https://example.com/", "work-2", "", "", 0, 0)
	require.Equal("https://example.com/work-2", m.ExternalURL)
}

func TestClockMonotonic(t *testing.T) {
	require := require.New(t)
	bs := testOpenStore(t)

	future := time.Now().Add(time.Hour)
	val := binary.BigEndian.AppendUint64(nil, uint64(future.UnixNano()))
	require.NoError(bs.WriteProperty([]byte("REGISTRY:CLOCK:MONOTONIC"), val))

	clock, err := nft.NewClock(bs)
	require.NoError(err)
	prev, err := clock.Now()
	require.NoError(err)
	require.True(prev.After(future))
	for i := 0; i < 100; i++ {
		now, err := clock.Now()
		require.NoError(err)
		require.True(now.After(prev))
		prev = now
	}

	clock, err = nft.NewClock(bs)
	require.NoError(err)
	now, err := clock.Now()
	require.NoError(err)
	require.True(now.After(prev))
}
