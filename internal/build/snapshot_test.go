package build

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpungsan/pcbuild/internal/catalog"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	s := New()
	s.Select(catalog.CPU, "Intel Core i7-13700F", 329)
	s.Select(catalog.PSU, "Corsair RM750W", 109)

	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.FixedZone("CLT", -3*3600))
	snap := NewSnapshot(s, "01HZX", now)

	assert.Equal(t, 438, snap.TotalPrice)
	assert.Equal(t, "2026-03-14T18:09:26Z", snap.Timestamp)

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"totalPrice":438`)
	assert.Contains(t, string(data), `"cpu":{"category":"cpu","name":"Intel Core i7-13700F","price":329}`)

	decoded, err := DecodeSnapshot(data)
	require.NoError(t, err)
	restored, err := Restore(*decoded)
	require.NoError(t, err)

	assert.Equal(t, s.Selections(), restored.Selections())
	assert.Equal(t, s.TotalPrice(), restored.TotalPrice())
}

func TestNewSnapshot_DoesNotAlias(t *testing.T) {
	s := New()
	s.Select(catalog.GPU, "RX 7600 XT", 329)
	snap := NewSnapshot(s, "", time.Now())

	s.Select(catalog.GPU, "RTX 4070 Super", 599)
	assert.Equal(t, "RX 7600 XT", snap.Selections[catalog.GPU].Name)
}

func TestRestore_Rejects(t *testing.T) {
	tests := []struct {
		name string
		sels map[catalog.Category]Selection
	}{
		{"unknown category", map[catalog.Category]Selection{
			"monitor": {Category: "monitor", Name: "x", Price: 1},
		}},
		{"mismatched key", map[catalog.Category]Selection{
			catalog.CPU: {Category: catalog.GPU, Name: "x", Price: 1},
		}},
		{"empty name", map[catalog.Category]Selection{
			catalog.CPU: {Category: catalog.CPU, Price: 1},
		}},
		{"negative price", map[catalog.Category]Selection{
			catalog.CPU: {Category: catalog.CPU, Name: "x", Price: -5},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restore(Snapshot{Selections: tt.sels})
			assert.Error(t, err)
		})
	}
}

func TestDecodeSnapshot_Corrupt(t *testing.T) {
	for _, data := range []string{
		`not json`,
		`{"selections": {"cpu": {"category": "gpu", "name": "x", "price": 1}}, "timestamp": "2026-01-01T00:00:00Z"}`,
		`{"selections": {}, "timestamp": "yesterday"}`,
	} {
		_, err := DecodeSnapshot([]byte(data))
		assert.Error(t, err, "input %s", data)
	}
}
