package holdings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults_MissingFileFallsBack(t *testing.T) {
	out := LoadDefaults(filepath.Join(t.TempDir(), "nope.json"))
	require.Len(t, out, 2)
	assert.Equal(t, "BTC", out[0].Symbol)
}

func TestLoadDefaults_BrokenJSONFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default-holdings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	out := LoadDefaults(path)
	require.Len(t, out, 2)
	assert.Equal(t, "Bitcoin", out[0].Name)
}

func TestLoadDefaults_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default-holdings.json")
	data := `[{"symbol":"SOL","name":"Solana","price":150,"holdings":10,"value":1500,"change24h":0,"changePercent24h":0}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out := LoadDefaults(path)
	require.Len(t, out, 1)
	assert.Equal(t, "SOL", out[0].Symbol)
	assert.Equal(t, 10.0, out[0].Quantity)
}
