package importlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 6, 10, 9, 15, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp: testTime,
		ImportID:  "9f1c2e44-7a3b-4d2e-9c11-0a5b6d7e8f90",
		Source:    "binance_trades.csv",
		Exchange:  "binance",
		Rows:      5,
		Holdings:  2,
		Success:   true,
	}
}

func TestAppend_NewFile(t *testing.T) {
	dir := t.TempDir()
	err := Append(dir, []Entry{testEntry()})
	require.NoError(t, err)

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "binance", entries[0].Exchange)
	assert.Equal(t, 5, entries[0].Rows)
	assert.True(t, entries[0].Success)
}

func TestAppend_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	e2 := testEntry()
	e2.Source = "holdings.csv"
	e2.Exchange = "unknown"
	e2.Success = false
	require.NoError(t, Append(dir, []Entry{e2}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "binance", entries[0].Exchange)
	assert.Equal(t, "unknown", entries[1].Exchange)
	assert.False(t, entries[1].Success)
}

func TestRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := testEntry()
	require.NoError(t, Append(dir, []Entry{want}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, want, entries[0])
}

func TestRead_MissingFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUnmarshalEntry_BadRow(t *testing.T) {
	_, err := UnmarshalEntry([]string{"not-a-time", "id", "src", "ex", "1", "2", "true"})
	assert.Error(t, err)

	_, err = UnmarshalEntry([]string{"too", "short"})
	assert.Error(t, err)
}
