package runlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRead(t *testing.T) {
	root := t.TempDir()
	ts := time.Date(2023, 4, 1, 10, 30, 0, 0, time.UTC)

	entries := []Entry{
		{Timestamp: ts, Input: "sales.csv", Output: "sales_chart.png", Rows: 12, Skipped: 0, Status: StatusOK},
		{Timestamp: ts.Add(time.Hour), Input: "q2.csv", Output: "q2.png", Rows: 40, Skipped: 3, Status: StatusOK},
	}
	require.NoError(t, Append(root, entries[:1]))
	require.NoError(t, Append(root, entries[1:]))

	got, err := Read(root)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Timestamp.Equal(ts))
	assert.Equal(t, "sales.csv", got[0].Input)
	assert.Equal(t, 12, got[0].Rows)
	assert.Equal(t, 3, got[1].Skipped)
	assert.Equal(t, StatusOK, got[1].Status)
}

func TestRead_MissingFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUnmarshalEntry_BadFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"a", "b"})
	assert.Error(t, err)
}

func TestUnmarshalEntry_BadRows(t *testing.T) {
	_, err := UnmarshalEntry([]string{"2023-04-01T10:30:00Z", "in.csv", "out.png", "twelve", "0", StatusOK})
	assert.Error(t, err)
}
