package schedule

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	content := "timestamp,borrowed,supplied\n" +
		"1,900000000000000000,1000000000000000000\n" +
		"61, 950000000000000000, 1000000000000000000\n" +
		"61,0,0\n"

	file := filepath.Join(t.TempDir(), "schedule.csv")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	observations, err := Load(file)
	require.NoError(t, err)
	require.Len(t, observations, 3)

	assert.Equal(t, uint64(1), observations[0].Timestamp)
	assert.Equal(t, "900000000000000000", observations[0].Borrowed.String())
	assert.Equal(t, "1000000000000000000", observations[0].Supplied.String())
	assert.Equal(t, uint64(61), observations[1].Timestamp)
	assert.Equal(t, "950000000000000000", observations[1].Borrowed.String())
	assert.Equal(t, int64(0), observations[2].Supplied.Int64())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{"empty", "", "no header"},
		{"bad timestamp", "timestamp,borrowed,supplied\nsoon,1,1\n", "timestamp on line 2"},
		{"backwards", "timestamp,borrowed,supplied\n10,1,1\n9,1,1\n", "before previous"},
		{"negative amount", "timestamp,borrowed,supplied\n10,-1,1\n", "borrowed amount on line 2"},
		{"too large", "timestamp,borrowed,supplied\n10,1,115792089237316195423570985008687907853269984665640564039457584007913129639936\n", "supplied amount on line 2"},
		{"missing column", "timestamp,borrowed,supplied\n10,1\n", "schedule records"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.message)
		})
	}
}
