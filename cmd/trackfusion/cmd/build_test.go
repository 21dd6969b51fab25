package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadImagePairs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "matches.json")

	body := `[{"First":"A","Second":"B","Matches":[{"TrainIdx":1,"QueryIdx":10}]}]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	pairs, err := readImagePairs(path)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "A", pairs[0].First)
	assert.Equal(t, "B", pairs[0].Second)
	require.Len(t, pairs[0].Matches, 1)
	assert.EqualValues(t, 1, pairs[0].Matches[0].TrainIdx)
	assert.EqualValues(t, 10, pairs[0].Matches[0].QueryIdx)
}

func TestReadImagePairs_MissingFile(t *testing.T) {
	_, err := readImagePairs(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestRunBuild_PersistsToStore(t *testing.T) {
	dir := t.TempDir()
	matchesPath := filepath.Join(dir, "matches.json")
	pairs := []map[string]any{
		{
			"First":  "A",
			"Second": "B",
			"Matches": []map[string]int{
				{"TrainIdx": 1, "QueryIdx": 10},
			},
		},
	}
	data, err := json.Marshal(pairs)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(matchesPath, data, 0o644))

	prevConfig := globalConfig
	defer func() { globalConfig = prevConfig }()
	globalConfig = nil // force initConfig to re-resolve from flags below

	dbPath := filepath.Join(dir, "trackfusion.db")
	buf := new(nopWriteCloser)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"build", matchesPath, "--store-path", dbPath, "--min-track-length", "2"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "1 tracks")
}

type nopWriteCloser struct {
	data []byte
}

func (w *nopWriteCloser) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func (w *nopWriteCloser) String() string {
	return string(w.data)
}
