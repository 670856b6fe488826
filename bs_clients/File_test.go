package bs_clients

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPath_ValidPath_ReturnsContents(t *testing.T) {
	client := &FileClient{}
	path := filepath.Join(t.TempDir(), "users_raw.txt")
	require.NoError(t, os.WriteFile(path, []byte("1001 Alice Smith 5551234 a@x.com\n"), 0644))
	contents, err := client.ReadPath(path)
	assert.NoError(t, err)
	assert.Equal(t, "1001 Alice Smith 5551234 a@x.com\n", string(contents))
}

func TestReadPath_FileUri_ReturnsContents(t *testing.T) {
	client := &FileClient{}
	path := filepath.Join(t.TempDir(), "users_raw.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	contents, err := client.ReadPath("file://" + path)
	assert.NoError(t, err)
	assert.Equal(t, "x", string(contents))
}

func TestReadPath_InvalidPath_ReturnsError(t *testing.T) {
	client := &FileClient{}
	contents, err := client.ReadPath("invalid/path/users_raw.txt")
	assert.Error(t, err)
	assert.Empty(t, contents)
}

func TestWriteToPath_ExistingFile_Replaced(t *testing.T) {
	client := &FileClient{}
	path := filepath.Join(t.TempDir(), "users_parsed.csv")
	require.NoError(t, os.WriteFile(path, []byte("old contents which are longer than the new ones"), 0644))
	err := client.WriteToPath(path, []byte("new"))
	assert.NoError(t, err)
	contents, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "new", string(contents))
}

func TestWriteToPath_InvalidPath_ReturnsError(t *testing.T) {
	client := &FileClient{}
	err := client.WriteToPath(filepath.Join(t.TempDir(), "no_such_dir", "users_parsed.csv"), []byte("x"))
	assert.Error(t, err)
}
