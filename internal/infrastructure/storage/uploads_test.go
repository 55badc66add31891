package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadStoreSaveAndRemove(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save("before", "chart.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Contains(t, name, "_before_")
	assert.True(t, strings.HasSuffix(name, "chart.png"))

	data, err := os.ReadFile(filepath.Join(store.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, store.Remove(name))
	_, err = os.Stat(filepath.Join(store.Dir(), name))
	assert.True(t, os.IsNotExist(err))
}

func TestUploadStoreRemoveMissing(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Remove("never-existed.png"))
	assert.NoError(t, store.Remove(""))
}

func TestUploadStoreSlotsAvoidCollision(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	before, err := store.Save("before", "chart.png", strings.NewReader("a"))
	require.NoError(t, err)
	after, err := store.Save("after", "chart.png", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"chart.png", "chart.png"},
		{"../../etc/passwd", "passwd"},
		{"my chart (1).png", "my_chart__1_.png"},
		{"", "upload"},
		{"..", "upload"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in), tt.in)
	}
}
