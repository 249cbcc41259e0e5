package photostore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinica-api/internal/domain/photo"
	"github.com/BruksfildServices01/clinica-api/internal/httperr"
)

func newLocal(t *testing.T) (*LocalStore, string) {
	t.Helper()
	base := t.TempDir()
	s, err := NewLocalStore(base)
	require.NoError(t, err)
	return s, base
}

func TestLocalStore_WriteReadList(t *testing.T) {
	ctx := context.Background()
	s, base := newLocal(t)

	require.NoError(t, s.Write(ctx, "Ana - 1", "b.png", []byte("B")))
	require.NoError(t, s.Write(ctx, "Ana - 1", "a.png", []byte("A")))

	names, err := s.List(ctx, "Ana - 1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png", "b.png"}, names)

	data, err := s.Read(ctx, "Ana - 1", "a.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("A"), data)

	raw, err := os.ReadFile(filepath.Join(base, "Ana - 1", "b.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("B"), raw)
}

func TestLocalStore_MissingFolderAndFile(t *testing.T) {
	ctx := context.Background()
	s, _ := newLocal(t)

	exists, err := s.FolderExists(ctx, "nada")
	require.NoError(t, err)
	assert.False(t, exists)

	names, err := s.List(ctx, "nada")
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = s.Read(ctx, "nada", "x.png")
	assert.True(t, httperr.IsNotFound(err))
	assert.ErrorIs(t, s.Remove(ctx, "nada", "x.png"), photo.ErrNotFound)
}

func TestLocalStore_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	s, _ := newLocal(t)

	assert.True(t, httperr.IsKind(s.Write(ctx, "..", "x.png", nil), httperr.KindValidation))
	assert.True(t, httperr.IsKind(s.Write(ctx, "ok", "../x.png", nil), httperr.KindValidation))
	_, err := s.Read(ctx, "ok", `..\x.png`)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
}

func TestLocalStore_MoveRenameAndCleanup(t *testing.T) {
	ctx := context.Background()
	s, _ := newLocal(t)

	require.NoError(t, s.Write(ctx, "old", "1.png", []byte("1")))
	require.NoError(t, s.MoveFile(ctx, "old", "new", "1.png"))

	removed, err := s.RemoveFolderIfEmpty(ctx, "old")
	require.NoError(t, err)
	assert.True(t, removed)

	require.NoError(t, s.RenameFolder(ctx, "new", "newer"))
	ok, err := s.FileExists(ctx, "newer", "1.png")
	require.NoError(t, err)
	assert.True(t, ok)

	removed, err = s.RemoveFolderIfEmpty(ctx, "newer")
	require.NoError(t, err)
	assert.False(t, removed)
}
