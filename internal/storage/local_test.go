package storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestStorage(t *testing.T) *LocalStorage {
	s, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	assert.NoError(t, err)
	return s
}

func TestLocalStorage_SaveAndGet(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	content := []byte("evidence bytes")
	err := s.Save(ctx, "tasks/cand-1/file.png", bytes.NewReader(content))
	assert.NoError(t, err)

	reader, err := s.Get(ctx, "tasks/cand-1/file.png")
	assert.NoError(t, err)
	defer reader.Close()

	read, err := io.ReadAll(reader)
	assert.NoError(t, err)
	assert.Equal(t, content, read)
}

func TestLocalStorage_SaveOverwrites(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	assert.NoError(t, s.Save(ctx, "doc.txt", bytes.NewReader([]byte("old"))))
	assert.NoError(t, s.Save(ctx, "doc.txt", bytes.NewReader([]byte("new"))))

	reader, err := s.Get(ctx, "doc.txt")
	assert.NoError(t, err)
	defer reader.Close()

	read, _ := io.ReadAll(reader)
	assert.Equal(t, []byte("new"), read)
}

func TestLocalStorage_GetMissing(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Get(context.Background(), "nope/missing.bin")
	assert.Error(t, err)
}

func TestLocalStorage_Exists(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	exists, err := s.Exists(ctx, "a/b.txt")
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, s.Save(ctx, "a/b.txt", bytes.NewReader([]byte("x"))))

	exists, err = s.Exists(ctx, "a/b.txt")
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalStorage_Delete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	assert.NoError(t, s.Save(ctx, "gone.txt", bytes.NewReader([]byte("x"))))
	assert.NoError(t, s.Delete(ctx, "gone.txt"))

	exists, _ := s.Exists(ctx, "gone.txt")
	assert.False(t, exists)

	// Deleting what is already gone stays quiet.
	assert.NoError(t, s.Delete(ctx, "gone.txt"))
}
