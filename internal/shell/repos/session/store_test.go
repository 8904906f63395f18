package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cometbrowser/comet/internal/shell/domain"
)

func openTestStore(t *testing.T) Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_PutGet(t *testing.T) {
	s := openTestStore(t)

	capture := domain.SuspendedCapture{
		URL:         "https://example.com/article",
		Title:       "An Article",
		ScrollX:     0,
		ScrollY:     1240.5,
		SuspendedAt: 1756200000,
		Favicon:     []byte{0xCA, 0xFE},
	}
	require.NoError(t, s.Put(7, capture))

	got, found, err := s.Get(7)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, capture, got)
}

func TestStore_GetMissing(t *testing.T) {
	s := openTestStore(t)

	_, found, err := s.Get(123)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_PutOverwrites(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put(1, domain.SuspendedCapture{URL: "https://old.example"}))
	require.NoError(t, s.Put(1, domain.SuspendedCapture{URL: "https://new.example"}))

	got, found, err := s.Get(1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "https://new.example", got.URL)
}

func TestStore_Delete(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put(1, domain.SuspendedCapture{URL: "https://example.com"}))
	require.NoError(t, s.Delete(1))

	_, found, err := s.Get(1)
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting a missing key is not an error.
	assert.NoError(t, s.Delete(1))
}

func TestStore_All(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put(1, domain.SuspendedCapture{URL: "https://a.example"}))
	require.NoError(t, s.Put(2, domain.SuspendedCapture{URL: "https://b.example"}))

	all, err := s.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "https://a.example", all[1].URL)
	assert.Equal(t, "https://b.example", all[2].URL)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(3, domain.SuspendedCapture{URL: "https://example.com", Title: "t"}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, found, err := s.Get(3)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "https://example.com", got.URL)
}

func TestNoopStore(t *testing.T) {
	var s Store = NoopStore{}

	assert.NoError(t, s.Put(1, domain.SuspendedCapture{URL: "https://example.com"}))

	_, found, err := s.Get(1)
	assert.NoError(t, err)
	assert.False(t, found, "a noop store never finds anything")

	all, err := s.All()
	assert.NoError(t, err)
	assert.Empty(t, all)

	assert.NoError(t, s.Delete(1))
	assert.NoError(t, s.Close())
}
