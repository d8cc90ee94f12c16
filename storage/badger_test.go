package storage_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"memberfund/storage"
)

// TestBadgerStateRoundTrip checks set, get, overwrite and delete against a
// throwaway database.
func TestBadgerStateRoundTrip(t *testing.T) {
	state, err := storage.Open(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	defer func() { require.NoError(t, state.Close()) }()

	require.Nil(t, state.Get("missing"))

	state.Set("k1", "v1")
	got := state.Get("k1")
	require.NotNil(t, got)
	require.Equal(t, "v1", *got)

	state.Set("k1", "v2")
	got = state.Get("k1")
	require.NotNil(t, got)
	require.Equal(t, "v2", *got)

	state.Delete("k1")
	require.Nil(t, state.Get("k1"))

	// deleting an absent key is a no-op
	state.Delete("k1")
}

// TestBadgerStateSurvivesReopen checks durability across close and reopen,
// binary values included.
func TestBadgerStateSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	state, err := storage.Open(dir, zerolog.Nop())
	require.NoError(t, err)
	state.Set("counter", "42")
	state.Set("blob", string([]byte{0x00, 0x01, 0xff, 0xfe}))
	require.NoError(t, state.Close())

	reopened, err := storage.Open(dir, zerolog.Nop())
	require.NoError(t, err)
	defer func() { require.NoError(t, reopened.Close()) }()

	counter := reopened.Get("counter")
	require.NotNil(t, counter)
	require.Equal(t, "42", *counter)

	blob := reopened.Get("blob")
	require.NotNil(t, blob)
	require.Equal(t, string([]byte{0x00, 0x01, 0xff, 0xfe}), *blob)
}
