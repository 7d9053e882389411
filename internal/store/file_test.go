package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStore_Contract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	assertTokenStoreContract(t, NewFileTokenStore(path, "qodefly_token", ""))
}

func TestFileTokenStore_SealedContract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	assertTokenStoreContract(t, NewFileTokenStore(path, "qodefly_token", "seal-secret"))
}

func TestFileTokenStore_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	require.NoError(t, NewFileTokenStore(path, "qodefly_token", "").Save(ctx, "tok1"))

	token, ok, err := NewFileTokenStore(path, "qodefly_token", "").Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok1", token)
}

func TestFileTokenStore_FileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, NewFileTokenStore(path, "qodefly_token", "").Save(context.Background(), "tok1"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileTokenStore_SealedValueIsNotPlaintext(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	require.NoError(t, NewFileTokenStore(path, "qodefly_token", "seal-secret").Save(ctx, "tok-plaintext"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(raw), "tok-plaintext"))

	var doc sessionDocument
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.True(t, doc.Tokens["qodefly_token"].Sealed)
}

func TestFileTokenStore_WrongSecret(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, NewFileTokenStore(path, "qodefly_token", "seal-secret").Save(ctx, "tok1"))

	_, _, err := NewFileTokenStore(path, "qodefly_token", "other-secret").Load(ctx)
	assert.ErrorIs(t, err, ErrCorruptedSession)

	_, _, err = NewFileTokenStore(path, "qodefly_token", "").Load(ctx)
	assert.ErrorIs(t, err, ErrCorruptedSession)
}

func TestFileTokenStore_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	a := NewFileTokenStore(path, "a", "")
	b := NewFileTokenStore(path, "b", "")

	require.NoError(t, a.Save(ctx, "tok-a"))
	require.NoError(t, b.Save(ctx, "tok-b"))
	require.NoError(t, a.Clear(ctx))

	_, ok, err := a.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	token, ok, err := b.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-b", token)
}

func TestFileTokenStore_ClearRemovesFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewFileTokenStore(path, "qodefly_token", "")

	require.NoError(t, s.Save(ctx, "tok1"))
	require.NoError(t, s.Clear(ctx))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileTokenStore_CorruptedFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	s := NewFileTokenStore(path, "qodefly_token", "")

	_, _, err := s.Load(ctx)
	assert.ErrorIs(t, err, ErrCorruptedSession)

	// Save overwrites the broken document.
	require.NoError(t, s.Save(ctx, "tok1"))
	token, ok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok1", token)

	// Clear also recovers.
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	require.NoError(t, s.Clear(ctx))
	_, ok, err = s.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
