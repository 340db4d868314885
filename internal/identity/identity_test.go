// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package identity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/originality/pkg/types"
)

func TestLoadEmptyDir(t *testing.T) {
	user, err := Load("")
	require.NoError(t, err)
	assert.True(t, user.Anonymous)
}

func TestLoadMissingDir(t *testing.T) {
	user, err := Load(filepath.Join(t.TempDir(), "never-created"))
	require.NoError(t, err)
	assert.True(t, user.Anonymous)
}

func TestSaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "session")

	saved := types.User{Email: "dev@example.com", UID: "uid-1234"}
	require.NoError(t, Save(dir, saved))

	user, err := Load(dir)
	require.NoError(t, err)
	assert.False(t, user.Anonymous)
	assert.Equal(t, "dev@example.com", user.Email)
	assert.Equal(t, "uid-1234", user.UID)
}

func TestSaveRejectsAnonymous(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, Save(dir, Anonymous))
	assert.Error(t, Save(dir, types.User{Email: "dev@example.com"}))
}

func TestLoadEmptyUIDIsAnonymous(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "uid"), []byte("  \n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "email"), []byte("dev@example.com\n"), 0o600))

	user, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, user.Anonymous)
}

func TestClear(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "session")
	require.NoError(t, Save(dir, types.User{Email: "dev@example.com", UID: "uid-1234"}))

	require.NoError(t, Clear(dir))

	user, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, user.Anonymous)
}

func TestClearMissingDir(t *testing.T) {
	assert.NoError(t, Clear(filepath.Join(t.TempDir(), "absent")))
}
