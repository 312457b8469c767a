package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mediahub/internal/domain"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("MEDIAHUB_CONFIG", "")
	t.Setenv("JWT_SECRET", "cli-test-secret-0123456789")
	t.Setenv("DATA_DIR", dir)
	return dir
}

func TestMigrate(t *testing.T) {
	dir := setupEnv(t)

	out, err := runCommand(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Database "+dir+" is at schema version")
}

func TestMigrate_MissingSecret(t *testing.T) {
	setupEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := runCommand(t, "migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestAdminCreate(t *testing.T) {
	setupEnv(t)

	out, err := runCommand(t, "admin", "create", "--name", "Root", "--email", "Root@Example.com", "--password", "Str0ng!Pass")
	require.NoError(t, err)
	assert.Contains(t, out, "Created super_admin root@example.com")

	_, err = runCommand(t, "admin", "create", "--name", "Root", "--email", "root@example.com", "--password", "Str0ng!Pass")
	assert.Error(t, err)

	_, err = runCommand(t, "admin", "create", "--name", "Bob", "--email", "bob@example.com", "--password", "Str0ng!Pass", "--role", "user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an administrative role")

	out, err = runCommand(t, "admin", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "root@example.com")
	assert.Contains(t, out, "super_admin")
	assert.NotContains(t, out, "bob@example.com")
}

func TestAdminList_Empty(t *testing.T) {
	setupEnv(t)

	out, err := runCommand(t, "admin", "list")
	require.NoError(t, err)
	assert.Equal(t, "No accounts\n", out)
}

func TestRenderTable(t *testing.T) {
	assert.Empty(t, renderTable(nil, nil))

	out := renderTable([]string{"Name", "Role"}, [][]string{{"Root", "super_admin"}, {"Short"}})
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "super_admin")
	assert.Contains(t, out, "Short")
}

func TestTranscode_RequiresOut(t *testing.T) {
	setupEnv(t)

	_, err := runCommand(t, "transcode", "input.mp4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out")
}

func TestTranscode_NeedsNoServerSettings(t *testing.T) {
	setupEnv(t)
	t.Setenv("JWT_SECRET", "")
	missing := filepath.Join(t.TempDir(), "absent")
	t.Setenv("DATA_DIR", missing)

	_, err := runCommand(t, "transcode", filepath.Join(t.TempDir(), "missing.mp4"), "--out", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
	assert.NoDirExists(t, missing)
}
