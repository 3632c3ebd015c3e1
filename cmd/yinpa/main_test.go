package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yinpa-bot/yinpa/internal/errors"
)

// run executes one command line against the sqlite store in dir
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root, opts := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--env-file", "", "--store", "sqlite"}, args...))

	err := root.Execute()
	require.NoError(t, opts.Close())
	return out.String(), err
}

func setupStore(t *testing.T) {
	t.Helper()
	t.Setenv("YINPA_SQLITE_PATH", filepath.Join(t.TempDir(), "yinpa.db"))
}

func TestCLI_PlayerLifecycle(t *testing.T) {
	setupStore(t)

	out, err := run(t, "-u", "1", "join", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome, alice!")
	assert.Contains(t, out, "alice (1)")

	_, err = run(t, "-u", "2", "join", "bob", "--sex", "double", "--race", "elf")
	require.NoError(t, err)

	out, err = run(t, "info", "bob")
	require.NoError(t, err)
	assert.Contains(t, out, "bob (2)")
	assert.Contains(t, out, "sex: double")

	_, err = run(t, "-u", "3", "join", "alice")
	assert.True(t, errors.IsAlreadyExists(err))

	out, err = run(t, "-u", "1", "rename", "carol")
	require.NoError(t, err)
	assert.Contains(t, out, "alice is now carol")

	out, err = run(t, "-u", "1", "rank", "--limit", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "== persistence (2) ==")

	out, err = run(t, "-u", "1", "leave")
	require.NoError(t, err)
	assert.Contains(t, out, "Goodbye.")

	_, err = run(t, "info", "1")
	assert.True(t, errors.IsNotFound(err))
}

func TestCLI_ActAndItems(t *testing.T) {
	setupStore(t)

	_, err := run(t, "-u", "1", "join", "alice")
	require.NoError(t, err)
	_, err = run(t, "-u", "2", "join", "bob")
	require.NoError(t, err)

	out, err := run(t, "-u", "1", "act", "bob", "stroke", "head", "--context", "test")
	require.NoError(t, err)
	assert.Contains(t, out, "alice stroke bob's head")

	_, err = run(t, "-u", "1", "act", "alice", "stroke")
	assert.True(t, errors.IsInvalidOperation(err))

	out, err = run(t, "-u", "2", "buy", "hp_potion", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "now holding 2")

	out, err = run(t, "-u", "2", "use", "hp_potion")
	require.NoError(t, err)
	assert.Contains(t, out, "1 left")
	assert.Contains(t, out, "hp: 1000")

	_, err = run(t, "-u", "2", "use", "aphrodisiac", "--target", "alice")
	assert.True(t, errors.IsInsufficientResource(err))

	_, err = run(t, "-u", "2", "buy", "hp_potion", "many")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestCLI_RequiresUser(t *testing.T) {
	setupStore(t)

	_, err := run(t, "solo")
	assert.ErrorIs(t, err, errMissingUser)
}

func TestCLI_Catalog(t *testing.T) {
	out, err := run(t, "catalog", "items")
	require.NoError(t, err)
	assert.Contains(t, out, "key: hp_potion")
	assert.Contains(t, out, "scope: target")
	assert.NotContains(t, out, "races:")

	out, err = run(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "races:")
	assert.Contains(t, out, "default_part: head")

	_, err = run(t, "catalog", "spells")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestDescribeError(t *testing.T) {
	err := errors.NotFound(`action "strok" not found`).WithMeta(errors.MetaSuggestion, "stroke")
	assert.Equal(t, `action "strok" not found (did you mean "stroke"?)`, describeError(err))

	err = errors.InsufficientResource(errors.ResourceHP, "hp too low").WithMeta(errors.MetaRequired, 150)
	assert.Equal(t, "hp too low [hp required: 150]", describeError(err))

	assert.Equal(t, "INTERNAL: boom", describeError(errors.Internal("boom")))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 5, exitCode(errors.UserNotFound(7)))
	assert.Equal(t, 9, exitCode(errors.InvalidOperation("self")))
	assert.Equal(t, 8, exitCode(errors.InsufficientResource(errors.ResourceHP, "hp too low")))
	assert.Equal(t, 13, exitCode(fmt.Errorf("boom")))
}

func TestCLI_CheckStore(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("YINPA_REDIS_ADDR", mr.Addr())

	runRedis := func(stdin string, args ...string) (string, error) {
		root, opts := newRootCmd()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&bytes.Buffer{})
		root.SetIn(strings.NewReader(stdin))
		root.SetArgs(append([]string{"--env-file", "", "--store", "redis"}, args...))
		err := root.Execute()
		require.NoError(t, opts.Close())
		return out.String(), err
	}

	_, err := runRedis("", "-u", "1", "join", "alice")
	require.NoError(t, err)
	require.NoError(t, mr.Set("user:2", "garbage"))

	out, err := runRedis("", "check-store")
	require.NoError(t, err)
	assert.Contains(t, out, "Checked 2 records, found 1 corrupted")
	assert.Contains(t, out, "user:2: corrupted JSON")

	out, err = runRedis("no\n", "check-store", "--delete")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted")
	assert.True(t, mr.Exists("user:2"))

	out, err = runRedis("", "check-store", "--delete", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 1 records")
	assert.False(t, mr.Exists("user:2"))
	assert.True(t, mr.Exists("user:1"))

	setupStore(t)
	_, err = run(t, "check-store")
	assert.True(t, errors.IsInvalidArgument(err))
}
