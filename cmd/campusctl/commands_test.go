package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/campus-connect/internal/app"
	"github.com/oggyb/campus-connect/internal/auth"
	"github.com/oggyb/campus-connect/internal/db"
	"github.com/oggyb/campus-connect/internal/testutil"
)

func runCtl(t *testing.T, env *testutil.Env, args ...string) (string, error) {
	t.Helper()
	open := func() (*app.AppContext, func(), error) { return env.App, func() {}, nil }
	cmd := newRootCmd(open)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestWarnAndListWarnings(t *testing.T) {
	env := testutil.NewEnv(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	testutil.Profiles(t, env.DB, "a")

	out, err := runCtl(t, env, "warn", "a", "--reason", "spam")
	require.NoError(t, err)
	assert.Contains(t, out, "warnings: 1")

	out, err = runCtl(t, env, "warnings", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "spam")
	assert.Contains(t, out, "open")
}

func TestWarnRequiresReason(t *testing.T) {
	env := testutil.NewEnv(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	_, err := runCtl(t, env, "warn", "a")
	assert.Error(t, err)
}

func TestBanRecordsOperator(t *testing.T) {
	env := testutil.NewEnv(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	testutil.Profiles(t, env.DB, "a")

	out, err := runCtl(t, env, "ban", "a", "--reason", "abuse", "--permanent", "--operator", "dana")
	require.NoError(t, err)
	assert.Contains(t, out, "banned a")

	var ban db.Ban
	require.NoError(t, env.DB.Where("user_id = ?", "a").First(&ban).Error)
	assert.Equal(t, "dana", ban.BannedBy)
	assert.Equal(t, "a@institution.domain", ban.Email)

	_, err = runCtl(t, env, "unban", "a")
	require.NoError(t, err)
	_, err = runCtl(t, env, "unban", "a")
	assert.Error(t, err)
}

func TestDeleteUserNeedsPassword(t *testing.T) {
	env := testutil.NewEnv(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	testutil.Profiles(t, env.DB, "a")
	hash, err := auth.HashOperatorPassword("s3cret")
	require.NoError(t, err)
	env.App.Config.Auth.OperatorPasswordHash = hash
	t.Setenv("CAMPUS_OPERATOR_PASSWORD", "")

	_, err = runCtl(t, env, "delete-user", "a")
	assert.Error(t, err)

	out, err := runCtl(t, env, "delete-user", "a", "--password", "s3cret")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted a")

	var n int64
	require.NoError(t, env.DB.Model(&db.Profile{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestDiceSweep(t *testing.T) {
	env := testutil.NewEnv(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	out, err := runCtl(t, env, "dice", "sweep")
	require.NoError(t, err)
	assert.Contains(t, out, "expired 0 dice matches")
}

func TestHashPassword(t *testing.T) {
	env := testutil.NewEnv(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	out, err := runCtl(t, env, "hash-password", "pw")
	require.NoError(t, err)
	require.NoError(t, auth.CheckOperatorPassword(string(bytes.TrimSpace([]byte(out))), "pw"))
}
