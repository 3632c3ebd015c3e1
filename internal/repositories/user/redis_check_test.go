package user_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yinpa-bot/yinpa/internal/errors"
	"github.com/yinpa-bot/yinpa/internal/repositories/user"
	"github.com/yinpa-bot/yinpa/internal/testutils"
)

func TestCheckRedis(t *testing.T) {
	var mr *miniredis.Miniredis
	client, cleanup := testutils.CreateTestRedisClientWithContext(t, func(m *miniredis.Miniredis) { mr = m })
	defer cleanup()
	ctx := context.Background()

	repo, err := user.NewRedis(&user.RedisConfig{Client: client})
	require.NoError(t, err)
	_, err = repo.Save(ctx, user.SaveInput{User: testutils.CreateTestUser(1, "alice", 5)})
	require.NoError(t, err)
	_, err = repo.Save(ctx, user.SaveInput{User: testutils.CreateTestUser(2, "bob", -5)})
	require.NoError(t, err)
	_, err = repo.Save(ctx, user.SaveInput{User: testutils.CreateTestUser(3, "cleo", 2)})
	require.NoError(t, err)

	require.NoError(t, mr.Set("user:7", "{not json"))
	require.NoError(t, mr.Set("user:8", `{"id":8,"name":"x","inventory":"{\"77\":1}"}`))
	require.NoError(t, mr.Set("user:9", `{"id":10,"name":"y","inventory":"{}"}`))
	mr.HSet("user:3:parts", "1", "oops")
	_, err = mr.SAdd("user:ids", "7", "8", "9")
	require.NoError(t, err)

	report, err := user.CheckRedis(ctx, client)
	require.NoError(t, err)

	assert.Equal(t, 6, report.Checked)
	reasons := map[int64]string{}
	for _, c := range report.Corrupt {
		reasons[c.UserID] = c.Reason
	}
	assert.Len(t, reasons, 4)
	assert.Equal(t, "corrupted JSON", reasons[7])
	assert.Contains(t, reasons[8], "bad inventory")
	assert.Contains(t, reasons[9], "does not match key")
	assert.Equal(t, "corrupted part 1", reasons[3])

	require.NoError(t, user.PurgeRedis(ctx, client, report.Corrupt))

	assert.False(t, mr.Exists("user:7"))
	assert.False(t, mr.Exists("user:3:parts"))
	assert.True(t, mr.Exists("user:1"))
	members, err := mr.Members("user:ids")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "2"}, members)

	report, err = user.CheckRedis(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Checked)
	assert.Empty(t, report.Corrupt)
}

func TestCheckRedis_NilClient(t *testing.T) {
	_, err := user.CheckRedis(context.Background(), nil)
	assert.True(t, errors.IsInvalidArgument(err))

	assert.True(t, errors.IsInvalidArgument(user.PurgeRedis(context.Background(), nil, nil)))
}
