package player_test

import (
	"go.uber.org/mock/gomock"

	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/entities"
	"github.com/yinpa-bot/yinpa/internal/errors"
	"github.com/yinpa-bot/yinpa/internal/orchestrators/player"
	"github.com/yinpa-bot/yinpa/internal/pkg/rng"
	"github.com/yinpa-bot/yinpa/internal/repositories/user"
	"github.com/yinpa-bot/yinpa/internal/testutils"
)

func boardFor(out *player.LeaderboardOutput, metric player.Metric) *player.Board {
	for _, b := range out.Boards {
		if b.Metric == metric {
			return b
		}
	}
	return nil
}

func ids(entries []player.Entry) []int64 {
	out := make([]int64, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.UserID)
	}
	return out
}

func (s *OrchestratorTestSuite) leaderboardUsers() []*entities.User {
	m1 := testutils.CreateTestUser(1, "m1", 3)
	m2 := testutils.CreateTestUser(2, "m2", 9)
	m3 := testutils.CreateTestUser(3, "m3", 6)
	f1 := testutils.CreateTestUser(4, "f1", -4)
	f1.ChestSize = 20
	f2 := testutils.CreateTestUser(5, "f2", -8)
	f2.ChestSize = 10
	d1 := testutils.CreateTestDoubleUser(6, "d1", catalog.RaceHuman)
	d1.ChestSize = 15
	m2.EmitCount = 4
	f1.ReceiveCount = 4
	return []*entities.User{m1, m2, m3, f1, f2, d1}
}

func (s *OrchestratorTestSuite) TestLeaderboard() {
	o := s.newOrchestrator(rng.Max)
	s.mockRepo.EXPECT().ListAll(s.ctx, user.ListAllInput{WithParts: false}).
		Return(&user.ListAllOutput{Users: s.leaderboardUsers()}, nil)

	out, err := o.Leaderboard(s.ctx, &player.LeaderboardInput{ViewerID: 3, Limit: 4})
	s.Require().NoError(err)
	s.Require().NotNil(out.Viewer)
	s.Len(out.Boards, 11)

	length := boardFor(out, player.MetricLength)
	s.Equal(3, length.Total)
	s.Equal([]int64{2, 3}, ids(length.Top))
	s.Equal([]int64{3, 1}, ids(length.Bottom))
	s.Equal(2, length.ViewerRank)

	depth := boardFor(out, player.MetricDepth)
	s.Equal([]int64{5, 4}, ids(depth.Top))
	s.Zero(depth.ViewerRank)

	chest := boardFor(out, player.MetricChest)
	s.Equal(3, chest.Total)
	s.Equal([]int64{4, 6}, ids(chest.Top))
	s.Zero(chest.ViewerRank)

	emit := boardFor(out, player.MetricEmitCount)
	s.Len(emit.Top, 4)
	s.Equal(int64(2), emit.Top[0].UserID)
	s.Equal(2, emit.ViewerRank)
	s.Nil(emit.Bottom)
}

func (s *OrchestratorTestSuite) TestLeaderboard_TiesShareRank() {
	o := s.newOrchestrator(rng.Max)
	s.mockRepo.EXPECT().ListAll(s.ctx, gomock.Any()).
		Return(&user.ListAllOutput{Users: s.leaderboardUsers()}, nil)

	out, err := o.Leaderboard(s.ctx, &player.LeaderboardInput{ViewerID: 1})
	s.Require().NoError(err)
	s.Equal(1, boardFor(out, player.MetricPromiscuity).ViewerRank)
	s.Equal(1, boardFor(out, player.MetricPersistence).ViewerRank)
}

func (s *OrchestratorTestSuite) TestLeaderboard_RestrictTo() {
	o := s.newOrchestrator(rng.Max)
	s.mockRepo.EXPECT().ListAll(s.ctx, gomock.Any()).
		Return(&user.ListAllOutput{Users: s.leaderboardUsers()}, nil)

	out, err := o.Leaderboard(s.ctx, &player.LeaderboardInput{ViewerID: 99, RestrictTo: []int64{1, 3}})
	s.Require().NoError(err)
	s.Nil(out.Viewer)

	length := boardFor(out, player.MetricLength)
	s.Equal(2, length.Total)
	s.Equal([]int64{3, 1}, ids(length.Top))
	s.Zero(length.ViewerRank)
}

func (s *OrchestratorTestSuite) TestLeaderboard_RejectsNegativeLimit() {
	o := s.newOrchestrator(rng.Max)
	_, err := o.Leaderboard(s.ctx, &player.LeaderboardInput{Limit: -1})
	s.True(errors.IsInvalidArgument(err))
}
