package player

import (
	"context"
	"slices"

	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/entities"
	"github.com/yinpa-bot/yinpa/internal/errors"
	"github.com/yinpa-bot/yinpa/internal/repositories/user"
)

// DefaultLeaderboardLimit is the board size used when none is requested
const DefaultLeaderboardLimit = 40

type boardDef struct {
	metric   Metric
	value    func(*entities.User) float64
	eligible func(*entities.User) bool
	// ascending boards rank the smallest value first
	ascending bool
	twoSided  bool
}

func everyone(*entities.User) bool { return true }

func hasLength(u *entities.User) bool {
	return u.Sex == catalog.SexSingle && u.Length >= 0
}

func hasDepth(u *entities.User) bool {
	return u.Sex == catalog.SexSingle && u.Length < 0
}

func hasChest(u *entities.User) bool {
	return !hasLength(u)
}

var boardDefs = []boardDef{
	{metric: MetricLength, eligible: hasLength, twoSided: true,
		value: func(u *entities.User) float64 { return u.Length }},
	{metric: MetricDepth, eligible: hasDepth, twoSided: true, ascending: true,
		value: func(u *entities.User) float64 { return u.Length }},
	{metric: MetricChest, eligible: hasChest, twoSided: true,
		value: func(u *entities.User) float64 { return u.ChestSize }},
	{metric: MetricPersistence, eligible: everyone, twoSided: true,
		value: func(u *entities.User) float64 { return u.Persistence }},
	{metric: MetricPromiscuity, eligible: everyone,
		value: func(u *entities.User) float64 { return u.Promiscuity }},
	{metric: MetricReceiveVolume, eligible: everyone,
		value: func(u *entities.User) float64 { return u.ReceiveVolume }},
	{metric: MetricEmitVolume, eligible: everyone,
		value: func(u *entities.User) float64 { return u.EmitVolume }},
	{metric: MetricReceiveCount, eligible: everyone,
		value: func(u *entities.User) float64 { return float64(u.ReceiveCount) }},
	{metric: MetricEmitCount, eligible: everyone,
		value: func(u *entities.User) float64 { return float64(u.EmitCount) }},
	{metric: MetricActiveTime, eligible: everyone,
		value: func(u *entities.User) float64 { return u.ActiveTime }},
	{metric: MetricPassiveTime, eligible: everyone,
		value: func(u *entities.User) float64 { return u.PassiveTime }},
}

// Leaderboard ranks every metric and locates the viewer on each board
func (o *orchestrator) Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	limit := input.Limit
	if limit == 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit < 0 {
		return nil, errors.InvalidArgumentf("limit must be positive, got %d", limit)
	}

	all, err := o.userRepo.ListAll(ctx, user.ListAllInput{WithParts: false})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := all.Users
	if len(input.RestrictTo) > 0 {
		users = slices.DeleteFunc(slices.Clone(users), func(u *entities.User) bool {
			return !slices.Contains(input.RestrictTo, u.ID)
		})
	}

	var viewer *entities.User
	for _, u := range all.Users {
		if u.ID == input.ViewerID {
			viewer = u
			break
		}
	}

	out := &LeaderboardOutput{Viewer: viewer}
	for _, def := range boardDefs {
		out.Boards = append(out.Boards, def.build(users, viewer, limit))
	}
	return out, nil
}

func (d boardDef) better(a, b *entities.User) bool {
	if d.ascending {
		return d.value(a) < d.value(b)
	}
	return d.value(a) > d.value(b)
}

func (d boardDef) build(users []*entities.User, viewer *entities.User, limit int) *Board {
	pool := make([]*entities.User, 0, len(users))
	for _, u := range users {
		if d.eligible(u) {
			pool = append(pool, u)
		}
	}

	slices.SortStableFunc(pool, func(a, b *entities.User) int {
		switch {
		case d.better(a, b):
			return -1
		case d.better(b, a):
			return 1
		default:
			return 0
		}
	})

	board := &Board{Metric: d.metric, Total: len(pool)}

	size := limit
	if d.twoSided {
		size = limit / 2
	}
	board.Top = d.entries(pool[:min(size, len(pool))])
	if d.twoSided {
		board.Bottom = d.entries(pool[max(0, len(pool)-size):])
	}

	if viewer != nil && d.eligible(viewer) {
		rank := 1
		for _, u := range pool {
			if d.better(u, viewer) {
				rank++
			}
		}
		board.ViewerRank = rank
	}
	return board
}

func (d boardDef) entries(users []*entities.User) []Entry {
	out := make([]Entry, 0, len(users))
	for _, u := range users {
		out = append(out, Entry{UserID: u.ID, Name: u.Name, Value: d.value(u)})
	}
	return out
}
