package user

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/entities"
	"github.com/yinpa-bot/yinpa/internal/errors"
	redisclient "github.com/yinpa-bot/yinpa/internal/redis"
)

const (
	userKeyPrefix      = entities.EntityTypeUser + ":"
	nameIndexPrefix    = "user:name:"
	userIDsKey         = "user:ids"
	actionLogKeyPrefix = "actionlog:"

	// Error messages
	errUserNil    = "user cannot be nil"
	errNameEmpty  = "name cannot be empty"
	errEntryNil   = "action log entry cannot be nil"
	errNoneJoined = "no users have joined"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis user repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed user repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// userRecord is what gets serialized under user:{id}. Part states live in
// their own hash so a part write does not rewrite the whole record.
type userRecord struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	Sex             catalog.Sex    `json:"sex"`
	Race            catalog.RaceID `json:"race"`
	HP              int            `json:"hp"`
	LastHPUpdate    time.Time      `json:"last_hp_update"`
	Persistence     float64        `json:"persistence"`
	Length          float64        `json:"length"`
	Length2         float64        `json:"length2"`
	ChestSize       float64        `json:"chest_size"`
	EmitCount       int            `json:"emit_count"`
	EmitVolume      float64        `json:"emit_volume"`
	ReceiveCount    int            `json:"receive_count"`
	ReceiveVolume   float64        `json:"receive_volume"`
	ActiveTime      float64        `json:"active_time"`
	PassiveTime     float64        `json:"passive_time"`
	Promiscuity     float64        `json:"promiscuity"`
	Inventory       string         `json:"inventory"`
	TempSensitivity float64        `json:"temp_sensitivity"`
	TempDuration    float64        `json:"temp_duration"`
}

func toRecord(u *entities.User) (*userRecord, error) {
	inventory, err := u.Inventory.Encode()
	if err != nil {
		return nil, err
	}
	return &userRecord{
		ID: u.ID, Name: u.Name, Sex: u.Sex, Race: u.Race,
		HP: u.HP, LastHPUpdate: u.LastHPUpdate.UTC(), Persistence: u.Persistence,
		Length: u.Length, Length2: u.Length2, ChestSize: u.ChestSize,
		EmitCount: u.EmitCount, EmitVolume: u.EmitVolume,
		ReceiveCount: u.ReceiveCount, ReceiveVolume: u.ReceiveVolume,
		ActiveTime: u.ActiveTime, PassiveTime: u.PassiveTime, Promiscuity: u.Promiscuity,
		Inventory:       inventory,
		TempSensitivity: u.TempSensitivity, TempDuration: u.TempDuration,
	}, nil
}

func (rec *userRecord) toEntity() (*entities.User, error) {
	inventory, err := entities.DecodeInventory(rec.Inventory)
	if err != nil {
		return nil, err
	}
	return &entities.User{
		ID: rec.ID, Name: rec.Name, Sex: rec.Sex, Race: rec.Race,
		HP: rec.HP, LastHPUpdate: rec.LastHPUpdate, Persistence: rec.Persistence,
		Length: rec.Length, Length2: rec.Length2, ChestSize: rec.ChestSize,
		EmitCount: rec.EmitCount, EmitVolume: rec.EmitVolume,
		ReceiveCount: rec.ReceiveCount, ReceiveVolume: rec.ReceiveVolume,
		ActiveTime: rec.ActiveTime, PassiveTime: rec.PassiveTime, Promiscuity: rec.Promiscuity,
		Inventory:       inventory,
		TempSensitivity: rec.TempSensitivity, TempDuration: rec.TempDuration,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	u, err := r.load(ctx, input.ID, true)
	if err != nil {
		return nil, err
	}
	return &GetOutput{User: u}, nil
}

func (r *redisRepository) GetByName(ctx context.Context, input GetByNameInput) (*GetByNameOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	id, err := r.client.Get(ctx, nameKey(input.Name)).Int64()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no user is named %s", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to resolve name %s", input.Name)
	}

	u, err := r.load(ctx, id, true)
	if err != nil {
		if errors.IsNotFound(err) {
			slog.WarnContext(ctx, "name index points at a missing user",
				"name", input.Name,
				"user_id", id)
			return nil, errors.NotFoundf("no user is named %s", input.Name)
		}
		return nil, err
	}
	return &GetByNameOutput{User: u}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.User == nil {
		return nil, errors.InvalidArgument(errUserNil)
	}
	if input.User.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	u := input.User
	u.Normalize()

	previous, err := r.readRecord(ctx, u.ID)
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}

	rec, err := toRecord(u)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal user data")
	}

	parts := make(map[string]interface{}, len(u.BodyParts))
	for id, state := range u.BodyParts {
		encoded, err := json.Marshal(state)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal part %d", id)
		}
		parts[strconv.Itoa(int(id))] = encoded
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, userKey(u.ID), data, 0)
	pipe.Del(ctx, partsKey(u.ID))
	if len(parts) > 0 {
		pipe.HSet(ctx, partsKey(u.ID), parts)
	}
	if previous != nil && previous.Name != u.Name {
		pipe.Del(ctx, nameKey(previous.Name))
	}
	pipe.Set(ctx, nameKey(u.Name), u.ID, 0)
	pipe.SAdd(ctx, userIDsKey, u.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save user %d", u.ID)
	}

	slog.DebugContext(ctx, "saved user",
		"user_id", u.ID,
		"hp", u.HP)

	return &SaveOutput{User: u}, nil
}

func (r *redisRepository) NameExists(ctx context.Context, input NameExistsInput) (*NameExistsOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	id, err := r.client.Get(ctx, nameKey(input.Name)).Int64()
	if err != nil {
		if err == redis.Nil {
			return &NameExistsOutput{Exists: false}, nil
		}
		return nil, errors.Wrapf(err, "failed to check name %s", input.Name)
	}

	return &NameExistsOutput{Exists: id != input.ExcludingID}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	rec, err := r.readRecord(ctx, input.ID)
	if err != nil {
		if errors.IsNotFound(err) {
			return &DeleteOutput{Deleted: false}, nil
		}
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, userKey(input.ID), partsKey(input.ID), actionLogKey(input.ID))
	if idx, err := r.client.Get(ctx, nameKey(rec.Name)).Int64(); err == nil && idx == input.ID {
		pipe.Del(ctx, nameKey(rec.Name))
	}
	pipe.SRem(ctx, userIDsKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete user %d", input.ID)
	}

	return &DeleteOutput{Deleted: true}, nil
}

func (r *redisRepository) AppendLog(ctx context.Context, input AppendLogInput) (*AppendLogOutput, error) {
	if input.Entry == nil {
		return nil, errors.InvalidArgument(errEntryNil)
	}

	data, err := json.Marshal(input.Entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal action log entry")
	}

	if err := r.client.RPush(ctx, actionLogKey(input.Entry.InitiatorID), data).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to append action log for user %d", input.Entry.InitiatorID)
	}

	return &AppendLogOutput{}, nil
}

func (r *redisRepository) ListLogs(ctx context.Context, input ListLogsInput) (*ListLogsOutput, error) {
	start := int64(0)
	if input.Limit > 0 {
		start = -int64(input.Limit)
	}

	raw, err := r.client.LRange(ctx, actionLogKey(input.InitiatorID), start, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list action log for user %d", input.InitiatorID)
	}

	entries := make([]*entities.ActionLogEntry, 0, len(raw))
	for _, item := range raw {
		var entry entities.ActionLogEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal action log entry")
		}
		entries = append(entries, &entry)
	}

	return &ListLogsOutput{Entries: entries}, nil
}

func (r *redisRepository) ListAll(ctx context.Context, input ListAllInput) (*ListAllOutput, error) {
	members, err := r.client.SMembers(ctx, userIDsKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list user ids")
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid user id %q in index", m)
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)

	users := make([]*entities.User, 0, len(ids))
	for _, id := range ids {
		u, err := r.load(ctx, id, input.WithParts)
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "user index points at a missing user", "user_id", id)
				continue
			}
			return nil, err
		}
		users = append(users, u)
	}

	return &ListAllOutput{Users: users}, nil
}

func (r *redisRepository) GetRandom(ctx context.Context, _ GetRandomInput) (*GetRandomOutput, error) {
	member, err := r.client.SRandMember(ctx, userIDsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound(errNoneJoined)
		}
		return nil, errors.Wrapf(err, "failed to pick a random user")
	}
	if member == "" {
		return nil, errors.NotFound(errNoneJoined)
	}

	id, err := strconv.ParseInt(member, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid user id %q in index", member)
	}

	u, err := r.load(ctx, id, true)
	if err != nil {
		return nil, err
	}
	return &GetRandomOutput{User: u}, nil
}

func (r *redisRepository) readRecord(ctx context.Context, id int64) (*userRecord, error) {
	result, err := r.client.Get(ctx, userKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.UserNotFound(id)
		}
		return nil, errors.Wrapf(err, "failed to get user %d", id)
	}

	var rec userRecord
	if err := json.Unmarshal([]byte(result), &rec); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal user data")
	}
	return &rec, nil
}

func (r *redisRepository) load(ctx context.Context, id int64, withParts bool) (*entities.User, error) {
	rec, err := r.readRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	u, err := rec.toEntity()
	if err != nil {
		return nil, err
	}
	if !withParts {
		return u, nil
	}

	raw, err := r.client.HGetAll(ctx, partsKey(id)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get parts of user %d", id)
	}

	u.BodyParts = make(map[catalog.PartID]*entities.BodyPartState, len(raw))
	for field, value := range raw {
		var state entities.BodyPartState
		if err := json.Unmarshal([]byte(value), &state); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal part %s of user %d", field, id)
		}
		if _, err := catalog.BodyPartByID(state.PartID); err != nil {
			slog.WarnContext(ctx, "dropping unknown body part", "user_id", id, "part_id", state.PartID)
			continue
		}
		u.BodyParts[state.PartID] = &state
	}
	if err := u.BackfillBodyParts(); err != nil {
		return nil, err
	}

	return u, nil
}

func userKey(id int64) string {
	return entities.EntityKey(entities.UserRef(id))
}

func partsKey(id int64) string {
	return userKey(id) + ":parts"
}

func nameKey(name string) string {
	return nameIndexPrefix + name
}

func actionLogKey(initiatorID int64) string {
	return fmt.Sprintf("%s%d", actionLogKeyPrefix, initiatorID)
}
