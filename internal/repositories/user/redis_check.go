package user

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/yinpa-bot/yinpa/internal/entities"
	"github.com/yinpa-bot/yinpa/internal/errors"
	redisclient "github.com/yinpa-bot/yinpa/internal/redis"
)

// Corruption is one user record in redis that can no longer be loaded
type Corruption struct {
	UserID int64
	Key    string
	Reason string
}

// CheckReport summarizes a scan of the redis user records
type CheckReport struct {
	Checked int
	Corrupt []Corruption
}

// CheckRedis scans every user:{id} record and reports the ones whose JSON,
// inventory or body part states fail to decode. Index keys are skipped.
func CheckRedis(ctx context.Context, client redisclient.Client) (*CheckReport, error) {
	if client == nil {
		return nil, errors.InvalidArgument("client cannot be nil")
	}

	report := &CheckReport{}
	iter := client.Scan(ctx, 0, userKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		id, err := strconv.ParseInt(strings.TrimPrefix(key, userKeyPrefix), 10, 64)
		if err != nil {
			// user:name:*, user:ids and user:{id}:parts
			continue
		}
		report.Checked++

		if reason := checkRecord(ctx, client, key, id); reason != "" {
			report.Corrupt = append(report.Corrupt, Corruption{UserID: id, Key: key, Reason: reason})
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan user records")
	}

	return report, nil
}

func checkRecord(ctx context.Context, client redisclient.Client, key string, id int64) string {
	data, err := client.Get(ctx, key).Result()
	if err != nil {
		return fmt.Sprintf("unreadable: %v", err)
	}

	var rec userRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return "corrupted JSON"
	}
	if rec.ID != id {
		return fmt.Sprintf("record id %d does not match key", rec.ID)
	}
	if _, err := entities.DecodeInventory(rec.Inventory); err != nil {
		return fmt.Sprintf("bad inventory %q", rec.Inventory)
	}

	parts, err := client.HGetAll(ctx, partsKey(id)).Result()
	if err != nil {
		return fmt.Sprintf("unreadable parts: %v", err)
	}
	for field, value := range parts {
		var state entities.BodyPartState
		if err := json.Unmarshal([]byte(value), &state); err != nil {
			return fmt.Sprintf("corrupted part %s", field)
		}
	}
	return ""
}

// PurgeRedis deletes the records a check reported along with their part
// hashes and id set membership. Name index entries are left for lookups to
// skip as stale.
func PurgeRedis(ctx context.Context, client redisclient.Client, corrupt []Corruption) error {
	if client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if len(corrupt) == 0 {
		return nil
	}

	pipe := client.TxPipeline()
	for _, c := range corrupt {
		pipe.Del(ctx, userKey(c.UserID), partsKey(c.UserID))
		pipe.SRem(ctx, userIDsKey, strconv.FormatInt(c.UserID, 10))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to delete corrupted records")
	}
	return nil
}
