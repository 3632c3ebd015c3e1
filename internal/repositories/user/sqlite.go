package user

import (
	"context"
	"database/sql"
	stderrors "errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/entities"
	"github.com/yinpa-bot/yinpa/internal/errors"
	"github.com/yinpa-bot/yinpa/internal/repositories/user/migrations"
)

const userColumns = `id, name, sex, race, hp, last_hp_update, persistence, length, length2,
	chest_size, emit_count, emit_volume, receive_count, receive_volume, active_time,
	passive_time, promiscuity, inventory, temp_sensitivity, temp_duration`

// SQLiteConfig contains configuration for the SQLite user repository.
type SQLiteConfig struct {
	Path string
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return errors.InvalidArgument("path cannot be empty")
	}
	return nil
}

// SQLiteRepository persists users in a local SQLite database
type SQLiteRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLite opens the database at cfg.Path and applies the embedded
// migrations.
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dsn := filepath.Clean(cfg.Path) +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite db")
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Get implements Repository
func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, input.ID)
	u, err := scanUser(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.UserNotFound(input.ID)
		}
		return nil, err
	}
	if err := r.loadParts(ctx, u); err != nil {
		return nil, err
	}
	return &GetOutput{User: u}, nil
}

// GetByName implements Repository
func (r *SQLiteRepository) GetByName(ctx context.Context, input GetByNameInput) (*GetByNameOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE name = ?`, input.Name)
	u, err := scanUser(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("no user is named %s", input.Name)
		}
		return nil, err
	}
	if err := r.loadParts(ctx, u); err != nil {
		return nil, err
	}
	return &GetByNameOutput{User: u}, nil
}

// Save implements Repository
func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.User == nil {
		return nil, errors.InvalidArgument(errUserNil)
	}
	if input.User.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	u := input.User
	u.Normalize()
	inventory, err := u.Inventory.Encode()
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin save")
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, sex = excluded.sex, race = excluded.race, hp = excluded.hp,
			last_hp_update = excluded.last_hp_update, persistence = excluded.persistence,
			length = excluded.length, length2 = excluded.length2, chest_size = excluded.chest_size,
			emit_count = excluded.emit_count, emit_volume = excluded.emit_volume,
			receive_count = excluded.receive_count, receive_volume = excluded.receive_volume,
			active_time = excluded.active_time, passive_time = excluded.passive_time,
			promiscuity = excluded.promiscuity, inventory = excluded.inventory,
			temp_sensitivity = excluded.temp_sensitivity, temp_duration = excluded.temp_duration`,
		u.ID, u.Name, int(u.Sex), int(u.Race), u.HP, toMillis(u.LastHPUpdate), u.Persistence,
		u.Length, u.Length2, u.ChestSize, u.EmitCount, u.EmitVolume, u.ReceiveCount,
		u.ReceiveVolume, u.ActiveTime, u.PassiveTime, u.Promiscuity, inventory,
		u.TempSensitivity, u.TempDuration,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.AlreadyExistsf("name %s is taken", u.Name)
		}
		return nil, errors.Wrapf(err, "failed to save user %d", u.ID)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM body_parts WHERE user_id = ?`, u.ID); err != nil {
		return nil, errors.Wrapf(err, "failed to clear parts of user %d", u.ID)
	}
	for _, state := range u.OrderedParts() {
		_, err := tx.ExecContext(ctx, `INSERT INTO body_parts
			(user_id, part_id, sensitivity, soft_bonus, normal_bonus, severe_bonus)
			VALUES (?, ?, ?, ?, ?, ?)`,
			u.ID, int(state.PartID), state.Sensitivity, state.SoftBonus, state.NormalBonus, state.SevereBonus)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to save part %d of user %d", state.PartID, u.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit user %d", u.ID)
	}

	slog.DebugContext(ctx, "saved user",
		"user_id", u.ID,
		"hp", u.HP)

	return &SaveOutput{User: u}, nil
}

// NameExists implements Repository
func (r *SQLiteRepository) NameExists(ctx context.Context, input NameExistsInput) (*NameExistsOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM users WHERE name = ? AND id != ?`, input.Name, input.ExcludingID).Scan(&count)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check name %s", input.Name)
	}
	return &NameExistsOutput{Exists: count > 0}, nil
}

// Delete implements Repository
func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin delete")
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{
		`DELETE FROM body_parts WHERE user_id = ?`,
		`DELETE FROM action_log WHERE initiator_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, input.ID); err != nil {
			return nil, errors.Wrapf(err, "failed to delete rows of user %d", input.ID)
		}
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete user %d", input.ID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete user %d", input.ID)
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit delete of user %d", input.ID)
	}
	return &DeleteOutput{Deleted: n > 0}, nil
}

// AppendLog implements Repository
func (r *SQLiteRepository) AppendLog(ctx context.Context, input AppendLogInput) (*AppendLogOutput, error) {
	if input.Entry == nil {
		return nil, errors.InvalidArgument(errEntryNil)
	}

	e := input.Entry
	_, err := r.db.ExecContext(ctx, `INSERT INTO action_log
		(id, initiator_id, action_id, target_id, target_part_id, context, volume, elapsed_time, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.InitiatorID, int(e.ActionID), e.TargetID, int(e.TargetPartID), e.Context,
		e.Volume, e.ElapsedTime, toMillis(e.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.AlreadyExistsf("action log entry %s already exists", e.ID)
		}
		return nil, errors.Wrapf(err, "failed to append action log for user %d", e.InitiatorID)
	}
	return &AppendLogOutput{}, nil
}

// ListLogs implements Repository
func (r *SQLiteRepository) ListLogs(ctx context.Context, input ListLogsInput) (*ListLogsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx, `SELECT id, initiator_id, action_id, target_id, target_part_id,
			context, volume, elapsed_time, created_at
		FROM (SELECT * FROM action_log WHERE initiator_id = ? ORDER BY seq DESC LIMIT ?)
		ORDER BY seq ASC`, input.InitiatorID, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list action log for user %d", input.InitiatorID)
	}
	defer func() { _ = rows.Close() }()

	var entries []*entities.ActionLogEntry
	for rows.Next() {
		var (
			e                entities.ActionLogEntry
			actionID, partID int
			createdAt        int64
		)
		if err := rows.Scan(&e.ID, &e.InitiatorID, &actionID, &e.TargetID, &partID,
			&e.Context, &e.Volume, &e.ElapsedTime, &createdAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan action log entry")
		}
		e.ActionID = catalog.ActionID(actionID)
		e.TargetPartID = catalog.PartID(partID)
		e.CreatedAt = fromMillis(createdAt)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read action log")
	}
	return &ListLogsOutput{Entries: entries}, nil
}

// ListAll implements Repository
func (r *SQLiteRepository) ListAll(ctx context.Context, input ListAllInput) (*ListAllOutput, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	var users []*entities.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			_ = rows.Close()
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, errors.Wrap(err, "failed to read users")
	}
	_ = rows.Close()

	if input.WithParts {
		for _, u := range users {
			if err := r.loadParts(ctx, u); err != nil {
				return nil, err
			}
		}
	}
	return &ListAllOutput{Users: users}, nil
}

// GetRandom implements Repository
func (r *SQLiteRepository) GetRandom(ctx context.Context, _ GetRandomInput) (*GetRandomOutput, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM users ORDER BY RANDOM() LIMIT 1`).Scan(&id)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound(errNoneJoined)
		}
		return nil, errors.Wrap(err, "failed to pick a random user")
	}

	out, err := r.Get(ctx, GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	return &GetRandomOutput{User: out.User}, nil
}

func (r *SQLiteRepository) loadParts(ctx context.Context, u *entities.User) error {
	rows, err := r.db.QueryContext(ctx, `SELECT part_id, sensitivity, soft_bonus, normal_bonus, severe_bonus
		FROM body_parts WHERE user_id = ?`, u.ID)
	if err != nil {
		return errors.Wrapf(err, "failed to get parts of user %d", u.ID)
	}
	defer func() { _ = rows.Close() }()

	u.BodyParts = make(map[catalog.PartID]*entities.BodyPartState)
	for rows.Next() {
		var (
			state  entities.BodyPartState
			partID int
		)
		if err := rows.Scan(&partID, &state.Sensitivity, &state.SoftBonus, &state.NormalBonus, &state.SevereBonus); err != nil {
			return errors.Wrap(err, "failed to scan part")
		}
		state.PartID = catalog.PartID(partID)
		if _, err := catalog.BodyPartByID(state.PartID); err != nil {
			slog.WarnContext(ctx, "dropping unknown body part", "user_id", u.ID, "part_id", partID)
			continue
		}
		u.BodyParts[state.PartID] = &state
	}
	if err := rows.Err(); err != nil {
		return errors.Wrap(err, "failed to read parts")
	}
	return u.BackfillBodyParts()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*entities.User, error) {
	var (
		u              entities.User
		sex, race      int
		lastHPUpdate   int64
		inventoryField string
	)
	err := row.Scan(&u.ID, &u.Name, &sex, &race, &u.HP, &lastHPUpdate, &u.Persistence,
		&u.Length, &u.Length2, &u.ChestSize, &u.EmitCount, &u.EmitVolume, &u.ReceiveCount,
		&u.ReceiveVolume, &u.ActiveTime, &u.PassiveTime, &u.Promiscuity, &inventoryField,
		&u.TempSensitivity, &u.TempDuration)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to scan user")
	}

	u.Sex = catalog.Sex(sex)
	u.Race = catalog.RaceID(race)
	u.LastHPUpdate = fromMillis(lastHPUpdate)
	u.Inventory, err = entities.DecodeInventory(inventoryField)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UTC().UnixMilli()
}

func fromMillis(v int64) time.Time {
	if v == 0 {
		return time.Time{}
	}
	return time.UnixMilli(v).UTC()
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if stderrors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
