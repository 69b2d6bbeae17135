package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sandeepkv93/zenith/internal/model"
	_ "modernc.org/sqlite"
)

const (
	// DriverCGO is the mattn/go-sqlite3 driver.
	DriverCGO = "sqlite3"
	// DriverPure is the cgo-free modernc.org/sqlite driver.
	DriverPure = "sqlite"
)

// sqliteTimeLayout is fixed width so stored timestamps sort lexically.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const taskColumns = `id, title, description, status, priority, xp_reward, due_date, created_at, completed_at`

type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

var (
	_ Store         = (*SQLiteStore)(nil)
	_ StatsStore    = (*SQLiteStore)(nil)
	_ SettingsStore = (*SQLiteStore)(nil)
)

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteStore{db: db, now: time.Now}, nil
}

// Open opens (creating if needed) the database file at path, applies the
// schema and upgrades legacy columns.
func Open(ctx context.Context, driver, path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage: db path is empty")
	}
	if driver == "" {
		driver = DriverCGO
	}
	if driver != DriverCGO && driver != DriverPure {
		return nil, fmt.Errorf("storage: unknown sqlite driver %q", driver)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open(driver, sqliteDSN(driver, path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureTaskColumns(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	store, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func sqliteDSN(driver, path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	if driver == DriverCGO {
		return path + "?_busy_timeout=5000"
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: path}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) CreateTask(ctx context.Context, in model.Task) error {
	if err := in.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.Title, in.Description, string(in.Status), string(in.Priority), in.XPReward,
		nullTime(in.DueDate), mustTime(in.CreatedAt), nullTime(in.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetTask(ctx context.Context, id string) (model.Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, ErrNotFound
		}
		return model.Task{}, err
	}
	return task, nil
}

func (s *SQLiteStore) ListTasks(ctx context.Context) ([]model.Task, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) UpdateTaskStatus(ctx context.Context, id string, status model.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidStatus, status)
	}
	var completed any
	if status == model.StatusDone {
		completed = mustTime(s.now())
	}
	res, err := s.db.ExecContext(ctx, `UPDATE tasks SET status = ?, completed_at = ? WHERE id = ?`,
		string(status), completed, id)
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	return checkRowsAffected(res)
}

func (s *SQLiteStore) UpdateTaskContent(ctx context.Context, id, title, description string, priority model.Priority, due *time.Time) error {
	if !priority.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidPriority, priority)
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET title = ?, description = ?, priority = ?, due_date = ?
		WHERE id = ?`,
		title, description, string(priority), nullTime(due), id,
	)
	if err != nil {
		return fmt.Errorf("update task content: %w", err)
	}
	return checkRowsAffected(res)
}

func (s *SQLiteStore) DeleteTask(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return checkRowsAffected(res)
}

func (s *SQLiteStore) GetProfile(ctx context.Context) (model.UserProfile, error) {
	return getProfile(ctx, s.db)
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getProfile(ctx context.Context, q queryRower) (model.UserProfile, error) {
	var p model.UserProfile
	err := q.QueryRowContext(ctx, `
		SELECT id, level, current_xp, next_level_xp FROM user_profile WHERE id = ?`, model.ProfileID,
	).Scan(&p.ID, &p.Level, &p.CurrentXP, &p.NextLevelXP)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.UserProfile{}, ErrNotFound
		}
		return model.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// AwardXP reads, levels and writes the profile inside one transaction.
func (s *SQLiteStore) AwardXP(ctx context.Context, amount int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin award xp: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	profile, err := getProfile(ctx, tx)
	if err != nil {
		return err
	}
	profile = profile.AwardXP(amount)
	if _, err := tx.ExecContext(ctx, `
		UPDATE user_profile SET level = ?, current_xp = ?, next_level_xp = ? WHERE id = ?`,
		profile.Level, profile.CurrentXP, profile.NextLevelXP, model.ProfileID,
	); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit award xp: %w", err)
	}
	return nil
}

func (s *SQLiteStore) WeeklyCompletionStats(ctx context.Context) ([]model.WeeklyStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT substr(completed_at, 1, 10) AS day, COUNT(*)
		FROM tasks
		WHERE status = ? AND completed_at IS NOT NULL
		GROUP BY day
		ORDER BY day DESC
		LIMIT 7`, string(model.StatusDone))
	if err != nil {
		return nil, fmt.Errorf("weekly stats: %w", err)
	}
	defer rows.Close()

	out := make([]model.WeeklyStat, 0, 7)
	for rows.Next() {
		var st model.WeeklyStat
		if err := rows.Scan(&st.Day, &st.Count); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// CompletionStreak counts consecutive completion days ending today or
// yesterday (UTC).
func (s *SQLiteStore) CompletionStreak(ctx context.Context, now time.Time) (int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT substr(completed_at, 1, 10) AS day
		FROM tasks
		WHERE status = ? AND completed_at IS NOT NULL
		ORDER BY day DESC`, string(model.StatusDone))
	if err != nil {
		return 0, fmt.Errorf("streak days: %w", err)
	}
	defer rows.Close()

	days := make([]string, 0)
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return 0, err
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	return streakFromDays(days, now), nil
}

func streakFromDays(days []string, now time.Time) int {
	if len(days) == 0 {
		return 0
	}
	check := now.UTC()
	today := check.Format(model.DueDateLayout)
	yesterday := check.AddDate(0, 0, -1).Format(model.DueDateLayout)
	switch days[0] {
	case today:
	case yesterday:
		check = check.AddDate(0, 0, -1)
	default:
		return 0
	}
	streak := 0
	for _, day := range days {
		if day != check.Format(model.DueDateLayout) {
			break
		}
		streak++
		check = check.AddDate(0, 0, -1)
	}
	return streak
}

func (s *SQLiteStore) CompletedOn(ctx context.Context, day time.Time) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM tasks
		WHERE status = ? AND substr(completed_at, 1, 10) = ?`,
		string(model.StatusDone), day.UTC().Format(model.DueDateLayout),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("completed on: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) GetSetting(ctx context.Context, key string) (string, bool, error) {
	var value sql.NullString
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get setting %s: %w", key, err)
	}
	return value.String, true, nil
}

func (s *SQLiteStore) SetSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var out model.Task
	var description sql.NullString
	var status, priority sql.NullString
	var xp sql.NullInt64
	var due sql.NullString
	var created string
	var completed sql.NullString
	if err := s.Scan(&out.ID, &out.Title, &description, &status, &priority, &xp, &due, &created, &completed); err != nil {
		return model.Task{}, err
	}
	out.Description = description.String

	out.Status = model.StatusTodo
	if status.Valid && status.String != "" {
		st, err := model.ParseStatus(status.String)
		if err != nil {
			return model.Task{}, fmt.Errorf("task %s: %w", out.ID, err)
		}
		out.Status = st
	}
	out.Priority = model.PriorityMedium
	if priority.Valid && priority.String != "" {
		p, err := model.ParsePriority(priority.String)
		if err != nil {
			return model.Task{}, fmt.Errorf("task %s: %w", out.ID, err)
		}
		out.Priority = p
	}
	out.XPReward = model.DefaultXPReward
	if xp.Valid && xp.Int64 > 0 {
		out.XPReward = int(xp.Int64)
	}

	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return model.Task{}, err
	}
	dueAt, err := parseNullableTime(due)
	if err != nil {
		return model.Task{}, err
	}
	completedAt, err := parseNullableTime(completed)
	if err != nil {
		return model.Task{}, err
	}
	out.CreatedAt = createdAt
	out.DueDate = dueAt
	out.CompletedAt = completedAt
	return out, nil
}

func nullTime(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.UTC().Format(sqliteTimeLayout)
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

// Parsing accepts any RFC 3339 shape so rows written by older builds load.
func parseNullableTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	tm, err := time.Parse(time.RFC3339Nano, v.String)
	if err != nil {
		return nil, err
	}
	tm = tm.UTC()
	return &tm, nil
}

func parseRequiredTime(v string) (time.Time, error) {
	tm, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	return tm.UTC(), nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
