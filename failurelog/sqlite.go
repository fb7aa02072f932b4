package failurelog

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/glebarez/go-sqlite"
	"github.com/pkg/errors"
	"github.com/tencent-connect/botgo/log"
)

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS failures (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		action TEXT NOT NULL,
		error TEXT NOT NULL,
		created_at TEXT NOT NULL
	);`

const insertFailureSQL = `INSERT INTO failures (action, error, created_at) VALUES (?, ?, ?);`

const queryFailuresSQL = `SELECT id, action, error, created_at FROM failures ORDER BY id;`

// Failure 表中的一条记录
type Failure struct {
	ID        int64
	Action    string
	Error     string
	CreatedAt time.Time
}

// SQLiteRecorder 把失败写入 sqlite 的 failures 表，只追加不修改
type SQLiteRecorder struct {
	db *sql.DB
}

// OpenSQLite 打开数据库并建表
func OpenSQLite(path string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failurelog: open %s", path)
	}
	// sqlite 单写者，避免并发写入时 SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failurelog: create failures table")
	}
	return &SQLiteRecorder{db: db}, nil
}

// RecordFailure 实现 Recorder
func (r *SQLiteRecorder) RecordFailure(ctx context.Context, action string, err error) {
	// 请求可能正是因为 ctx 取消而失败，写库不能跟着取消
	ctx = context.WithoutCancel(ctx)
	createdAt := time.Now().UTC().Format(time.RFC3339Nano)
	if _, dberr := r.db.ExecContext(ctx, insertFailureSQL, action, oneLine(err), createdAt); dberr != nil {
		log.Errorf("failurelog: insert failure for %s failed, %v", action, dberr)
	}
}

// Failures 按写入顺序读取全部记录
func (r *SQLiteRecorder) Failures(ctx context.Context) ([]Failure, error) {
	rows, err := r.db.QueryContext(ctx, queryFailuresSQL)
	if err != nil {
		return nil, errors.Wrap(err, "failurelog: query failures")
	}
	defer rows.Close()

	var list []Failure
	for rows.Next() {
		var (
			f         Failure
			createdAt string
		)
		if err := rows.Scan(&f.ID, &f.Action, &f.Error, &createdAt); err != nil {
			return nil, errors.Wrap(err, "failurelog: scan failure")
		}
		if f.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, errors.Wrapf(err, "failurelog: parse created_at of #%d", f.ID)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// Close 关闭数据库
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
