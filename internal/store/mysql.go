package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/phluxx/gridtips/internal/config"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

var (
	// ErrNotFound means the referenced row does not exist or is
	// soft-deleted.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicate means an insert hit a unique key.
	ErrDuplicate = errors.New("store: duplicate")
)

const mysqlDupEntry = 1062

type Mysql struct {
	db *sqlx.DB
}

func (m *Mysql) Close() error {
	return m.db.Close()
}

func (m *Mysql) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

// translate maps driver-level outcomes onto the store's sentinel
// errors so handlers never see MySQL error codes.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDupEntry {
		return ErrDuplicate
	}
	return err
}

func NewMySQL(cfg *config.Config) (*Mysql, error) {
	myconf := mysql.Config{
		User:                 cfg.Mysql.User,
		Passwd:               cfg.Mysql.Passwd,
		Net:                  "tcp",
		Addr:                 cfg.Mysql.Host,
		DBName:               cfg.Mysql.DBName,
		AllowNativePasswords: true,
		ParseTime:            true,
	}

	db, err := sqlx.Open("mysql", myconf.FormatDSN())
	if err != nil {
		return nil, err
	}

	// Keep connections fresher than MySQL's wait_timeout.
	db.SetMaxIdleConns(10)
	db.SetMaxOpenConns(100)
	db.SetConnMaxLifetime(time.Hour)

	return &Mysql{db: db}, nil
}
