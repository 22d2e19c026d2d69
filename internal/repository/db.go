package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

// NewDB creates a new MySQL database connection pool with the given DSN.
// The DSN must carry parseTime=true so TIMESTAMP columns scan into time.Time.
func NewDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id       CHAR(36) PRIMARY KEY,
		email         VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		user_name     VARCHAR(255) NOT NULL DEFAULT '',
		profile_name  VARCHAR(255) NOT NULL,
		dob           VARCHAR(32)  NOT NULL DEFAULT '',
		bio           TEXT         NOT NULL,
		country       VARCHAR(128) NOT NULL DEFAULT '',
		gender        VARCHAR(32)  NOT NULL DEFAULT '',
		profile_img   VARCHAR(512) NOT NULL DEFAULT '',
		created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY email (email),
		UNIQUE KEY profile_name (profile_name)
	)`,
	`CREATE TABLE IF NOT EXISTS user_refresh_tokens (
		id         BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id    CHAR(36) NOT NULL,
		token      VARCHAR(768) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY user_id (user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS blogs (
		id                  CHAR(36) PRIMARY KEY,
		title               VARCHAR(255) NOT NULL,
		content             TEXT NOT NULL,
		image               VARCHAR(512) NOT NULL DEFAULT '',
		author_id           CHAR(36) NOT NULL,
		author_profile_name VARCHAR(255) NOT NULL,
		author_profile_img  VARCHAR(512) NOT NULL DEFAULT '',
		created_at          TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS blog_reactions (
		blog_id CHAR(36) NOT NULL,
		user_id CHAR(36) NOT NULL,
		value   TINYINT NOT NULL,
		PRIMARY KEY (blog_id, user_id)
	)`,
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// isDuplicateEntryError reports whether err is a MySQL duplicate-entry error
// (code 1062) on the named unique key.
func isDuplicateEntryError(err error, key string) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == 1062 {
		return strings.Contains(me.Message, key)
	}
	return false
}
