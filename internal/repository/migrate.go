package repository

import (
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
)

// Migrate applies every pending migration found in dir.
func Migrate(cfg DBConfig, dir string) error {
	conn, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		return errors.New("opening migrations connection error: " + err.Error())
	}
	defer conn.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err = goose.Up(conn, dir); err != nil {
		return errors.New("applying migrations error: " + err.Error())
	}
	return nil
}
