package database

import (
	"github.com/go-pg/pg/v10"
	_ "github.com/go-pg/pg/v10/orm"

	"github.com/careers-sim/careers-backend/platform/config"
)

// PostgreSQLConnection opens a connection from the process configuration.
func PostgreSQLConnection(cfg config.Config) *pg.DB {
	return pg.Connect(&pg.Options{
		User:     cfg.DBUser,
		Addr:     cfg.DBAddr,
		Password: cfg.DBPassword,
		Database: cfg.DBName,
	})
}
