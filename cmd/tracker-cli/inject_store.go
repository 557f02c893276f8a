package main

import (
	"github.com/google/wire"
	"github.com/pandodao/money-tracker/store/db"
	"github.com/pandodao/money-tracker/store/property"
	"github.com/spf13/viper"
)

var storeSet = wire.NewSet(
	provideDB,
	property.New,
)

func provideDB(v *viper.Viper) (*db.DB, func(), error) {
	v.SetDefault("db.driver", db.DriverSQLite)
	v.SetDefault("db.dsn", "money-tracker.db")

	conn, err := db.Open(v.GetString("db.driver"), v.GetString("db.dsn"))
	if err != nil {
		return nil, nil, err
	}

	return conn, func() { _ = conn.Close() }, nil
}
