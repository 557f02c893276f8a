package main

import (
	"path/filepath"

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
	v.SetDefault("db.dsn", filepath.Join(".", "money-tracker.db"))

	driver := v.GetString("db.driver")
	dsn := v.GetString("db.dsn")

	for _, replica := range v.GetStringSlice("db.replicas") {
		dsn += ";" + replica
	}

	conn, err := db.Open(driver, dsn)
	if err != nil {
		return nil, nil, err
	}

	return conn, func() { _ = conn.Close() }, nil
}
