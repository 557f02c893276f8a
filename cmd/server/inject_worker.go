package main

import (
	"github.com/google/wire"
	"github.com/pandodao/money-tracker/worker/refresher"
	"github.com/spf13/viper"
)

var workerSet = wire.NewSet(
	provideRefresherConfig,
	refresher.New,
)

func provideRefresherConfig(v *viper.Viper) refresher.Config {
	return refresher.Config{
		Interval: v.GetDuration("refresh.interval"),
	}
}
