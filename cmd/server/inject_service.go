package main

import (
	"github.com/google/wire"
	"github.com/pandodao/money-tracker/service/api"
	"github.com/pandodao/money-tracker/service/session"
	"github.com/pandodao/money-tracker/service/tracker"
	"github.com/pandodao/money-tracker/service/transaction"
	"github.com/pandodao/money-tracker/service/user"
	"github.com/pandodao/money-tracker/service/wallet"
	"github.com/spf13/viper"
)

const defaultBaseURL = "https://money-tracker-api-uesx.onrender.com/api"

var serviceSet = wire.NewSet(
	provideAPIConfig,
	api.New,
	user.New,
	wallet.New,
	transaction.New,
	session.New,
	tracker.New,
)

func provideAPIConfig(v *viper.Viper) api.Config {
	v.SetDefault("api.base_url", defaultBaseURL)

	return api.Config{
		BaseURL: v.GetString("api.base_url"),
		Timeout: v.GetDuration("api.timeout"),
	}
}
