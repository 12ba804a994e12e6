// @title Fanta Claus API
// @version 1.0
// @description Backend API for the Secret Santa fantasy league: teams, package votes and the leaderboard
package main

import (
	_ "github.com/Dailong90/fanta-claus/docs"

	"github.com/Dailong90/fanta-claus/api"
	"github.com/Dailong90/fanta-claus/logging"
	"github.com/spf13/viper"
)

func main() {
	logging.BootstrapLogger()

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Errorf("Failed to read config file: %v", err)
		panic("Failed to read config file: " + err.Error())
	}

	// Read config
	config := api.ReadConfig()

	// Start the service (inside the lambda)
	service := api.NewServer(config)
	service.Start()
}
