package api

import (
	"sync"
	"time"

	"github.com/Dailong90/fanta-claus/logging"
	"github.com/spf13/viper"
)

type Config struct {
	StorageConfig
	ServerConfig
	SessionConfig
}

type StorageConfig struct {
	TableNamePlayers        string
	TableNameTeams          string
	TableNameGifts          string
	TableNameGiftCategories string
	TableNamePackageVotes   string
	TableNameGameSettings   string
}

type ServerConfig struct {
	Port int
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			TableNamePlayers:        viper.GetString("storage.TableNamePlayers"),
			TableNameTeams:          viper.GetString("storage.TableNameTeams"),
			TableNameGifts:          viper.GetString("storage.TableNameGifts"),
			TableNameGiftCategories: viper.GetString("storage.TableNameGiftCategories"),
			TableNamePackageVotes:   viper.GetString("storage.TableNamePackageVotes"),
			TableNameGameSettings:   viper.GetString("storage.TableNameGameSettings"),
		},
		ServerConfig: ServerConfig{
			Port: viper.GetInt("server.port"),
		},
		SessionConfig: SessionConfig{
			Secret: getString("session.secret"),
			TTL:    getDurationOrDefault("session.ttlHours", 30*24) * time.Hour,
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getString(name string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Fatalf("required environment variable '%s' is missing", name)
	return ""
}

func getDurationOrDefault(name string, def int) time.Duration {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return time.Duration(v)
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return time.Duration(def)
}
