package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape of the JSON
// config file.
type StructuredJSONConfig struct {
	App struct {
		Version       string `json:"version"`
		LogLevel      string `json:"log_level"`
		Demo          bool   `json:"demo"`
		LocalKeySalt  string `json:"local_key_salt"`
		RemoteKeySalt string `json:"remote_key_salt"`
	} `json:"app,omitempty"`

	Crypto struct {
		Iterations        int `json:"iterations"`
		OfflineIterations int `json:"offline_iterations"`
	} `json:"crypto,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Offline struct {
		Enabled bool `json:"enabled"`
		Forced  bool `json:"forced"`
	} `json:"offline,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		ServerURL         string   `json:"server_url"`
		Username          string   `json:"username"`
		RequestTimeout    Duration `json:"request_timeout"`
		BasicAuthUser     string   `json:"basic_auth_user"`
		BasicAuthPassword string   `json:"basic_auth_password"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
			Demo:          jsonCfg.App.Demo,
			LocalKeySalt:  jsonCfg.App.LocalKeySalt,
			RemoteKeySalt: jsonCfg.App.RemoteKeySalt,
		},
		Crypto: Crypto{
			Iterations:        jsonCfg.Crypto.Iterations,
			OfflineIterations: jsonCfg.Crypto.OfflineIterations,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Offline: Offline{
			Enabled: jsonCfg.Offline.Enabled,
			Forced:  jsonCfg.Offline.Forced,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			ServerURL:         jsonCfg.Adapter.ServerURL,
			Username:          jsonCfg.Adapter.Username,
			RequestTimeout:    time.Duration(jsonCfg.Adapter.RequestTimeout),
			BasicAuthUser:     jsonCfg.Adapter.BasicAuthUser,
			BasicAuthPassword: jsonCfg.Adapter.BasicAuthPassword,
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
