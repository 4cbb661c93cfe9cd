package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ClientJSONConfig mirrors the layout of the JSON configuration file.
type ClientJSONConfig struct {
	App struct {
		Token string `json:"token"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	TOTP struct {
		Source          string   `json:"source"`
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"totp,omitempty"`

	Clipboard struct {
		ClearAfter Duration `json:"clear_after"`
	} `json:"clipboard,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*ClientConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg ClientJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &ClientConfig{
		App: App{
			Token: jsonCfg.App.Token,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		TOTP: TOTP{
			Source:          jsonCfg.TOTP.Source,
			RefreshInterval: time.Duration(jsonCfg.TOTP.RefreshInterval),
		},
		Clipboard: Clipboard{
			ClearAfter: time.Duration(jsonCfg.Clipboard.ClearAfter),
		},
		Log: Log{
			File: jsonCfg.Log.File,
		},
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
