package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses all configuration flags from args into a fresh
// [ClientConfig]. Unset flags stay at their zero value so lower-priority
// sources can fill them.
//
// Flags:
//
//	-a API base URL (e.g. http://localhost:8000)
//	-request-timeout request timeout (e.g., "10s")
//	-token pre-issued bearer token
//	-totp-source code source: local or remote
//	-refresh-interval popup refresh interval (e.g., "1s")
//	-clipboard-clear-after clipboard auto-clear delay (e.g., "60s")
//	-log-file log file path
//	-c/-config json file path with configs
func parseFlags(fs *flag.FlagSet, args []string) (*ClientConfig, error) {
	var address string
	var requestTimeout time.Duration
	var token string
	var totpSource string
	var refreshInterval time.Duration
	var clearAfter time.Duration
	var logFile string
	var jsonConfigPath string

	fs.StringVar(&address, "a", "", "API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&token, "token", "", "Bearer token")
	fs.StringVar(&totpSource, "totp-source", "", "Code source: local or remote")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Popup refresh interval (e.g., 1s)")
	fs.DurationVar(&clearAfter, "clipboard-clear-after", 0, "Clipboard auto-clear delay (e.g., 60s)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &ClientConfig{
		App: App{
			Token: token,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		TOTP: TOTP{
			Source:          totpSource,
			RefreshInterval: refreshInterval,
		},
		Clipboard: Clipboard{
			ClearAfter: clearAfter,
		},
		Log: Log{
			File: logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
