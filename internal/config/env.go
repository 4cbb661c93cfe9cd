// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the variables named by its env/envPrefix tags,
// e.g. TOTP_SOURCE or CLIPBOARD_CLEAR_AFTER. Unset variables leave their
// fields zero.
func parseEnv(cfg *ClientConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
