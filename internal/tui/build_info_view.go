// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/accbox/models"
)

// renderBuildInfoWindow shows the linker-injected build metadata.
func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Application", "AccBox"},
		{"Version", info.BuildVersion()},
		{"Date", info.BuildDate()},
		{"Commit", info.BuildCommit()},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		v := strings.TrimSpace(r[1])
		if v == "" {
			v = "N/A"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", r[0], v))
	}

	return renderPage("ABOUT", strings.Join(lines, "\n"), "esc: back")
}
