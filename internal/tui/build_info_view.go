// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The qodefly-dashboard Authors

package tui

import (
	"strings"

	"github.com/brsv-srg/qodefly-dashboard/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: qodefly dashboard\n")
	b.WriteString("Version: ")
	b.WriteString(valueOr(info.Version, "N/A"))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOr(info.Date, "N/A"))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOr(info.Commit, "N/A"))

	return renderPage("ABOUT", overlayBoxStyle.Render(b.String()), "esc: back")
}
