// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-transcript-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, owner string) string {
	var b strings.Builder

	b.WriteString("Application: Confidential Transcript Keeper\n")
	b.WriteString("Version:     " + info.BuildVersion() + "\n")
	b.WriteString("Date:        " + info.BuildDate() + "\n")
	b.WriteString("Commit:      " + info.BuildCommit() + "\n")
	b.WriteString("Wallet:      " + owner)

	return renderPage("ABOUT", b.String(), "esc: back")
}
