// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import "strings"

// bannerArt is the welcome logo.
const bannerArt = `
 _                        __       _ _
| |_ ___ _ __ _ __ ___   / _| ___ | (_) ___
| __/ _ \ '__| '_ ' _ \ | |_ / _ \| | |/ _ \
| ||  __/ |  | | | | | ||  _| (_) | | | (_) |
 \__\___|_|  |_| |_| |_||_|  \___/|_|_|\___/
`

// Banner renders the welcome banner with the owner's name and build
// version.
func Banner(name, version string) string {
	var b strings.Builder
	b.WriteString(strings.Trim(bannerArt, "\n"))
	b.WriteString("\n\n")
	if name != "" {
		b.WriteString(name + "'s corner of the internet, rendered at 60 columns.\n")
	}
	if version != "" {
		b.WriteString("v" + version + " · ")
	}
	b.WriteString("type 'help' to look around, 'guide' for a tour.")
	return b.String()
}
