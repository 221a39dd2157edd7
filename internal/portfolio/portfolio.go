// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package portfolio holds the static dataset rendered by the terminal:
// profile, skills, projects, experience, education, and contact details.
// The data is hand-authored TOML embedded at build time and is read-only
// after load.
package portfolio

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed data.toml
var rawData []byte

// =============================================================================
// DATASET TYPES
// =============================================================================

// Portfolio is the complete dataset.
type Portfolio struct {
	Profile    Profile      `toml:"profile"`
	Skills     []SkillGroup `toml:"skills"`
	Projects   []Project    `toml:"projects"`
	Experience []Experience `toml:"experience"`
	Education  []Education  `toml:"education"`
	Contact    Contact      `toml:"contact"`

	// Sections lists the navigable site sections in display order.
	Sections []string `toml:"sections"`
}

// Profile identifies the site owner.
type Profile struct {
	Name     string `toml:"name"`
	Title    string `toml:"title"`
	Location string `toml:"location"`
	Tagline  string `toml:"tagline"`

	// BioMarkdown is the long-form bio, rendered as markdown by the
	// about command.
	BioMarkdown string `toml:"bio_markdown"`
}

// SkillGroup is one named cluster of skills.
type SkillGroup struct {
	Category string   `toml:"category"`
	Items    []string `toml:"items"`
}

// Project is one portfolio project.
type Project struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Tech        []string `toml:"tech"`
	URL         string   `toml:"url"`
	Snippet     Snippet  `toml:"snippet"`
}

// Snippet is a short code sample shown by the source command.
type Snippet struct {
	Language string `toml:"language"`
	Code     string `toml:"code"`
}

// Experience is one work history entry.
type Experience struct {
	Company    string   `toml:"company"`
	Role       string   `toml:"role"`
	Period     string   `toml:"period"`
	Highlights []string `toml:"highlights"`
}

// Education is one education history entry.
type Education struct {
	School string `toml:"school"`
	Degree string `toml:"degree"`
	Period string `toml:"period"`
}

// Contact holds public contact channels.
type Contact struct {
	Email    string `toml:"email"`
	GitHub   string `toml:"github"`
	LinkedIn string `toml:"linkedin"`
	Website  string `toml:"website"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load decodes the embedded dataset.
func Load() (*Portfolio, error) {
	var p Portfolio
	if err := toml.Unmarshal(rawData, &p); err != nil {
		return nil, fmt.Errorf("portfolio: decode embedded dataset: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Portfolio) validate() error {
	if p.Profile.Name == "" {
		return fmt.Errorf("portfolio: profile.name is required")
	}
	if len(p.Sections) == 0 {
		return fmt.Errorf("portfolio: at least one section is required")
	}
	return nil
}

// =============================================================================
// LOOKUPS
// =============================================================================

// HasSection reports whether name is a known section, case-insensitively.
func (p *Portfolio) HasSection(name string) bool {
	for _, s := range p.Sections {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

// FindProject returns the project whose name matches, case-insensitively,
// or nil.
func (p *Portfolio) FindProject(name string) *Project {
	for i := range p.Projects {
		if strings.EqualFold(p.Projects[i].Name, name) {
			return &p.Projects[i]
		}
	}
	return nil
}

// ProjectNames returns all project names in dataset order.
func (p *Portfolio) ProjectNames() []string {
	names := make([]string, 0, len(p.Projects))
	for _, proj := range p.Projects {
		names = append(names, proj.Name)
	}
	return names
}
