// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package portfolio

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if p.Profile.Name == "" {
		t.Error("profile name should be set")
	}
	if len(p.Sections) == 0 {
		t.Fatal("dataset should define sections")
	}
	if len(p.Projects) == 0 {
		t.Error("dataset should define projects")
	}
	if len(p.Skills) == 0 {
		t.Error("dataset should define skills")
	}
}

func TestHasSection(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	first := p.Sections[0]
	if !p.HasSection(first) {
		t.Errorf("HasSection(%q) = false, want true", first)
	}
	if !p.HasSection(strings.ToUpper(first)) {
		t.Errorf("HasSection(%q) should be case-insensitive", strings.ToUpper(first))
	}
	if p.HasSection("attic") {
		t.Error("HasSection(attic) = true, want false")
	}
}

func TestFindProject(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	name := p.Projects[0].Name
	if p.FindProject(name) == nil {
		t.Errorf("FindProject(%q) = nil", name)
	}
	if p.FindProject(strings.ToUpper(name)) == nil {
		t.Errorf("FindProject(%q) should be case-insensitive", strings.ToUpper(name))
	}
	if p.FindProject("vaporware") != nil {
		t.Error("FindProject(vaporware) should be nil")
	}
}

func TestProjectNames(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	names := p.ProjectNames()
	if len(names) != len(p.Projects) {
		t.Fatalf("ProjectNames returned %d names for %d projects", len(names), len(p.Projects))
	}
	for i, proj := range p.Projects {
		if names[i] != proj.Name {
			t.Errorf("names[%d] = %q, want %q (dataset order)", i, names[i], proj.Name)
		}
	}
}

func TestValidate(t *testing.T) {
	p := &Portfolio{Sections: []string{"home"}}
	if err := p.validate(); err == nil {
		t.Error("validate should require a profile name")
	}

	p = &Portfolio{Profile: Profile{Name: "x"}}
	if err := p.validate(); err == nil {
		t.Error("validate should require at least one section")
	}
}
