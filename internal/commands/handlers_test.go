// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jeranaias/termfolio/internal/history"
	"github.com/jeranaias/termfolio/internal/portfolio"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()

	p, err := portfolio.Load()
	if err != nil {
		t.Fatalf("portfolio.Load: %v", err)
	}

	r := NewRegistry()
	RegisterBuiltins(r)

	return &Context{
		Portfolio: p,
		Registry:  r,
		Version:   "test",
	}
}

// =============================================================================
// NAVIGATION HANDLER TESTS
// =============================================================================

func TestHandleGoto(t *testing.T) {
	cc := newTestContext(t)

	res, err := HandleGoto(context.Background(), cc, []string{"about"})
	if err != nil {
		t.Fatalf("HandleGoto: %v", err)
	}
	if res.Kind != KindSuccess {
		t.Errorf("Kind = %q, want success", res.Kind)
	}
	payload, ok := res.Payload.(SectionPayload)
	if !ok || payload.Section != "about" {
		t.Errorf("Payload = %v, want SectionPayload{about}", res.Payload)
	}
}

func TestHandleGotoUnknownSection(t *testing.T) {
	cc := newTestContext(t)

	res, err := HandleGoto(context.Background(), cc, []string{"basement"})
	if err != nil {
		t.Fatalf("HandleGoto: %v", err)
	}
	if res.Kind != KindError {
		t.Errorf("Kind = %q, want error", res.Kind)
	}
	if !strings.Contains(res.Text, "no such section: basement") {
		t.Errorf("Text = %q, want unknown-section message", res.Text)
	}
}

func TestHandleGotoCallsNavigate(t *testing.T) {
	cc := newTestContext(t)

	var navigated string
	cc.Navigate = func(section string) error {
		navigated = section
		return nil
	}

	if _, err := HandleGoto(context.Background(), cc, []string{"Skills"}); err != nil {
		t.Fatalf("HandleGoto: %v", err)
	}
	if navigated != "skills" {
		t.Errorf("Navigate received %q, want skills (lowercased)", navigated)
	}
}

func TestHandleExit(t *testing.T) {
	cc := newTestContext(t)

	quit := false
	cc.Quit = func() { quit = true }

	res, err := HandleExit(context.Background(), cc, nil)
	if err != nil {
		t.Fatalf("HandleExit: %v", err)
	}
	if !quit {
		t.Error("Quit callback not invoked")
	}
	if _, ok := res.Payload.(QuitPayload); !ok {
		t.Errorf("Payload = %v, want QuitPayload", res.Payload)
	}
}

func TestHandleGuide(t *testing.T) {
	cc := newTestContext(t)

	res, err := HandleGuide(context.Background(), cc, nil)
	if err != nil {
		t.Fatalf("HandleGuide: %v", err)
	}
	if _, ok := res.Payload.(GuidePayload); !ok {
		t.Errorf("Payload = %v, want GuidePayload", res.Payload)
	}
}

// =============================================================================
// HELP TESTS
// =============================================================================

func TestHandleHelp(t *testing.T) {
	cc := newTestContext(t)

	res, err := HandleHelp(context.Background(), cc, nil)
	if err != nil {
		t.Fatalf("HandleHelp: %v", err)
	}
	for _, want := range []string{"Navigation", "Portfolio", "Terminal", "projects", "goto"} {
		if !strings.Contains(res.Text, want) {
			t.Errorf("help output missing %q", want)
		}
	}
	if strings.Contains(res.Text, "sudo") {
		t.Error("help output should not list hidden commands")
	}
}

func TestHandleHelpSpecific(t *testing.T) {
	cc := newTestContext(t)

	res, err := HandleHelp(context.Background(), cc, []string{"goto"})
	if err != nil {
		t.Fatalf("HandleHelp: %v", err)
	}
	if !strings.Contains(res.Text, "usage: goto <section>") {
		t.Errorf("Text = %q, want usage line", res.Text)
	}
	if !strings.Contains(res.Text, "nav") {
		t.Errorf("Text = %q, want aliases listed", res.Text)
	}
}

func TestHandleHelpUnknown(t *testing.T) {
	cc := newTestContext(t)

	res, err := HandleHelp(context.Background(), cc, []string{"frobnicate"})
	if err != nil {
		t.Fatalf("HandleHelp: %v", err)
	}
	if res.Kind != KindError {
		t.Errorf("Kind = %q, want error", res.Kind)
	}
}

// =============================================================================
// PORTFOLIO HANDLER TESTS
// =============================================================================

func TestHandleProjects(t *testing.T) {
	cc := newTestContext(t)

	res, err := HandleProjects(context.Background(), cc, nil)
	if err != nil {
		t.Fatalf("HandleProjects: %v", err)
	}
	if res.Kind != KindSuccess || res.Text == "" {
		t.Errorf("Result = %+v, want project listing", res)
	}
}

func TestHandleProjectsDetailCaseInsensitive(t *testing.T) {
	cc := newTestContext(t)
	name := cc.Portfolio.Projects[0].Name

	res, err := HandleProjects(context.Background(), cc, []string{strings.ToUpper(name)})
	if err != nil {
		t.Fatalf("HandleProjects: %v", err)
	}
	if res.Kind != KindSuccess {
		t.Errorf("Kind = %q, want success for %q", res.Kind, name)
	}
}

func TestHandleProjectsUnknown(t *testing.T) {
	cc := newTestContext(t)

	res, err := HandleProjects(context.Background(), cc, []string{"vaporware"})
	if err != nil {
		t.Fatalf("HandleProjects: %v", err)
	}
	if res.Kind != KindError {
		t.Errorf("Kind = %q, want error", res.Kind)
	}
}

func TestHandlersDegradeWithoutPortfolio(t *testing.T) {
	cc := &Context{}

	handlers := map[string]Handler{
		"about":      HandleAbout,
		"skills":     HandleSkills,
		"projects":   HandleProjects,
		"experience": HandleExperience,
		"education":  HandleEducation,
		"contact":    HandleContact,
	}
	for name, h := range handlers {
		res, err := h(context.Background(), cc, []string{"x"})
		if err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
		}
		if res.Kind != KindError {
			t.Errorf("%s: Kind = %q, want error without portfolio data", name, res.Kind)
		}
	}
}

// =============================================================================
// SEND TESTS
// =============================================================================

type fakeSender struct {
	from, message string
	err           error
}

func (f *fakeSender) Send(ctx context.Context, from, message string) error {
	f.from = from
	f.message = message
	return f.err
}

func TestHandleSend(t *testing.T) {
	cc := newTestContext(t)
	sender := &fakeSender{}
	cc.Mailer = sender

	res, err := HandleSend(context.Background(), cc, []string{"alice", "hello", "there"})
	if err != nil {
		t.Fatalf("HandleSend: %v", err)
	}
	if res.Kind != KindSuccess {
		t.Errorf("Kind = %q, want success", res.Kind)
	}
	if sender.from != "alice" || sender.message != "hello there" {
		t.Errorf("sent (%q, %q), want (alice, hello there)", sender.from, sender.message)
	}
}

func TestHandleSendWithoutMailer(t *testing.T) {
	cc := newTestContext(t)

	res, err := HandleSend(context.Background(), cc, []string{"alice", "hi"})
	if err != nil {
		t.Fatalf("HandleSend: %v", err)
	}
	if res.Kind != KindWarning {
		t.Errorf("Kind = %q, want warning when unconfigured", res.Kind)
	}
}

func TestSendFailureSurfacesAsErrorResult(t *testing.T) {
	cc := newTestContext(t)
	cc.Mailer = &fakeSender{err: errors.New("webhook down")}

	d := NewDispatcher(cc.Registry)
	res := d.Execute(context.Background(), cc, `send alice "hi there"`)
	if res.Kind != KindError {
		t.Fatalf("Kind = %q, want error", res.Kind)
	}
	if !strings.Contains(res.Text, "send failed:") {
		t.Errorf("Text = %q, want wrapped send error", res.Text)
	}
}

// =============================================================================
// TERMINAL HANDLER TESTS
// =============================================================================

func TestHandleTheme(t *testing.T) {
	cc := newTestContext(t)

	// No argument lists themes.
	res, err := HandleTheme(context.Background(), cc, nil)
	if err != nil {
		t.Fatalf("HandleTheme: %v", err)
	}
	if res.Kind != KindInfo {
		t.Errorf("list: Kind = %q, want info", res.Kind)
	}

	// Unknown theme errors.
	res, err = HandleTheme(context.Background(), cc, []string{"solarized"})
	if err != nil {
		t.Fatalf("HandleTheme: %v", err)
	}
	if res.Kind != KindError {
		t.Errorf("unknown: Kind = %q, want error", res.Kind)
	}

	// Valid theme sets payload and calls back.
	var applied string
	cc.SetTheme = func(name string) error {
		applied = name
		return nil
	}
	res, err = HandleTheme(context.Background(), cc, []string{"Dark"})
	if err != nil {
		t.Fatalf("HandleTheme: %v", err)
	}
	if applied != "dark" {
		t.Errorf("SetTheme received %q, want dark", applied)
	}
	payload, ok := res.Payload.(ThemePayload)
	if !ok || payload.Name != "dark" {
		t.Errorf("Payload = %v, want ThemePayload{dark}", res.Payload)
	}
}

func TestHandleEcho(t *testing.T) {
	cc := newTestContext(t)

	res, err := HandleEcho(context.Background(), cc, []string{"a b", "c"})
	if err != nil {
		t.Fatalf("HandleEcho: %v", err)
	}
	if res.Text != "a b c" {
		t.Errorf("Text = %q, want %q", res.Text, "a b c")
	}
}

func TestHandleClear(t *testing.T) {
	cc := newTestContext(t)

	res, err := HandleClear(context.Background(), cc, nil)
	if err != nil {
		t.Fatalf("HandleClear: %v", err)
	}
	if _, ok := res.Payload.(ClearPayload); !ok {
		t.Errorf("Payload = %v, want ClearPayload", res.Payload)
	}
}

func TestHandleHistory(t *testing.T) {
	cc := newTestContext(t)

	res, err := HandleHistory(context.Background(), cc, nil)
	if err != nil {
		t.Fatalf("HandleHistory: %v", err)
	}
	if res.Kind != KindInfo {
		t.Errorf("empty history: Kind = %q, want info", res.Kind)
	}

	cc.CommandHistory = history.NewCommandHistory(10, nil)
	cc.CommandHistory.Append("help")
	cc.CommandHistory.Append("projects")

	res, err = HandleHistory(context.Background(), cc, nil)
	if err != nil {
		t.Fatalf("HandleHistory: %v", err)
	}
	if !strings.Contains(res.Text, "help") || !strings.Contains(res.Text, "projects") {
		t.Errorf("Text = %q, want both history lines", res.Text)
	}
	// Oldest first.
	if strings.Index(res.Text, "help") > strings.Index(res.Text, "projects") {
		t.Error("history should list oldest first")
	}
}

func TestHandleBanner(t *testing.T) {
	cc := newTestContext(t)

	res, err := HandleBanner(context.Background(), cc, nil)
	if err != nil {
		t.Fatalf("HandleBanner: %v", err)
	}
	if res.Kind != KindSuccess || res.Text == "" {
		t.Errorf("Result = %+v, want banner text", res)
	}
}

func TestHandleSudo(t *testing.T) {
	cc := newTestContext(t)

	res, err := HandleSudo(context.Background(), cc, []string{"rm", "-rf", "/"})
	if err != nil {
		t.Fatalf("HandleSudo: %v", err)
	}
	if res.Kind != KindWarning {
		t.Errorf("Kind = %q, want warning", res.Kind)
	}
}
