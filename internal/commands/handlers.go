// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/termfolio/internal/ui/components"
)

// =============================================================================
// SHELL PAYLOADS
// =============================================================================

// Handlers stay side-effect free; anything that must change shell state is
// either a Context callback or one of these payloads on the Result.

// SectionPayload asks the shell to scroll to a portfolio section.
type SectionPayload struct {
	Section string
}

// ClearPayload asks the shell to clear the output transcript.
type ClearPayload struct{}

// ThemePayload asks the shell to activate a color theme.
type ThemePayload struct {
	Name string
}

// GuidePayload asks the shell to open the onboarding guide.
type GuidePayload struct{}

// QuitPayload asks the shell to exit.
type QuitPayload struct{}

// =============================================================================
// REGISTRATION
// =============================================================================

// RegisterBuiltins installs the full portfolio command set into the
// registry.
func RegisterBuiltins(r *Registry) {
	// Navigation
	r.Register(&Command{
		Name:        "help",
		Aliases:     []string{"h", "?"},
		Description: "Show available commands",
		Usage:       "help [command]",
		Args: []ArgDef{
			{Name: "command", Type: ArgTypeString, Description: "Command to describe"},
		},
		Category: "Navigation",
		Handler:  HandleHelp,
	})

	r.Register(&Command{
		Name:        "goto",
		Aliases:     []string{"nav", "cd"},
		Description: "Jump to a section of the site",
		Usage:       "goto <section>",
		Args: []ArgDef{
			{Name: "section", Required: true, Type: ArgTypeSection, Description: "Section to open"},
		},
		Category: "Navigation",
		Handler:  HandleGoto,
	})

	r.Register(&Command{
		Name:        "guide",
		Aliases:     []string{"tour"},
		Description: "Show the interactive guide",
		Category:    "Navigation",
		Handler:     HandleGuide,
	})

	r.Register(&Command{
		Name:        "exit",
		Aliases:     []string{"quit", "q"},
		Description: "Leave the terminal",
		Category:    "Navigation",
		Handler:     HandleExit,
	})

	// Portfolio
	r.Register(&Command{
		Name:        "about",
		Aliases:     []string{"bio"},
		Description: "Who I am",
		Category:    "Portfolio",
		Handler:     HandleAbout,
	})

	r.Register(&Command{
		Name:        "skills",
		Description: "What I work with",
		Category:    "Portfolio",
		Handler:     HandleSkills,
	})

	r.Register(&Command{
		Name:        "projects",
		Aliases:     []string{"proj"},
		Description: "Things I've built",
		Usage:       "projects [name]",
		Args: []ArgDef{
			{Name: "name", Type: ArgTypeProject, Description: "Project to show in detail"},
		},
		Category: "Portfolio",
		Handler:  HandleProjects,
	})

	r.Register(&Command{
		Name:        "source",
		Description: "Show a code sample from a project",
		Usage:       "source <project>",
		Args: []ArgDef{
			{Name: "project", Required: true, Type: ArgTypeProject, Description: "Project name"},
		},
		Category: "Portfolio",
		Handler:  HandleSource,
	})

	r.Register(&Command{
		Name:        "experience",
		Aliases:     []string{"exp", "work"},
		Description: "Where I've worked",
		Category:    "Portfolio",
		Handler:     HandleExperience,
	})

	r.Register(&Command{
		Name:        "education",
		Aliases:     []string{"edu"},
		Description: "Where I studied",
		Category:    "Portfolio",
		Handler:     HandleEducation,
	})

	r.Register(&Command{
		Name:        "contact",
		Aliases:     []string{"socials"},
		Description: "How to reach me",
		Category:    "Portfolio",
		Handler:     HandleContact,
	})

	r.Register(&Command{
		Name:        "send",
		Aliases:     []string{"msg"},
		Description: "Send me a message",
		Usage:       "send <name> <message>",
		Args: []ArgDef{
			{Name: "name", Required: true, Type: ArgTypeString, Description: "Your name"},
			{Name: "message", Required: true, Type: ArgTypeString, Description: "The message"},
		},
		Category: "Portfolio",
		Handler:  HandleSend,
	})

	// Terminal
	r.Register(&Command{
		Name:        "theme",
		Description: "List or switch color themes",
		Usage:       "theme [name]",
		Args: []ArgDef{
			{Name: "name", Type: ArgTypeTheme, Description: "Theme to activate"},
		},
		Category: "Terminal",
		Handler:  HandleTheme,
	})

	r.Register(&Command{
		Name:        "banner",
		Description: "Show the welcome banner",
		Category:    "Terminal",
		Handler:     HandleBanner,
	})

	r.Register(&Command{
		Name:        "history",
		Aliases:     []string{"hist"},
		Description: "Show commands you've typed",
		Category:    "Terminal",
		Handler:     HandleHistory,
	})

	r.Register(&Command{
		Name:        "clear",
		Aliases:     []string{"cls"},
		Description: "Clear the screen",
		Category:    "Terminal",
		Handler:     HandleClear,
	})

	r.Register(&Command{
		Name:        "echo",
		Description: "Print arguments",
		Usage:       "echo [text...]",
		Category:    "Terminal",
		Handler:     HandleEcho,
	})

	r.Register(&Command{
		Name:        "whoami",
		Description: "You, probably",
		Category:    "Terminal",
		Handler:     HandleWhoami,
	})

	r.Register(&Command{
		Name:        "date",
		Description: "Current date and time",
		Category:    "Terminal",
		Handler:     HandleDate,
	})

	r.Register(&Command{
		Name:    "sudo",
		Hidden:  true,
		Handler: HandleSudo,
	})
}

// =============================================================================
// NAVIGATION HANDLERS
// =============================================================================

// HandleHelp lists commands by category, or describes one command.
func HandleHelp(ctx context.Context, cc *Context, args []string) (Result, error) {
	if cc.Registry == nil {
		return Errorf("help is unavailable in this session"), nil
	}

	if len(args) > 0 {
		cmd := cc.Registry.Resolve(args[0])
		if cmd == nil {
			return Errorf("no such command: %s", args[0]), nil
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%s - %s\n", cmd.Name, cmd.Description)
		if cmd.Usage != "" {
			fmt.Fprintf(&b, "usage: %s\n", cmd.Usage)
		}
		if len(cmd.Aliases) > 0 {
			fmt.Fprintf(&b, "aliases: %s\n", strings.Join(cmd.Aliases, ", "))
		}
		for _, arg := range cmd.Args {
			req := "optional"
			if arg.Required {
				req = "required"
			}
			fmt.Fprintf(&b, "  %-10s %s (%s)\n", arg.Name, arg.Description, req)
		}
		return Success(strings.TrimRight(b.String(), "\n")), nil
	}

	byCat := cc.Registry.ByCategory()
	categories := make([]string, 0, len(byCat))
	for cat := range byCat {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, cat := range categories {
		fmt.Fprintf(&b, "\n%s\n", cat)
		for _, cmd := range byCat[cat] {
			name := cmd.Name
			if len(cmd.Aliases) > 0 {
				name += " (" + strings.Join(cmd.Aliases, ", ") + ")"
			}
			fmt.Fprintf(&b, "  %-28s %s\n", name, cmd.Description)
		}
	}
	b.WriteString("\nTip: 'help <command>' shows details. Tab completes.")
	return Success(b.String()), nil
}

// HandleGoto navigates to a section via the shell callback. Without a
// callback (plain REPL) it reports the jump through the payload only.
func HandleGoto(ctx context.Context, cc *Context, args []string) (Result, error) {
	section := strings.ToLower(args[0])

	if cc.Portfolio != nil && !cc.Portfolio.HasSection(section) {
		return Errorf("no such section: %s (try: %s)", section, strings.Join(cc.Portfolio.Sections, ", ")), nil
	}

	if cc.Navigate != nil {
		if err := cc.Navigate(section); err != nil {
			return Result{}, err
		}
	}

	res := Success("→ " + section)
	res.Payload = SectionPayload{Section: section}
	return res, nil
}

// HandleGuide surfaces the onboarding guide overlay.
func HandleGuide(ctx context.Context, cc *Context, args []string) (Result, error) {
	if cc.ShowGuide != nil {
		cc.ShowGuide()
	}
	res := Success("Opening the guide...")
	res.Payload = GuidePayload{}
	return res, nil
}

// HandleExit asks the shell to quit.
func HandleExit(ctx context.Context, cc *Context, args []string) (Result, error) {
	if cc.Quit != nil {
		cc.Quit()
	}
	res := Success("Bye! Thanks for stopping by.")
	res.Payload = QuitPayload{}
	return res, nil
}

// =============================================================================
// PORTFOLIO HANDLERS
// =============================================================================

// HandleAbout renders the markdown bio.
func HandleAbout(ctx context.Context, cc *Context, args []string) (Result, error) {
	if cc.Portfolio == nil {
		return Errorf("portfolio data is unavailable"), nil
	}

	p := cc.Portfolio.Profile
	rendered := renderMarkdown(p.BioMarkdown)

	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s\n%s\n", p.Name, p.Title, p.Location)
	b.WriteString(rendered)
	return Success(strings.TrimRight(b.String(), "\n")), nil
}

// HandleSkills lists skill groups.
func HandleSkills(ctx context.Context, cc *Context, args []string) (Result, error) {
	if cc.Portfolio == nil {
		return Errorf("portfolio data is unavailable"), nil
	}

	var b strings.Builder
	for _, group := range cc.Portfolio.Skills {
		fmt.Fprintf(&b, "%-12s %s\n", group.Category, strings.Join(group.Items, " · "))
	}
	return Success(strings.TrimRight(b.String(), "\n")), nil
}

// HandleProjects lists projects, or shows one in detail.
func HandleProjects(ctx context.Context, cc *Context, args []string) (Result, error) {
	if cc.Portfolio == nil {
		return Errorf("portfolio data is unavailable"), nil
	}

	if len(args) > 0 {
		proj := cc.Portfolio.FindProject(args[0])
		if proj == nil {
			return Errorf("no such project: %s (try: %s)", args[0], strings.Join(cc.Portfolio.ProjectNames(), ", ")), nil
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%s\n%s\n", proj.Name, proj.Description)
		if len(proj.Tech) > 0 {
			fmt.Fprintf(&b, "tech: %s\n", strings.Join(proj.Tech, ", "))
		}
		if proj.URL != "" {
			fmt.Fprintf(&b, "url:  %s\n", proj.URL)
		}
		if proj.Snippet.Code != "" {
			fmt.Fprintf(&b, "\n'source %s' shows a code sample.\n", strings.ToLower(proj.Name))
		}
		return Success(strings.TrimRight(b.String(), "\n")), nil
	}

	var b strings.Builder
	for _, proj := range cc.Portfolio.Projects {
		fmt.Fprintf(&b, "%-12s %s\n", proj.Name, proj.Description)
	}
	b.WriteString("\n'projects <name>' for details.")
	return Success(b.String()), nil
}

// HandleSource shows a syntax-highlighted code sample for a project.
func HandleSource(ctx context.Context, cc *Context, args []string) (Result, error) {
	if cc.Portfolio == nil {
		return Errorf("portfolio data is unavailable"), nil
	}

	proj := cc.Portfolio.FindProject(args[0])
	if proj == nil {
		return Errorf("no such project: %s", args[0]), nil
	}
	if proj.Snippet.Code == "" {
		return Warning("no code sample for " + proj.Name), nil
	}

	block := components.NewCodeBlock(proj.Snippet.Language, proj.Snippet.Code)
	return Success(block.Render()), nil
}

// HandleExperience lists the work history.
func HandleExperience(ctx context.Context, cc *Context, args []string) (Result, error) {
	if cc.Portfolio == nil {
		return Errorf("portfolio data is unavailable"), nil
	}

	var b strings.Builder
	for i, exp := range cc.Portfolio.Experience {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s - %s (%s)\n", exp.Role, exp.Company, exp.Period)
		for _, h := range exp.Highlights {
			fmt.Fprintf(&b, "  · %s\n", h)
		}
	}
	return Success(strings.TrimRight(b.String(), "\n")), nil
}

// HandleEducation lists the education history.
func HandleEducation(ctx context.Context, cc *Context, args []string) (Result, error) {
	if cc.Portfolio == nil {
		return Errorf("portfolio data is unavailable"), nil
	}

	var b strings.Builder
	for _, edu := range cc.Portfolio.Education {
		fmt.Fprintf(&b, "%s - %s (%s)\n", edu.Degree, edu.School, edu.Period)
	}
	return Success(strings.TrimRight(b.String(), "\n")), nil
}

// HandleContact lists contact channels.
func HandleContact(ctx context.Context, cc *Context, args []string) (Result, error) {
	if cc.Portfolio == nil {
		return Errorf("portfolio data is unavailable"), nil
	}

	c := cc.Portfolio.Contact
	var b strings.Builder
	if c.Email != "" {
		fmt.Fprintf(&b, "email     %s\n", c.Email)
	}
	if c.GitHub != "" {
		fmt.Fprintf(&b, "github    %s\n", c.GitHub)
	}
	if c.LinkedIn != "" {
		fmt.Fprintf(&b, "linkedin  %s\n", c.LinkedIn)
	}
	if c.Website != "" {
		fmt.Fprintf(&b, "website   %s\n", c.Website)
	}
	b.WriteString("\nOr just: send <your name> \"<message>\"")
	return Success(b.String()), nil
}

// HandleSend delivers a visitor message through the configured mailer.
func HandleSend(ctx context.Context, cc *Context, args []string) (Result, error) {
	if cc.Mailer == nil {
		return Warning("Message sending isn't configured here. Email me instead - see 'contact'."), nil
	}

	from := args[0]
	message := strings.Join(args[1:], " ")

	if err := cc.Mailer.Send(ctx, from, message); err != nil {
		return Result{}, err
	}
	return Success("Message sent. Thanks, " + from + "!"), nil
}

// =============================================================================
// TERMINAL HANDLERS
// =============================================================================

// ThemeNames are the selectable color themes.
var ThemeNames = []string{"dark", "light", "auto"}

// HandleTheme lists themes or activates one via the shell callback.
func HandleTheme(ctx context.Context, cc *Context, args []string) (Result, error) {
	if len(args) == 0 {
		return Info("themes: " + strings.Join(ThemeNames, ", ") + "\nusage: theme <name>"), nil
	}

	name := strings.ToLower(args[0])
	known := false
	for _, t := range ThemeNames {
		if t == name {
			known = true
			break
		}
	}
	if !known {
		return Errorf("unknown theme: %s (themes: %s)", name, strings.Join(ThemeNames, ", ")), nil
	}

	if cc.SetTheme != nil {
		if err := cc.SetTheme(name); err != nil {
			return Result{}, err
		}
	}
	res := Success("theme: " + name)
	res.Payload = ThemePayload{Name: name}
	return res, nil
}

// HandleBanner re-prints the welcome banner.
func HandleBanner(ctx context.Context, cc *Context, args []string) (Result, error) {
	name := ""
	if cc.Portfolio != nil {
		name = cc.Portfolio.Profile.Name
	}
	return Success(Banner(name, cc.Version)), nil
}

// HandleHistory shows the typed-command log, oldest first.
func HandleHistory(ctx context.Context, cc *Context, args []string) (Result, error) {
	if cc.CommandHistory == nil || cc.CommandHistory.Len() == 0 {
		return Info("no history yet"), nil
	}

	var b strings.Builder
	for i, line := range cc.CommandHistory.Lines() {
		fmt.Fprintf(&b, "%4d  %s\n", i+1, line)
	}
	return Success(strings.TrimRight(b.String(), "\n")), nil
}

// HandleClear asks the shell to wipe the transcript.
func HandleClear(ctx context.Context, cc *Context, args []string) (Result, error) {
	res := Success("")
	res.Payload = ClearPayload{}
	return res, nil
}

// HandleEcho prints its arguments.
func HandleEcho(ctx context.Context, cc *Context, args []string) (Result, error) {
	return Success(strings.Join(args, " ")), nil
}

// HandleWhoami answers the eternal question.
func HandleWhoami(ctx context.Context, cc *Context, args []string) (Result, error) {
	return Success("guest - but I'd love to know! Try: send <your name> \"hi\""), nil
}

// HandleDate prints the current time.
func HandleDate(ctx context.Context, cc *Context, args []string) (Result, error) {
	return Success(time.Now().Format("Mon Jan 2 15:04:05 MST 2006")), nil
}

// HandleSudo denies, with prejudice.
func HandleSudo(ctx context.Context, cc *Context, args []string) (Result, error) {
	return Warning("guest is not in the sudoers file. This incident will be reported."), nil
}

// =============================================================================
// RENDER HELPERS
// =============================================================================

// renderMarkdown renders markdown for terminal display, falling back to
// the raw text when rendering fails.
func renderMarkdown(md string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
