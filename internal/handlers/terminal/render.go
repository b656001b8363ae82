package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/hakem/internal/models"
	"github.com/KirkDiggler/hakem/internal/session"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// clearScreen wipes the terminal so the next player cannot scroll back to a
// secret role
const clearScreen = "\033[H\033[2J"

// palette holds the colours used by the renderer
type palette struct {
	Info, Warn, Header, Prompt, Win, Lose *color.Color
	Roles                                map[models.Role]*color.Color
}

func newPalette(noColor bool) *palette {
	p := &palette{
		Info:   color.New(color.FgCyan),
		Warn:   color.New(color.FgHiYellow),
		Header: color.New(color.FgWhite, color.Bold),
		Prompt: color.New(color.FgHiWhite),
		Win:    color.New(color.FgGreen),
		Lose:   color.New(color.FgRed),
		Roles: map[models.Role]*color.Color{
			models.RoleHakem:    color.New(color.FgYellow, color.Bold),
			models.RoleJalad:    color.New(color.FgBlue, color.Bold),
			models.RoleHarami:   color.New(color.FgRed, color.Bold),
			models.RoleMofatish: color.New(color.FgMagenta, color.Bold),
		},
	}

	if noColor {
		for _, c := range []*color.Color{p.Info, p.Warn, p.Header, p.Prompt, p.Win, p.Lose} {
			c.DisableColor()
		}
		for _, c := range p.Roles {
			c.DisableColor()
		}
	}
	return p
}

func (p *palette) role(r models.Role) string {
	if c, ok := p.Roles[r]; ok {
		return c.Sprint(r.String())
	}
	return r.String()
}

// renderer writes views to the terminal
type renderer struct {
	out io.Writer
	c   *palette
}

func (r *renderer) newTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleRounded)
	if title != "" {
		t.SetTitle(title)
		t.Style().Title.Align = text.AlignCenter
	}
	return t
}

func (r *renderer) clear() {
	fmt.Fprint(r.out, clearScreen)
}

func (r *renderer) help() {
	r.c.Header.Fprintln(r.out, "\n--- Hakem Help ---")
	t := r.newTable("")
	t.AppendHeader(table.Row{"Command", "Alias", "Description"})
	for _, c := range Commands {
		t.AppendRow(table.Row{c.Name, c.Alias, c.Description})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

func (r *renderer) roundBanner(v session.View) {
	r.c.Header.Fprintf(r.out, "\n=== Round %d ===\n", v.Round)
}

func (r *renderer) passDevice(player string) {
	r.c.Info.Fprintf(r.out, "\nPass the device to %s.\n", player)
}

func (r *renderer) secretRole(player string, role models.Role) {
	fmt.Fprintf(r.out, "\n%s, your role this round is %s\n", player, r.c.role(role))
	fmt.Fprintln(r.out, "Remember it and keep it to yourself.")
}

func (r *renderer) hakem(v session.View) {
	fmt.Fprintf(r.out, "\n%s is the %s.\n", v.Hakem, r.c.role(models.RoleHakem))
	fmt.Fprintf(r.out, "The %s must now find the %s.\n", r.c.role(models.RoleJalad), r.c.role(models.RoleHarami))
}

func (r *renderer) candidates(candidates []string) {
	for i, name := range candidates {
		fmt.Fprintf(r.out, " %2d: %s\n", i+1, name)
	}
}

func (r *renderer) result(result models.RoundResult, roster []string) {
	if result.CorrectGuess {
		r.c.Win.Fprintf(r.out, "\nCorrect! %s found the %s. %s wins %d points.\n",
			result.Guesser, models.RoleHarami, result.Winner, result.Points)
	} else {
		r.c.Lose.Fprintf(r.out, "\nWrong! %s accused %s, but %s was the %s. %s wins %d points.\n",
			result.Guesser, result.Guess, result.ActualHarami, models.RoleHarami, result.Winner, result.Points)
	}

	t := r.newTable(fmt.Sprintf("Round %d roles", result.Round))
	t.AppendHeader(table.Row{"Player", "Role"})
	for _, player := range roster {
		t.AppendRow(table.Row{player, r.c.role(result.Roles[player])})
	}
	t.Render()
}

func (r *renderer) leaderboard(standings []models.Standing) {
	t := r.newTable("Scoreboard")
	t.AppendHeader(table.Row{"#", "Player", "Score"})
	for _, s := range standings {
		t.AppendRow(table.Row{s.Position, s.Player, s.Score})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	t.Render()
}

func (r *renderer) history(history []models.RoundResult, stats models.Stats) {
	if len(history) == 0 {
		r.c.Info.Fprintln(r.out, "No rounds played yet.")
		return
	}

	t := r.newTable("History")
	t.AppendHeader(table.Row{"Round", "Jalad", "Accused", "Harami", "Result", "Winner", "Points"})
	for _, h := range history {
		outcome := r.c.Lose.Sprint("wrong")
		if h.CorrectGuess {
			outcome = r.c.Win.Sprint("correct")
		}
		t.AppendRow(table.Row{h.Round, h.Guesser, h.Guess, h.ActualHarami, outcome, h.Winner, h.Points})
	}
	t.AppendFooter(table.Row{"", "", "", "", fmt.Sprintf("%d / %d", stats.CorrectGuesses, stats.WrongGuesses), "", ""})
	t.Render()
}

func (r *renderer) results(v session.View) {
	r.c.Header.Fprintln(r.out, "\n=== Game over ===")
	r.leaderboard(v.Leaderboard)
	fmt.Fprintf(r.out, "Rounds played: %d  Correct guesses: %d  Wrong guesses: %d\n",
		v.Stats.Rounds, v.Stats.CorrectGuesses, v.Stats.WrongGuesses)

	switch len(v.Leaders) {
	case 0:
	case 1:
		r.c.Win.Fprintf(r.out, "%s wins the game!\n", v.Leaders[0])
	default:
		last := len(v.Leaders) - 1
		r.c.Win.Fprintf(r.out, "It's a tie between %s and %s!\n", strings.Join(v.Leaders[:last], ", "), v.Leaders[last])
	}
}

func (r *renderer) warn(format string, args ...any) {
	r.c.Warn.Fprintf(r.out, format+"\n", args...)
}

func (r *renderer) info(format string, args ...any) {
	r.c.Info.Fprintf(r.out, format+"\n", args...)
}

func (r *renderer) say(message string) {
	r.c.Info.Fprintln(r.out, message)
}
