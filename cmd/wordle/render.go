package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/dailywordle/internal/api"
)

var (
	tileBase     = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF"))
	correctTile  = tileBase.Background(lipgloss.Color("#538D4E"))
	presentTile  = tileBase.Background(lipgloss.Color("#B59F3B"))
	absentTile   = tileBase.Background(lipgloss.Color("#3A3A3C"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	barStyle     = lipgloss.NewStyle().Background(lipgloss.Color("#538D4E"))
	headingStyle = lipgloss.NewStyle().Bold(true)
)

// renderer formats responses. Without color it falls back to bracket markers:
// [A] correct, (A) wrong position, " A " absent.
type renderer struct {
	color bool
}

func (r renderer) tile(l api.Letter) string {
	ch := strings.ToUpper(l.Char)
	if r.color {
		switch l.Outcome {
		case api.OutcomeCorrect:
			return correctTile.Render(ch)
		case api.OutcomeWrongPosition:
			return presentTile.Render(ch)
		default:
			return absentTile.Render(ch)
		}
	}
	switch l.Outcome {
	case api.OutcomeCorrect:
		return "[" + ch + "]"
	case api.OutcomeWrongPosition:
		return "(" + ch + ")"
	default:
		return " " + ch + " "
	}
}

func (r renderer) style(s lipgloss.Style, text string) string {
	if r.color {
		return s.Render(text)
	}
	return text
}

// turn renders one server reply.
func (r renderer) turn(resp *api.GuessResponse) string {
	if !resp.Valid {
		return r.style(noticeStyle, "Not in word list, try again.")
	}
	tiles := make([]string, len(resp.Letters))
	for i, l := range resp.Letters {
		tiles[i] = r.tile(l)
	}
	var b strings.Builder
	b.WriteString(strings.Join(tiles, " "))
	fmt.Fprintf(&b, "  %d/6\n", resp.TurnsUsed)
	b.WriteString(r.style(mutedStyle, "in: "+strings.Join(resp.Included, " ")+"  out: "+strings.Join(resp.Excluded, " ")))
	if resp.GameOver {
		b.WriteString("\n")
		if resp.Correct {
			b.WriteString(r.style(headingStyle, fmt.Sprintf("Solved in %d!", resp.TurnsUsed)))
		} else {
			b.WriteString(r.style(headingStyle, "Out of turns. The word was "+strings.ToUpper(resp.Answer)+"."))
		}
	}
	return b.String()
}

// stats renders a day's aggregate with a bar per guess count.
func (r renderer) stats(st *api.StatsResponse) string {
	var b strings.Builder
	b.WriteString(r.style(headingStyle, "Stats for "+st.Date))
	fmt.Fprintf(&b, "\nplayers: %d  won: %d%%  avg guesses: %.2f\n", st.Players, st.WinPercentage, st.AverageGuesses)

	peak := 0
	for _, n := range st.Distribution {
		peak = max(peak, n)
	}
	for i, n := range st.Distribution {
		width := 1
		if peak > 0 {
			width += n * 20 / peak
		}
		bar := strings.Repeat("#", width)
		if r.color {
			bar = barStyle.Render(strings.Repeat(" ", width))
		}
		fmt.Fprintf(&b, "%d %s %d\n", i+1, bar, n)
	}
	return strings.TrimRight(b.String(), "\n")
}
