package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/x/exp/charmtone"
	"github.com/purpose168/powermessage/internal/chat"
	"github.com/spf13/cobra"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "列出所有颜色与样式代码",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		tokens := chat.Tokens()
		if isTerminal(cmd.OutOrStdout()) {
			// 我们在 TTY 中：用表格展示并给颜色加上色块。
			header := lipgloss.NewStyle().Bold(true).Foreground(charmtone.Charple).Padding(0, 1)
			cell := lipgloss.NewStyle().Padding(0, 1)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(charmtone.Squid)).
				Headers("Code", "Name", "Kind", "Sample").
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return header
					}
					return cell
				})
			for _, tok := range tokens {
				t.Row(string(tok.Code()), tok.Name(), tokenKind(tok), sample(tok))
			}
			_, _ = lipgloss.Fprintln(cmd.OutOrStdout(), t)
			return
		}
		// 不在 TTY 中。
		for _, tok := range tokens {
			fmt.Fprintf(cmd.OutOrStdout(), "%c\t%s\t%s\n", tok.Code(), tok.Name(), tokenKind(tok))
		}
	},
}

func tokenKind(t chat.ColorToken) string {
	switch {
	case t.IsColor():
		return "color"
	case t.IsFormat():
		return "format"
	default:
		return "reset"
	}
}

func sample(t chat.ColorToken) string {
	s := lipgloss.NewStyle()
	switch t {
	case chat.Bold:
		s = s.Bold(true)
	case chat.Italic:
		s = s.Italic(true)
	case chat.Underline:
		s = s.Underline(true)
	case chat.Strikethrough:
		s = s.Strikethrough(true)
	case chat.Magic:
		s = s.Blink(true)
	}
	if hex := t.Hex(); hex != "" {
		s = s.Foreground(lipgloss.Color(hex))
	}
	return s.Render(t.DisplayName())
}
