package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/x/term"
	"github.com/purpose168/powermessage/internal/chat"
	"github.com/purpose168/powermessage/internal/config"
	"github.com/purpose168/powermessage/internal/filepathext"
	"github.com/purpose168/powermessage/internal/home"
	"github.com/purpose168/powermessage/internal/markup"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

var renderCmd = &cobra.Command{
	Use:   "render [markup...]",
	Short: "把标记文本渲染为聊天组件 JSON",
	Long: heredoc.Doc(`
		把标记文本渲染为聊天组件 JSON。没有参数时从标准输入读取。

		颜色代码使用 & 前缀（可通过 alternate_color_char 配置），行内标签
		[txt:...]、[file:...]、[url:...]、[scmd:...]、[cmd:...] 作用于它前面的文本。
	`),
	Example: heredoc.Doc(`
		# 渲染为 JSON
		powermsg render 'Hello world[txt:&6Hover text!]. &3Click me[cmd:say hi]'

		# 美化输出
		powermsg render --pretty '&cRed&9Blue'

		# 输出旧版 § 文本
		powermsg render --legacy '&cRed&9Blue'

		# 渲染并保存到数据目录
		powermsg render --save motd '&aWelcome!'
	`),
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(cmd)
		if err != nil {
			return err
		}
		raw, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		m, err := markup.NewParser(cfg.AlternateChar()).Parse(raw)
		if err != nil {
			return fmt.Errorf("解析标记失败: %w", err)
		}

		if name, _ := cmd.Flags().GetString("save"); name != "" {
			path := storedMessagePath(cfg, name)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("创建消息目录失败: %w", err)
			}
			if err := chat.SaveFile(path, m); err != nil {
				return err
			}
			cmd.PrintErrf("已保存到 %s\n", home.Short(path))
		}

		return writeMessage(cmd, cfg, m)
	},
}

func init() {
	renderCmd.Flags().BoolP("pretty", "p", false, "美化 JSON 输出")
	renderCmd.Flags().Bool("plain", false, "只输出去除格式的纯文本")
	renderCmd.Flags().Bool("legacy", false, "输出带 § 颜色代码的旧版文本")
	renderCmd.Flags().StringP("save", "s", "", "把消息保存为 YAML：名称保存到数据目录，带扩展名的路径相对于工作目录")
	renderCmd.MarkFlagsMutuallyExclusive("plain", "legacy", "pretty")
}

// storedMessagePath 解析保存的消息位置：不带扩展名的名称位于数据目录的
// messages 下，带扩展名的视为相对于工作目录的文件路径。
func storedMessagePath(cfg *config.Config, name string) string {
	if filepath.Ext(name) == "" {
		return filepath.Join(cfg.Options.DataDirectory, "messages", name+".yaml")
	}
	return filepathext.SmartJoin(cfg.WorkingDir(), home.Long(name))
}

// writeMessage 按命令行标志和配置把消息写到标准输出。
func writeMessage(cmd *cobra.Command, cfg *config.Config, m *chat.Message) error {
	out := cmd.OutOrStdout()
	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		_, err := fmt.Fprintln(out, m.Text())
		return err
	}

	legacy := cfg.Options.Legacy
	if cmd.Flags().Changed("legacy") {
		legacy, _ = cmd.Flags().GetBool("legacy")
	}
	prettyOut := cfg.Options.Pretty
	if cmd.Flags().Changed("pretty") {
		prettyOut, _ = cmd.Flags().GetBool("pretty")
	}

	return m.Send(&terminalRecipient{
		w:      out,
		rich:   !legacy,
		pretty: prettyOut,
		indent: cfg.Options.Indent,
		color:  isTerminal(out),
	})
}

// terminalRecipient 把消息写到终端或管道，可选地美化并着色 JSON。
type terminalRecipient struct {
	w      io.Writer
	rich   bool
	pretty bool
	indent int
	color  bool
}

func (r *terminalRecipient) SupportsRich() bool { return r.rich }

func (r *terminalRecipient) DeliverText(text string) error {
	_, err := fmt.Fprintln(r.w, text)
	return err
}

func (r *terminalRecipient) DeliverRich(payload string) error {
	out := []byte(payload)
	if r.pretty {
		out = pretty.PrettyOptions(out, &pretty.Options{
			Width:  80,
			Indent: strings.Repeat(" ", r.indent),
		})
		if r.color {
			out = pretty.Color(out, nil)
		}
		_, err := r.w.Write(out)
		return err
	}
	_, err := fmt.Fprintln(r.w, payload)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}
