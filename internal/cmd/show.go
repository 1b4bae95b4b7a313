package cmd

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/purpose168/powermessage/internal/chat"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "输出保存的消息",
	Long:  "读取 render --save 保存的消息，并按与 render 相同的方式输出。",
	Example: heredoc.Doc(`
		# 输出数据目录中保存的 motd
		powermsg show motd

		# 以旧版文本输出指定文件
		powermsg show --legacy ./messages/motd.yaml
	`),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(cmd)
		if err != nil {
			return err
		}
		m, err := chat.LoadFile(storedMessagePath(cfg, args[0]), chat.WithAlternateChar(cfg.AlternateChar()))
		if err != nil {
			return err
		}
		return writeMessage(cmd, cfg, m)
	},
}

func init() {
	showCmd.Flags().BoolP("pretty", "p", false, "美化 JSON 输出")
	showCmd.Flags().Bool("plain", false, "只输出去除格式的纯文本")
	showCmd.Flags().Bool("legacy", false, "输出带 § 颜色代码的旧版文本")
	showCmd.MarkFlagsMutuallyExclusive("plain", "legacy", "pretty")
}
