package cmd

import (
	"fmt"
	"path/filepath"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/MakeNowJust/heredoc"
	"github.com/purpose168/powermessage/internal/config"
	"github.com/purpose168/powermessage/internal/home"
	"github.com/spf13/cobra"
)

var dirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "打印 powermsg 使用的全局目录",
	Long: heredoc.Doc(`
		打印 powermsg 读取全局配置的目录，以及 config set 写入的数据目录。
		项目级的日志和保存的消息位于工作目录下的 .powermsg 中。
	`),
	Example: heredoc.Doc(`
		# 打印所有目录
		powermsg dirs

		# 仅打印配置目录
		powermsg dirs config

		# 仅打印数据目录
		powermsg dirs data
	`),
	Run: func(cmd *cobra.Command, args []string) {
		if isTerminal(cmd.OutOrStdout()) {
			// 我们在 TTY 中：美化输出。
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				StyleFunc(func(row, col int) lipgloss.Style {
					return lipgloss.NewStyle().Padding(0, 2)
				}).
				Row("Config", home.Short(filepath.Dir(config.GlobalConfig()))).
				Row("Data", home.Short(filepath.Dir(config.GlobalConfigData())))
			_, _ = lipgloss.Fprintln(cmd.OutOrStdout(), t)
			return
		}
		// 不在 TTY 中。
		fmt.Fprintln(cmd.OutOrStdout(), filepath.Dir(config.GlobalConfig()))
		fmt.Fprintln(cmd.OutOrStdout(), filepath.Dir(config.GlobalConfigData()))
	},
}

var configDirCmd = &cobra.Command{
	Use:   "config",
	Short: "打印全局配置目录",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), filepath.Dir(config.GlobalConfig()))
	},
}

var dataDirCmd = &cobra.Command{
	Use:   "data",
	Short: "打印全局数据目录",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), filepath.Dir(config.GlobalConfigData()))
	},
}

func init() {
	dirsCmd.AddCommand(configDirCmd, dataDirCmd)
}
