package cmd

import (
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc"
	"github.com/purpose168/powermessage/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "修改全局数据配置",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "设置配置字段",
	Long: heredoc.Doc(`
		在全局数据配置文件中设置字段，key 使用点分路径。
		true/false 与整数会按对应的 JSON 类型写入，其余按字符串写入。
	`),
	Example: heredoc.Doc(`
		# 默认美化输出
		powermsg config set options.pretty true

		# 使用 ~ 作为颜色代码前缀
		powermsg config set options.alternate_color_char '~'
	`),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigOnly(cmd)
		if err != nil {
			return err
		}
		if err := cfg.SetConfigField(args[0], parseConfigValue(args[1])); err != nil {
			return err
		}
		cmd.Printf("已写入 %s\n", cfg.DataConfigPath())
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "删除配置字段",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigOnly(cmd)
		if err != nil {
			return err
		}
		if !cfg.HasConfigField(args[0]) {
			return fmt.Errorf("配置字段 %s 不存在", args[0])
		}
		return cfg.RemoveConfigField(args[0])
	},
}

func init() {
	configCmd.AddCommand(configSetCmd, configUnsetCmd)
}

func loadConfigOnly(cmd *cobra.Command) (*config.Config, error) {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	debug, _ := cmd.Flags().GetBool("debug")
	cwd, err := ResolveCwd(cmd)
	if err != nil {
		return nil, err
	}
	return config.Load(cwd, dataDir, debug)
}

func parseConfigValue(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return s
}
