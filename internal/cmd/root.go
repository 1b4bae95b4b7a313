package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/exp/charmtone"
	"github.com/charmbracelet/x/term"
	"github.com/purpose168/powermessage/internal/ansiext"
	"github.com/purpose168/powermessage/internal/config"
	"github.com/purpose168/powermessage/internal/stringext"
	"github.com/purpose168/powermessage/internal/version"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.PersistentFlags().StringP("cwd", "c", "", "当前工作目录")
	rootCmd.PersistentFlags().StringP("data-dir", "D", "", "自定义 powermsg 数据目录")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "调试")
	rootCmd.Flags().BoolP("help", "h", false, "帮助")

	rootCmd.AddCommand(
		renderCmd,
		decodeCmd,
		showCmd,
		bundleCmd,
		paletteCmd,
		dirsCmd,
		logsCmd,
		schemaCmd,
		configCmd,
	)
}

var rootCmd = &cobra.Command{
	Use:   "powermsg",
	Short: "构建 Minecraft 富文本聊天消息",
	Long:  "把带颜色代码和行内标签的标记文本转换为聊天组件 JSON，或把 JSON 还原为标记文本",
	Example: heredoc.Doc(`
		# 渲染一条带悬停提示的消息
		powermsg render 'Hello world[txt:&6Hover text!]'

		# 从标准输入读取并美化输出
		echo '&cWarning[cmd:/stop]' | powermsg render --pretty

		# 把聊天组件 JSON 还原为标记文本
		powermsg decode '{"text":"hi","color":"red"}'

		# 打印版本
		powermsg -v
	`),
	SilenceUsage: true,
}

var banner = lipgloss.NewStyle().Foreground(charmtone.Cherry).Bold(true).SetString("§ powermsg")

// copied from cobra:
const defaultVersionTemplate = `{{with .DisplayName}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`

func Execute() {
	// cobra 没有提供自定义版本输出的钩子，这里先把带颜色的标题渲染进缓冲区，
	// 再拼接到版本模板前面。
	if term.IsTerminal(os.Stdout.Fd()) {
		var b bytes.Buffer
		w := colorprofile.NewWriter(os.Stdout, os.Environ())
		w.Forward = &b
		_, _ = w.WriteString(banner.String())
		rootCmd.SetVersionTemplate(b.String() + "\n" + defaultVersionTemplate)
	}
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// setup 解析工作目录、加载配置并确保数据目录存在。
func setup(cmd *cobra.Command) (*config.Config, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	dataDir, _ := cmd.Flags().GetString("data-dir")

	cwd, err := ResolveCwd(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(cwd, dataDir, debug)
	if err != nil {
		return nil, err
	}
	if err := createDataDir(cfg.Options.DataDirectory); err != nil {
		return nil, err
	}
	return cfg, nil
}

func ResolveCwd(cmd *cobra.Command) (string, error) {
	cwd, _ := cmd.Flags().GetString("cwd")
	if cwd != "" {
		abs, err := filepath.Abs(cwd)
		if err != nil {
			return "", fmt.Errorf("解析工作目录失败: %w", err)
		}
		if _, err := os.Stat(abs); err != nil {
			return "", fmt.Errorf("工作目录不可用: %w", err)
		}
		return abs, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("获取当前工作目录失败: %w", err)
	}
	return cwd, nil
}

func createDataDir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("创建数据目录失败: %q %w", dir, err)
	}

	gitIgnorePath := filepath.Join(dir, ".gitignore")
	if _, err := os.Stat(gitIgnorePath); os.IsNotExist(err) {
		if err := os.WriteFile(gitIgnorePath, []byte("*\n"), 0o644); err != nil {
			return fmt.Errorf("创建 .gitignore 文件失败: %q %w", gitIgnorePath, err)
		}
	}
	return nil
}

// readInput 返回以空格连接的参数；没有参数时读取管道或重定向的标准输入。
// 标准输入的内容会去除 ANSI 转义序列和末尾换行。
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		if term.IsTerminal(f.Fd()) {
			return "", errors.New("没有输入：请通过参数或标准输入提供内容")
		}
		fi, err := f.Stat()
		if err != nil {
			return "", err
		}
		if fi.Mode()&os.ModeNamedPipe == 0 && !fi.Mode().IsRegular() {
			return "", errors.New("没有输入：请通过参数或标准输入提供内容")
		}
	}
	bts, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("读取标准输入失败: %w", err)
	}
	return stringext.TrimInput(ansiext.Sanitize(string(bts))), nil
}
