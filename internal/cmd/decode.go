package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/purpose168/powermessage/internal/chat"
	"github.com/purpose168/powermessage/internal/log"
	"github.com/purpose168/powermessage/internal/markup"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	fetchTimeout = 15 * time.Second
	maxFetchSize = 1 << 20
)

var decodeCmd = &cobra.Command{
	Use:   "decode [json...]",
	Short: "把聊天组件 JSON 还原为标记文本",
	Long: heredoc.Doc(`
		读取聊天组件 JSON（参数、标准输入或 --url）并输出等价的标记文本。

		还原是有损的：成就、统计与物品提示没有对应的标签，会被丢弃。
	`),
	Example: heredoc.Doc(`
		# 还原为标记文本
		powermsg decode '{"text":"","extra":[{"text":"hi","color":"red"}]}'

		# 输出旧版 § 文本
		powermsg decode --legacy < motd.json

		# 从远程地址读取并输出 YAML
		powermsg decode --yaml --url https://example.com/motd.json
	`),
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(cmd)
		if err != nil {
			return err
		}

		var data string
		if url, _ := cmd.Flags().GetString("url"); url != "" {
			data, err = fetch(cmd.Context(), url)
		} else {
			data, err = readInput(cmd, args)
		}
		if err != nil {
			return err
		}

		m, err := chat.ParseJSON(data, chat.WithAlternateChar(cfg.AlternateChar()))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch {
		case flagSet(cmd, "yaml"):
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(m); err != nil {
				return fmt.Errorf("编码 YAML 失败: %w", err)
			}
			return enc.Close()
		case flagSet(cmd, "plain"):
			_, err = fmt.Fprintln(out, m.Text())
		case flagSet(cmd, "legacy"):
			_, err = fmt.Fprintln(out, m.Plain())
		default:
			_, err = fmt.Fprintln(out, markup.Render(m, cfg.AlternateChar()))
		}
		return err
	},
}

func init() {
	decodeCmd.Flags().String("url", "", "从 HTTP 地址读取 JSON")
	decodeCmd.Flags().Bool("yaml", false, "输出可由 show 读取的 YAML")
	decodeCmd.Flags().Bool("plain", false, "只输出去除格式的纯文本")
	decodeCmd.Flags().Bool("legacy", false, "输出带 § 颜色代码的旧版文本")
	decodeCmd.MarkFlagsMutuallyExclusive("yaml", "plain", "legacy")
}

func flagSet(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

// fetch 通过带日志的 HTTP 客户端获取 url 的内容。
func fetch(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := log.NewHTTPClient(fetchTimeout).Do(req)
	if err != nil {
		return "", fmt.Errorf("请求 %s 失败: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("请求 %s 失败: %s", url, resp.Status)
	}
	bts, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchSize))
	if err != nil {
		return "", fmt.Errorf("读取响应失败: %w", err)
	}
	return strings.TrimSpace(string(bts)), nil
}
