package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/MakeNowJust/heredoc"
	"github.com/purpose168/powermessage/internal/chat"
	"github.com/purpose168/powermessage/internal/filepathext"
	"github.com/purpose168/powermessage/internal/fsext"
	"github.com/purpose168/powermessage/internal/markup"
	"github.com/purpose168/powermessage/internal/stringext"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var bundleCmd = &cobra.Command{
	Use:   "bundle <glob>",
	Short: "把匹配的标记文件打包为一个 YAML 文档",
	Long: heredoc.Doc(`
		在工作目录下查找与 glob 匹配的标记文件（支持 **），逐个解析，
		并输出一个以相对路径为键、以消息为值的 YAML 文档。

		隐藏文件、.gitignore 与 .powermsgignore 中列出的路径会被跳过。
	`),
	Example: heredoc.Doc(`
		# 打包所有 .pm 文件到标准输出
		powermsg bundle '**/*.pm'

		# 写入文件
		powermsg bundle 'lobby/*.pm' --out lobby.yaml
	`),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(cmd)
		if err != nil {
			return err
		}

		root := cfg.WorkingDir()
		files, err := fsext.Glob(root, args[0])
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("没有文件匹配 %q", args[0])
		}

		bundle, err := renderFiles(root, files, markup.NewParser(cfg.AlternateChar()))
		if err != nil {
			return err
		}
		slog.Info("已打包标记文件", "pattern", args[0], "count", len(bundle))

		path, _ := cmd.Flags().GetString("out")
		if path == "" {
			return writeBundle(cmd.OutOrStdout(), bundle)
		}
		f, err := os.Create(filepathext.SmartJoin(root, path))
		if err != nil {
			return fmt.Errorf("创建输出文件失败: %w", err)
		}
		if err := writeBundle(f, bundle); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	},
}

func init() {
	bundleCmd.Flags().StringP("out", "o", "", "输出文件，默认为标准输出")
}

// renderFiles 并发解析 files，返回以相对于 root 的斜杠路径为键的消息。
func renderFiles(root string, files []string, parser markup.Parser) (map[string]*chat.Message, error) {
	messages := make([]*chat.Message, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		g.Go(func() error {
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("读取 %s 失败: %w", path, err)
			}
			m, err := parser.Parse(stringext.TrimInput(string(content)))
			if err != nil {
				return fmt.Errorf("解析 %s 失败: %w", path, err)
			}
			messages[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bundle := make(map[string]*chat.Message, len(files))
	for i, path := range files {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		bundle[filepath.ToSlash(rel)] = messages[i]
	}
	return bundle, nil
}

func writeBundle(w io.Writer, bundle map[string]*chat.Message) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(bundle); err != nil {
		return fmt.Errorf("编码 YAML 失败: %w", err)
	}
	return enc.Close()
}
