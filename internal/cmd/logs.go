package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"charm.land/log/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/nxadm/tail"
	"github.com/purpose168/powermessage/internal/config"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

const defaultTailLines = 1000

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "查看 powermsg 日志",
	Long:  `查看当前项目数据目录中的 powermsg 日志，用于排查标记解析和远程读取的问题。`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("data-dir")
		follow, _ := cmd.Flags().GetBool("follow")
		tailLines, _ := cmd.Flags().GetInt("tail")

		cwd, err := ResolveCwd(cmd)
		if err != nil {
			return err
		}

		log.SetLevel(log.DebugLevel)
		log.SetOutput(cmd.OutOrStdout())
		if !isTerminal(cmd.OutOrStdout()) {
			log.SetColorProfile(colorprofile.NoTTY)
		}

		cfg, err := config.Load(cwd, dataDir, false)
		if err != nil {
			return fmt.Errorf("加载配置失败: %w", err)
		}
		logsFile := cfg.LogFile()
		if _, err := os.Stat(logsFile); os.IsNotExist(err) {
			log.Warn("未找到日志，当前目录可能还没有运行过 powermsg。", "path", logsFile)
			return nil
		}

		lines, err := lastLines(logsFile, tailLines)
		if err != nil {
			return err
		}
		for _, line := range lines {
			printLogLine(line)
		}
		if len(lines) == tailLines {
			cmd.PrintErrf("\n显示最后 %d 行。完整日志位于: %s\n", tailLines, logsFile)
		}

		if !follow {
			return nil
		}
		cmd.PrintErrln("正在跟踪新的日志条目...")
		return followLogs(cmd.Context(), logsFile)
	},
}

func init() {
	logsCmd.Flags().BoolP("follow", "f", false, "跟踪日志输出")
	logsCmd.Flags().IntP("tail", "t", defaultTailLines, "只显示最后 N 行")
}

// lastLines 读取整个文件并返回最后 n 行。
func lastLines(logsFile string, n int) ([]string, error) {
	t, err := tail.TailFile(logsFile, tail.Config{
		Follow: false,
		ReOpen: false,
		Logger: tail.DiscardingLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("无法读取日志文件: %w", err)
	}
	defer t.Stop()

	var lines []string
	for line := range t.Lines {
		if line.Err != nil {
			continue
		}
		lines = append(lines, line.Text)
		if len(lines) > n {
			lines = lines[len(lines)-n:]
		}
	}
	return lines, nil
}

// followLogs 从文件末尾开始打印新写入的行，直到 ctx 结束。
func followLogs(ctx context.Context, logsFile string) error {
	t, err := tail.TailFile(logsFile, tail.Config{
		Follow:   true,
		ReOpen:   true,
		Logger:   tail.DiscardingLogger,
		Location: &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd},
	})
	if err != nil {
		return fmt.Errorf("无法追踪日志文件: %w", err)
	}
	defer t.Stop()

	for {
		select {
		case line := <-t.Lines:
			if line.Err != nil {
				continue
			}
			printLogLine(line.Text)
		case <-ctx.Done():
			return nil
		}
	}
}

// printLogLine 把一行 slog JSON 日志转换为 charm log 输出，属性保持原有顺序。
func printLogLine(lineText string) {
	if !gjson.Valid(lineText) {
		return
	}
	entry := gjson.Parse(lineText)

	var attrs []any
	entry.ForEach(func(key, value gjson.Result) bool {
		switch key.String() {
		case "msg", "level", "time":
		case "source":
			attrs = append(attrs, "source", fmt.Sprintf("%s:%d", value.Get("file").String(), value.Get("line").Int()))
		default:
			attrs = append(attrs, key.String(), value.Value())
		}
		return true
	})

	ts, err := time.Parse(time.RFC3339, entry.Get("time").String())
	if err != nil {
		ts = time.Now()
	}
	log.SetTimeFunction(func(time.Time) time.Time { return ts })

	msg := entry.Get("msg").String()
	switch entry.Get("level").String() {
	case "DEBUG":
		log.Debug(msg, attrs...)
	case "WARN":
		log.Warn(msg, attrs...)
	case "ERROR":
		log.Error(msg, attrs...)
	default:
		log.Info(msg, attrs...)
	}
}
