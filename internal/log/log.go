// Package log 配置 powermsg 的结构化日志输出。
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	initOnce    sync.Once   // 确保初始化只执行一次
	initialized atomic.Bool // 标记日志系统是否已初始化
)

// Setup 初始化日志系统，日志以 JSON 行写入 logFile 并按大小轮转。
// 参数:
//   - logFile: 日志文件路径
//   - debug: 是否输出调试级别日志
func Setup(logFile string, debug bool) {
	initOnce.Do(func() {
		logRotator := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 0,
			MaxAge:     30, // 天
			Compress:   false,
		}
		slog.SetDefault(slog.New(newHandler(logRotator, debug)))
		initialized.Store(true)
	})
}

func newHandler(w io.Writer, debug bool) slog.Handler {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})
}

// Initialized 报告 Setup 是否已经执行。
func Initialized() bool {
	return initialized.Load()
}

// RecoverPanic 恢复 panic，记录错误并在 dir 下写入包含堆栈的 panic 报告。
// 该函数应在 defer 语句中调用。
// 参数:
//   - name: panic 发生位置的标识名称
//   - dir: 报告写入的目录，为空时写入当前目录
//   - cleanup: 写入报告后执行的清理函数（可选）
func RecoverPanic(name, dir string, cleanup func()) {
	r := recover()
	if r == nil {
		return
	}
	slog.Error("发生panic", "name", name, "panic", r)

	path, err := writePanicReport(dir, name, r, debug.Stack())
	if err != nil {
		slog.Error("写入panic报告失败", "error", err)
	} else {
		slog.Info("已写入panic报告", "path", path)
	}
	if cleanup != nil {
		cleanup()
	}
}

func writePanicReport(dir, name string, r any, stack []byte) (string, error) {
	now := time.Now()
	filename := fmt.Sprintf("powermsg-panic-%s-%s.log", name, now.Format("20060102-150405"))
	path := filepath.Join(dir, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	fmt.Fprintf(file, "Panic in %s: %v\n\n", name, r)
	fmt.Fprintf(file, "Time: %s\n\n", now.Format(time.RFC3339))
	fmt.Fprintf(file, "Stack Trace:\n%s\n", stack)
	return path, nil
}
