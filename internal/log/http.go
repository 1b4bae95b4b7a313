package log

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// maxLoggedBody 是调试日志中记录的请求/响应体的最大字节数。
const maxLoggedBody = 4 << 10

// NewHTTPClient 创建一个在调试模式下记录请求和响应的 HTTP 客户端，
// 用于获取远程的聊天组件 JSON。
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &HTTPRoundTripLogger{
			Transport: http.DefaultTransport,
		},
	}
}

// HTTPRoundTripLogger 是记录请求耗时与内容的 http.RoundTripper。
type HTTPRoundTripLogger struct {
	Transport http.RoundTripper
}

// RoundTrip 实现 http.RoundTripper。
func (h *HTTPRoundTripLogger) RoundTrip(req *http.Request) (*http.Response, error) {
	debugEnabled := slog.Default().Enabled(req.Context(), slog.LevelDebug)
	if debugEnabled {
		slog.Debug(
			"HTTP请求",
			"method", req.Method,
			"url", req.URL,
			"headers", formatHeaders(req.Header),
		)
	}

	start := time.Now()
	resp, err := h.Transport.RoundTrip(req)
	duration := time.Since(start)
	if err != nil {
		slog.Error(
			"HTTP请求失败",
			"method", req.Method,
			"url", req.URL,
			"duration_ms", duration.Milliseconds(),
			"error", err,
		)
		return resp, err
	}
	if !debugEnabled {
		return resp, nil
	}

	var body []byte
	body, resp.Body, err = drainBody(resp.Body)
	slog.Debug(
		"HTTP响应",
		"status_code", resp.StatusCode,
		"headers", formatHeaders(resp.Header),
		"body", bodyToString(body),
		"duration_ms", duration.Milliseconds(),
		"error", err,
	)
	return resp, err
}

// bodyToString 返回适合写入日志的 body 文本：合法 JSON 会被格式化，
// 超过 maxLoggedBody 的内容会被截断。
func bodyToString(body []byte) string {
	body = bytes.TrimSpace(body)
	if gjson.ValidBytes(body) {
		body = bytes.TrimSpace(pretty.Pretty(body))
	}
	if len(body) > maxLoggedBody {
		return string(body[:maxLoggedBody]) + "…"
	}
	return string(body)
}

// formatHeaders 复制头部用于日志记录，认证相关的值会被隐藏。
func formatHeaders(headers http.Header) map[string][]string {
	filtered := make(map[string][]string, len(headers))
	for key, values := range headers {
		lowerKey := strings.ToLower(key)
		if strings.Contains(lowerKey, "authorization") ||
			strings.Contains(lowerKey, "cookie") ||
			strings.Contains(lowerKey, "token") {
			filtered[key] = []string{"[已隐藏]"}
			continue
		}
		filtered[key] = values
	}
	return filtered
}

// drainBody 读出整个 body 并返回其内容和一个可供调用方再次读取的替代 body。
func drainBody(b io.ReadCloser) ([]byte, io.ReadCloser, error) {
	if b == nil || b == http.NoBody {
		return nil, http.NoBody, nil
	}
	defer b.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(b); err != nil {
		return nil, io.NopCloser(&buf), err
	}
	return buf.Bytes(), io.NopCloser(bytes.NewReader(buf.Bytes())), nil
}
