package chat

import (
	"errors"
	"fmt"
	"io"
)

// Recipient 是消息的接收方，由宿主实现。
type Recipient interface {
	// SupportsRich 报告接收方是否能渲染聊天组件 JSON。
	SupportsRich() bool
	// DeliverText 投递旧版纯文本。
	DeliverText(text string) error
	// DeliverRich 投递聊天组件 JSON。
	DeliverRich(payload string) error
}

// Send 向每个接收方投递消息：支持富文本的接收方收到 JSON，其余收到 Plain。
// 某个接收方投递失败不会影响其他接收方；JSON 序列化失败时只有富文本接收方
// 收不到消息。所有错误合并后返回。
func (m *Message) Send(recipients ...Recipient) error {
	payload, jsonErr := m.JSON()
	var errs []error
	for _, r := range recipients {
		if !r.SupportsRich() {
			if err := r.DeliverText(m.Plain()); err != nil {
				errs = append(errs, fmt.Errorf("投递纯文本失败: %w", err))
			}
			continue
		}
		if jsonErr != nil {
			errs = append(errs, fmt.Errorf("投递富文本失败: %w", jsonErr))
			continue
		}
		if err := r.DeliverRich(payload); err != nil {
			errs = append(errs, fmt.Errorf("投递富文本失败: %w", err))
		}
	}
	return errors.Join(errs...)
}

// WriterRecipient 把消息逐行写入 io.Writer。
type WriterRecipient struct {
	W    io.Writer
	Rich bool
}

// SupportsRich 实现 Recipient。
func (w WriterRecipient) SupportsRich() bool { return w.Rich }

// DeliverText 实现 Recipient。
func (w WriterRecipient) DeliverText(text string) error {
	_, err := fmt.Fprintln(w.W, text)
	return err
}

// DeliverRich 实现 Recipient。
func (w WriterRecipient) DeliverRich(payload string) error {
	_, err := fmt.Fprintln(w.W, payload)
	return err
}
