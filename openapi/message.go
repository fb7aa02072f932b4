package openapi

import (
	"context"
)

// SendMessage 发送文本消息
func (o *openAPI) SendMessage(ctx context.Context, chatID string, text string, opts *MessageOptions) (*Result, error) {
	p := Params{"chat_id": chatID, "text": text}
	opts.apply(p)
	return o.do(ctx, ActionSendMessage, p)
}

// EditMessageText 修改已发送消息的文本
func (o *openAPI) EditMessageText(ctx context.Context, chatID string, messageID int64, text string,
	opts *EditOptions) (*Result, error) {
	p := Params{"chat_id": chatID, "message_id": messageID, "text": text}
	opts.apply(p)
	return o.do(ctx, ActionEditMessageText, p)
}

// DeleteMessage 撤回消息
func (o *openAPI) DeleteMessage(ctx context.Context, chatID string, messageID int64) (*Result, error) {
	return o.do(ctx, ActionDeleteMessage, Params{"chat_id": chatID, "message_id": messageID})
}
