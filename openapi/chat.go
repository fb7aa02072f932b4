package openapi

import (
	"context"
)

// GetFile 拉取文件信息，返回的 file_path 用于拼接下载地址
func (o *openAPI) GetFile(ctx context.Context, fileID string) (*Result, error) {
	return o.do(ctx, ActionGetFile, Params{"file_id": fileID})
}

// GetChat 拉取会话信息
func (o *openAPI) GetChat(ctx context.Context, chatID string) (*Result, error) {
	return o.do(ctx, ActionGetChat, Params{"chat_id": chatID})
}

// GetChatMemberCount 拉取会话成员数
func (o *openAPI) GetChatMemberCount(ctx context.Context, chatID string) (*Result, error) {
	return o.do(ctx, ActionGetChatMemberCount, Params{"chat_id": chatID})
}

// GetChatMember 拉取会话中指定成员
func (o *openAPI) GetChatMember(ctx context.Context, chatID string, userID int64) (*Result, error) {
	return o.do(ctx, ActionGetChatMember, Params{"chat_id": chatID, "user_id": userID})
}

// GetChatAdministrators 拉取会话管理员列表，不包含其他机器人
func (o *openAPI) GetChatAdministrators(ctx context.Context, chatID string) (*Result, error) {
	return o.do(ctx, ActionGetChatAdministrators, Params{"chat_id": chatID})
}

// SetWebhook 设置 webhook 地址，url 为空表示取消 webhook
func (o *openAPI) SetWebhook(ctx context.Context, url string) (*Result, error) {
	return o.do(ctx, ActionSetWebhook, Params{"url": url})
}
