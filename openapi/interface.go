// Package openapi 是 Telegram Bot API 的 HTTP 接口封装。
//
// 每个接口对应一个强类型方法，方法把参数整理成 Params 后交给同一个执行器，
// 执行器根据 action 目录决定 HTTP 方法以及参数放在 query 还是 JSON body 中。
// 返回的 Result 中保留接口原始的 JSON 结构，不做 schema 校验。
//
// 请求失败时会写入 failurelog.Recorder，同时通过 error 返回；
// Result.Map 在失败时返回空 map，兼容只关心返回内容的调用方。
package openapi

import (
	"context"
)

// OpenAPI openapi 完整实现
type OpenAPI interface {
	Base
	UpdateAPI
	MessageAPI
	MediaAPI
	ChatAPI
}

// Base 基础能力接口
type Base interface {
	// Endpoint 接口的完整地址
	Endpoint(action string) string
	// Transport 透传请求
	Transport(ctx context.Context, action string, params Params) (*Result, error)
}

// UpdateAPI 机器人自身信息与事件拉取
type UpdateAPI interface {
	GetUpdates(ctx context.Context) (*Result, error)
	GetMe(ctx context.Context) (*Result, error)
}

// MessageAPI 消息相关接口
type MessageAPI interface {
	SendMessage(ctx context.Context, chatID string, text string, opts *MessageOptions) (*Result, error)
	EditMessageText(ctx context.Context, chatID string, messageID int64, text string, opts *EditOptions) (*Result, error)
	DeleteMessage(ctx context.Context, chatID string, messageID int64) (*Result, error)
}

// MediaAPI 富媒体消息接口，媒体参数为 file_id 或者 http 地址
type MediaAPI interface {
	SendPhoto(ctx context.Context, chatID string, photo string, opts *MediaOptions) (*Result, error)
	SendAudio(ctx context.Context, chatID string, audio string, opts *AudioOptions) (*Result, error)
	SendDocument(ctx context.Context, chatID string, document string, opts *MediaOptions) (*Result, error)
	SendVideo(ctx context.Context, chatID string, video string, opts *VideoOptions) (*Result, error)
	SendVoice(ctx context.Context, chatID string, voice string, opts *VoiceOptions) (*Result, error)
	SendLocation(ctx context.Context, chatID string, latitude, longitude float64, opts *LocationOptions) (*Result, error)
	SendContact(ctx context.Context, chatID string, phoneNumber, firstName string, opts *ContactOptions) (*Result, error)
}

// ChatAPI 会话、文件与 webhook 查询接口
type ChatAPI interface {
	GetFile(ctx context.Context, fileID string) (*Result, error)
	GetChat(ctx context.Context, chatID string) (*Result, error)
	GetChatMemberCount(ctx context.Context, chatID string) (*Result, error)
	GetChatMember(ctx context.Context, chatID string, userID int64) (*Result, error)
	GetChatAdministrators(ctx context.Context, chatID string) (*Result, error)
	SetWebhook(ctx context.Context, url string) (*Result, error)
}
