package openapi

import (
	"context"
)

// SendPhoto 发送图片
func (o *openAPI) SendPhoto(ctx context.Context, chatID string, photo string, opts *MediaOptions) (*Result, error) {
	p := Params{"chat_id": chatID, "photo": photo}
	opts.apply(p)
	return o.do(ctx, ActionSendPhoto, p)
}

// SendAudio 发送音乐，客户端会在播放器中展示
func (o *openAPI) SendAudio(ctx context.Context, chatID string, audio string, opts *AudioOptions) (*Result, error) {
	p := Params{"chat_id": chatID, "audio": audio}
	opts.apply(p)
	return o.do(ctx, ActionSendAudio, p)
}

// SendDocument 发送文件
func (o *openAPI) SendDocument(ctx context.Context, chatID string, document string, opts *MediaOptions) (*Result, error) {
	p := Params{"chat_id": chatID, "document": document}
	opts.apply(p)
	return o.do(ctx, ActionSendDocument, p)
}

// SendVideo 发送视频
func (o *openAPI) SendVideo(ctx context.Context, chatID string, video string, opts *VideoOptions) (*Result, error) {
	p := Params{"chat_id": chatID, "video": video}
	opts.apply(p)
	return o.do(ctx, ActionSendVideo, p)
}

// SendVoice 发送语音
func (o *openAPI) SendVoice(ctx context.Context, chatID string, voice string, opts *VoiceOptions) (*Result, error) {
	p := Params{"chat_id": chatID, "voice": voice}
	opts.apply(p)
	return o.do(ctx, ActionSendVoice, p)
}

// SendLocation 发送位置
func (o *openAPI) SendLocation(ctx context.Context, chatID string, latitude, longitude float64,
	opts *LocationOptions) (*Result, error) {
	p := Params{"chat_id": chatID, "latitude": latitude, "longitude": longitude}
	opts.apply(p)
	return o.do(ctx, ActionSendLocation, p)
}

// SendContact 发送联系人名片
func (o *openAPI) SendContact(ctx context.Context, chatID string, phoneNumber, firstName string,
	opts *ContactOptions) (*Result, error) {
	p := Params{"chat_id": chatID, "phone_number": phoneNumber, "first_name": firstName}
	opts.apply(p)
	return o.do(ctx, ActionSendContact, p)
}
