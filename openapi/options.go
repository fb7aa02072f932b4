package openapi

// 可选参数的零值表示不发送该字段

// SendOptions 发送类接口的公共可选参数
type SendOptions struct {
	DisableNotification bool
	// 要回复的消息id
	ReplyToMessageID int64
	// 按钮组件，可以是 dto 中的键盘结构、map，或者已经编码好的 JSON 字符串
	ReplyMarkup any
}

func (o *SendOptions) apply(p Params) {
	if o == nil {
		return
	}
	p.setOptional("disable_notification", o.DisableNotification)
	p.setOptional("reply_to_message_id", o.ReplyToMessageID)
	p.setOptional(replyMarkupKey, o.ReplyMarkup)
}

// MessageOptions sendMessage 可选参数
type MessageOptions struct {
	SendOptions
	ParseMode             string
	DisableWebPagePreview bool
}

func (o *MessageOptions) apply(p Params) {
	if o == nil {
		return
	}
	o.SendOptions.apply(p)
	p.setOptional("parse_mode", o.ParseMode)
	p.setOptional("disable_web_page_preview", o.DisableWebPagePreview)
}

// EditOptions editMessageText 可选参数
type EditOptions struct {
	ParseMode             string
	DisableWebPagePreview bool
	ReplyMarkup           any
}

func (o *EditOptions) apply(p Params) {
	if o == nil {
		return
	}
	p.setOptional("parse_mode", o.ParseMode)
	p.setOptional("disable_web_page_preview", o.DisableWebPagePreview)
	p.setOptional(replyMarkupKey, o.ReplyMarkup)
}

// MediaOptions 图片、文件等富媒体的可选参数
type MediaOptions struct {
	SendOptions
	Caption   string
	ParseMode string
}

func (o *MediaOptions) apply(p Params) {
	if o == nil {
		return
	}
	o.SendOptions.apply(p)
	p.setOptional("caption", o.Caption)
	p.setOptional("parse_mode", o.ParseMode)
}

// AudioOptions sendAudio 可选参数，Duration 单位为秒
type AudioOptions struct {
	MediaOptions
	Duration  int
	Performer string
	Title     string
}

func (o *AudioOptions) apply(p Params) {
	if o == nil {
		return
	}
	o.MediaOptions.apply(p)
	p.setOptional("duration", o.Duration)
	p.setOptional("performer", o.Performer)
	p.setOptional("title", o.Title)
}

// VideoOptions sendVideo 可选参数
type VideoOptions struct {
	MediaOptions
	Duration          int
	Width             int
	Height            int
	SupportsStreaming bool
}

func (o *VideoOptions) apply(p Params) {
	if o == nil {
		return
	}
	o.MediaOptions.apply(p)
	p.setOptional("duration", o.Duration)
	p.setOptional("width", o.Width)
	p.setOptional("height", o.Height)
	p.setOptional("supports_streaming", o.SupportsStreaming)
}

// VoiceOptions sendVoice 可选参数
type VoiceOptions struct {
	MediaOptions
	Duration int
}

func (o *VoiceOptions) apply(p Params) {
	if o == nil {
		return
	}
	o.MediaOptions.apply(p)
	p.setOptional("duration", o.Duration)
}

// LocationOptions sendLocation 可选参数，LivePeriod 为实时位置的有效秒数
type LocationOptions struct {
	SendOptions
	LivePeriod int
}

func (o *LocationOptions) apply(p Params) {
	if o == nil {
		return
	}
	o.SendOptions.apply(p)
	p.setOptional("live_period", o.LivePeriod)
}

// ContactOptions sendContact 可选参数
type ContactOptions struct {
	SendOptions
	LastName string
	VCard    string
}

func (o *ContactOptions) apply(p Params) {
	if o == nil {
		return
	}
	o.SendOptions.apply(p)
	p.setOptional("last_name", o.LastName)
	p.setOptional("vcard", o.VCard)
}
