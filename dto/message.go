// Package dto 定义 Bot API 的请求与返回结构
package dto

// User 用户或机器人
type User struct {
	ID           int64  `json:"id"`
	IsBot        bool   `json:"is_bot"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
	// 以下字段仅 getMe 返回
	CanJoinGroups           bool `json:"can_join_groups,omitempty"`
	CanReadAllGroupMessages bool `json:"can_read_all_group_messages,omitempty"`
	SupportsInlineQueries   bool `json:"supports_inline_queries,omitempty"`
}

// Chat 会话，私聊、群组、超级群组或频道
type Chat struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title,omitempty"`
	Username    string `json:"username,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Description string `json:"description,omitempty"`
	InviteLink  string `json:"invite_link,omitempty"`
}

// ChatMember 会话成员
type ChatMember struct {
	User   *User  `json:"user"`
	Status string `json:"status"`
	// 管理员自定义头衔
	CustomTitle string `json:"custom_title,omitempty"`
	UntilDate   int64  `json:"until_date,omitempty"`
}

// Message 消息结构体定义
type Message struct {
	// 消息ID，在会话内唯一
	MessageID int64 `json:"message_id"`
	// 发送方，频道消息为空
	From *User `json:"from,omitempty"`
	// 发送时间，unix 时间戳
	Date int64 `json:"date"`
	Chat *Chat `json:"chat"`
	// 消息编辑时间
	EditDate int64  `json:"edit_date,omitempty"`
	Text     string `json:"text,omitempty"`
	Caption  string `json:"caption,omitempty"`
	// 引用的消息
	ReplyToMessage *Message `json:"reply_to_message,omitempty"`

	Photo    []PhotoSize `json:"photo,omitempty"`
	Audio    *Audio      `json:"audio,omitempty"`
	Document *Document   `json:"document,omitempty"`
	Video    *Video      `json:"video,omitempty"`
	Voice    *Voice      `json:"voice,omitempty"`
	Location *Location   `json:"location,omitempty"`
	Contact  *Contact    `json:"contact,omitempty"`

	ReplyMarkup *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// Update 通过 getUpdates 拉取到的事件，同一时刻只有一个可选字段非空
type Update struct {
	UpdateID          int64          `json:"update_id"`
	Message           *Message       `json:"message,omitempty"`
	EditedMessage     *Message       `json:"edited_message,omitempty"`
	ChannelPost       *Message       `json:"channel_post,omitempty"`
	EditedChannelPost *Message       `json:"edited_channel_post,omitempty"`
	CallbackQuery     *CallbackQuery `json:"callback_query,omitempty"`
}

// CallbackQuery inline 按钮回调
type CallbackQuery struct {
	ID           string   `json:"id"`
	From         *User    `json:"from"`
	Message      *Message `json:"message,omitempty"`
	ChatInstance string   `json:"chat_instance"`
	Data         string   `json:"data,omitempty"`
}
