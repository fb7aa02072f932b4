package openapi

import (
	"net/http"
	"slices"
	"sort"
)

// Location 参数在请求中的位置
type Location int

const (
	// LocationNone 不携带参数
	LocationNone Location = iota
	// LocationQuery 参数放在 query string
	LocationQuery
	// LocationBody 参数编码为 JSON body
	LocationBody
)

func (l Location) String() string {
	switch l {
	case LocationQuery:
		return "query"
	case LocationBody:
		return "body"
	default:
		return "none"
	}
}

// 接口名，同时也是请求路径
const (
	ActionSendMessage           = "sendMessage"
	ActionEditMessageText       = "editMessageText"
	ActionDeleteMessage         = "deleteMessage"
	ActionGetUpdates            = "getUpdates"
	ActionGetMe                 = "getMe"
	ActionSendPhoto             = "sendPhoto"
	ActionSendAudio             = "sendAudio"
	ActionSendDocument          = "sendDocument"
	ActionSendVideo             = "sendVideo"
	ActionSendVoice             = "sendVoice"
	ActionSendLocation          = "sendLocation"
	ActionSendContact           = "sendContact"
	ActionGetFile               = "getFile"
	ActionGetChat               = "getChat"
	ActionGetChatMemberCount    = "getChatMemberCount"
	ActionGetChatMember         = "getChatMember"
	ActionGetChatAdministrators = "getChatAdministrators"
	ActionSetWebhook            = "setWebhook"
)

// Action 一个接口的请求方式与参数列表
type Action struct {
	Name     string
	Method   string
	Location Location
	Required []string
	Optional []string
}

// 发送类接口共用的可选参数
var sendOptional = []string{"disable_notification", "reply_to_message_id", "reply_markup"}

func withSend(keys ...string) []string {
	return append(keys, sendOptional...)
}

// 接口的 HTTP 方法由远端决定，deleteMessage 和 setWebhook 虽然有副作用但使用 GET
var catalog = map[string]Action{
	ActionSendMessage: {
		Method: http.MethodPost, Location: LocationBody,
		Required: []string{"chat_id", "text"},
		Optional: withSend("parse_mode", "disable_web_page_preview"),
	},
	ActionEditMessageText: {
		Method: http.MethodPost, Location: LocationBody,
		Required: []string{"chat_id", "message_id", "text"},
		Optional: []string{"parse_mode", "disable_web_page_preview", "reply_markup"},
	},
	ActionDeleteMessage: {
		Method: http.MethodGet, Location: LocationQuery,
		Required: []string{"chat_id", "message_id"},
	},
	ActionGetUpdates: {Method: http.MethodPost, Location: LocationNone},
	ActionGetMe:      {Method: http.MethodPost, Location: LocationNone},
	ActionSendPhoto: {
		Method: http.MethodPost, Location: LocationBody,
		Required: []string{"chat_id", "photo"},
		Optional: withSend("caption", "parse_mode"),
	},
	ActionSendAudio: {
		Method: http.MethodPost, Location: LocationBody,
		Required: []string{"chat_id", "audio"},
		Optional: withSend("caption", "parse_mode", "duration", "performer", "title"),
	},
	ActionSendDocument: {
		Method: http.MethodPost, Location: LocationBody,
		Required: []string{"chat_id", "document"},
		Optional: withSend("caption", "parse_mode"),
	},
	ActionSendVideo: {
		Method: http.MethodPost, Location: LocationBody,
		Required: []string{"chat_id", "video"},
		Optional: withSend("duration", "width", "height", "caption", "parse_mode", "supports_streaming"),
	},
	ActionSendVoice: {
		Method: http.MethodPost, Location: LocationBody,
		Required: []string{"chat_id", "voice"},
		Optional: withSend("caption", "parse_mode", "duration"),
	},
	ActionSendLocation: {
		Method: http.MethodPost, Location: LocationBody,
		Required: []string{"chat_id", "latitude", "longitude"},
		Optional: withSend("live_period"),
	},
	ActionSendContact: {
		Method: http.MethodPost, Location: LocationBody,
		Required: []string{"chat_id", "phone_number", "first_name"},
		Optional: withSend("last_name", "vcard"),
	},
	ActionGetFile: {
		Method: http.MethodGet, Location: LocationQuery,
		Required: []string{"file_id"},
	},
	ActionGetChat: {
		Method: http.MethodGet, Location: LocationQuery,
		Required: []string{"chat_id"},
	},
	ActionGetChatMemberCount: {
		Method: http.MethodGet, Location: LocationQuery,
		Required: []string{"chat_id"},
	},
	ActionGetChatMember: {
		Method: http.MethodGet, Location: LocationQuery,
		Required: []string{"chat_id", "user_id"},
	},
	ActionGetChatAdministrators: {
		Method: http.MethodGet, Location: LocationQuery,
		Required: []string{"chat_id"},
	},
	ActionSetWebhook: {
		Method: http.MethodGet, Location: LocationQuery,
		Required: []string{"url"},
	},
}

func init() {
	for name, action := range catalog {
		action.Name = name
		catalog[name] = action
	}
}

// LookupAction 查询接口定义
func LookupAction(name string) (Action, bool) {
	action, ok := catalog[name]
	if !ok {
		return Action{}, false
	}
	return action.clone(), true
}

// Actions 所有接口定义，按名字排序
func Actions() []Action {
	list := make([]Action, 0, len(catalog))
	for _, action := range catalog {
		list = append(list, action.clone())
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// clone 返回的定义不与 catalog 共享切片
func (a Action) clone() Action {
	a.Required = slices.Clone(a.Required)
	a.Optional = slices.Clone(a.Optional)
	return a
}

func (a Action) allows(key string) bool {
	for _, k := range a.Required {
		if k == key {
			return true
		}
	}
	for _, k := range a.Optional {
		if k == key {
			return true
		}
	}
	return false
}
