package openapi

import (
	"context"
)

// GetUpdates 拉取待处理的事件，不维护 offset，也不做长轮询
func (o *openAPI) GetUpdates(ctx context.Context) (*Result, error) {
	return o.do(ctx, ActionGetUpdates, nil)
}

// GetMe 拉取机器人自身信息，可用于校验 token
func (o *openAPI) GetMe(ctx context.Context) (*Result, error) {
	return o.do(ctx, ActionGetMe, nil)
}
