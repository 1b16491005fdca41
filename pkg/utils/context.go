package utils

import (
	"context"
	"strings"

	"asset-guardian/pkg/contextkeys"
)

const DefaultActor = "system"

func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, contextkeys.ActorKey, actor)
}

// GetActorFromCtx - автор изменения для журнала аудита. Без заголовка X-Actor это "system".
func GetActorFromCtx(ctx context.Context) string {
	actor, ok := ctx.Value(contextkeys.ActorKey).(string)
	if !ok || strings.TrimSpace(actor) == "" {
		return DefaultActor
	}
	return actor
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextkeys.RequestIDKey, requestID)
}

// GetRequestIDFromCtx - X-Request-ID, с которым пришел запрос. Пусто вне HTTP (сидер из CLI).
func GetRequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(contextkeys.RequestIDKey).(string)
	return id
}
