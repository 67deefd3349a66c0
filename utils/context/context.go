package context

import (
	"context"

	"github.com/muhammadheryan/kidswear/constant"
)

func GetAdminSubject(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.AdminSubjectKey)
	if v == nil {
		return "", false
	}
	subject, ok := v.(string)
	return subject, ok && subject != ""
}

func WithAdminSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, constant.AdminSubjectKey, subject)
}
