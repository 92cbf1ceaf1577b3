// log — перенос *slog.Logger через context.Context.
// Слои бизнес-логики question-сервиса пишут в логгер запроса, не зная о
// транспорте; имя операции ("op") прокидывается единообразно через Op.
package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into возвращает контекст с вложенным логгером.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From извлекает логгер из контекста.
// Если логгер не вложен (или вложено что-то «не то») — возвращает slog.Default().
func From(ctx context.Context) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}

	return slog.Default()
}

// Op возвращает логгер запроса, помеченный именем операции. Атрибут "op"
// совпадает с константой op внутри операций сервиса, так что записи одной
// операции группируются по нему.
func Op(ctx context.Context, op string) *slog.Logger {
	return From(ctx).With(slog.String("op", op))
}
