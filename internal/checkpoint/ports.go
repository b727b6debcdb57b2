package checkpoint

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	InsertIgnore(ctx context.Context, record any) (bool, error)
	UpdateWhere(ctx context.Context, model any, values map[string]any, query string, args ...any) (int64, error)
}
