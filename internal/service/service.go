// service содержит бизнес-логику question-сервиса: линию версий,
// роли соавторов, рекомендательную блокировку черновиков, публикацию
// и создание производных.
package service

import (
	"errors"

	"github.com/pribylovaa/go-question-bank/internal/config"
	"github.com/pribylovaa/go-question-bank/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument — некорректные входные аргументы.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUntrustedReference — внешний идентификатор не соответствует
	// публичному контракту; отказ происходит до обращения к хранилищу.
	ErrUntrustedReference = errors.New("untrusted reference")
	// ErrPublishedImmutable — попытка изменить или удалить опубликованный
	// вопрос; не ретраится, лекарство — новая версия.
	ErrPublishedImmutable = errors.New("published question is immutable")
	// ErrNotPublished — операция требует опубликованный вопрос
	// (новая версия, производная).
	ErrNotPublished = errors.New("question is not published")
	// ErrVersionConflict — гонка за пару (number, version): параллельная
	// публикация успела занять версию. Ретраится повторной публикацией.
	ErrVersionConflict = errors.New("version conflict")
	// ErrPermissionDenied — у пользователя нет прав на операцию.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrLockConflict — черновик занят другим непросроченным держателем.
	ErrLockConflict = errors.New("lock conflict")
	// ErrLockNotHeld — блокировка не удерживается (включая тихое истечение).
	ErrLockNotHeld = errors.New("lock not held")
	// ErrInternal — внутренняя ошибка (сторадж/БД/контекст).
	ErrInternal = errors.New("internal")
)

// ContentRenderer — внешний рендер авторского содержимого в HTML.
// Вызывается при каждом изменении content; результат кэшируется в
// content_html и никогда не правится пользователями напрямую.
type ContentRenderer interface {
	Render(content string) (string, error)
}

// Service — бизнес-логика question-service.
type Service struct {
	storage  storage.Storage
	cfg      config.Config
	renderer ContentRenderer
}

// New создает новый экземпляр Service.
// renderer == nil -> используется экранирующий рендер по умолчанию.
func New(storage storage.Storage, cfg config.Config, renderer ContentRenderer) *Service {
	if renderer == nil {
		renderer = escapeRenderer{}
	}

	return &Service{
		storage:  storage,
		cfg:      cfg,
		renderer: renderer,
	}
}
