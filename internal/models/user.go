package models

import (
	"time"

	"github.com/google/uuid"
)

// User — пользователь в объёме, необходимом ядру: проверка прав,
// подписки на обсуждение, подпись держателя блокировки.
// Аутентификация и сессии — забота внешних слоёв.
type User struct {
	ID       int64
	FullName string
	// Anonymous — не вошедший пользователь; никогда не проходит проверки прав.
	Anonymous bool
	// AutoAuthorSubscribe — автоподписка автора на свежую ветку обсуждения
	// при публикации.
	AutoAuthorSubscribe bool
	CreatedAt           time.Time
}

// AnonymousUser возвращает «пустого» пользователя для неаутентифицированных
// обращений.
func AnonymousUser() User {
	return User{Anonymous: true}
}

// Project — рабочий проект пользователя; черновики попадают в проект
// при создании.
type Project struct {
	ID      uuid.UUID
	OwnerID int64
	Name    string
	// Default — проект «по умолчанию» владельца.
	Default   bool
	CreatedAt time.Time
}

// License — лицензия публикации. Управление лицензиями — внешняя забота,
// ядру нужен только идентификатор и лицензия по умолчанию.
type License struct {
	ID        uuid.UUID
	Name      string
	Default   bool
	CreatedAt time.Time
}
