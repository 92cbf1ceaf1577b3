// models содержит доменные сущности question-сервиса.
// Эти типы используются слоями бизнес-логики и хранилища.
package models

import (
	"time"

	"github.com/google/uuid"
)

// UnlockedSentinel — значение LockedBy для незаблокированного черновика.
const UnlockedSentinel int64 = -1

// Question — агрегат «вопрос».
//
// Особенности:
//   - ID — внутренний идентификатор, назначается при создании и не переиспользуется;
//   - Number — общий номер для всех версий/черновиков «одного и того же» вопроса,
//     назначается один раз и далее неизменен;
//   - Version — nil у черновика, не-nil у опубликованного; после установки неизменен.
//     Пара (Number, Version) уникальна среди опубликованных;
//   - ContentHTML — кэш рендера Content; пересчитывается при каждом изменении
//     Content и никогда не правится напрямую;
//   - LockedBy/LockedAt — рекомендательная блокировка черновика
//     (см. UnlockedSentinel); для опубликованных смысла не имеет;
//   - PublisherID/PublishedAt — выставляются ровно один раз, в момент публикации;
//   - Временные метки — в UTC.
type Question struct {
	// ID — внутренний идентификатор (внешняя форма — "d{id}" для черновика).
	ID int64
	// Number — номер вопроса, общий для цепочки версий.
	Number int64
	// Version — номер версии; nil => черновик.
	Version *int32
	// Kind — вид вопроса (simple/matching/multipart).
	Kind Kind
	// Content — авторский исходник.
	Content string
	// ContentHTML — кэш отрендеренного Content.
	ContentHTML string
	// ChangesSolution — влияет на видимость решений вдоль цепочки версий.
	ChangesSolution bool
	// SetupID — общая «подводка» (QuestionSetup); может разделяться несколькими вопросами.
	SetupID *uuid.UUID
	// LicenseID — лицензия; обязательна для публикации.
	LicenseID *uuid.UUID
	// ParentQuestionID — родительский multipart-вопрос, частью которого является этот.
	ParentQuestionID *int64
	// LockedBy — держатель блокировки (UnlockedSentinel, если свободен).
	LockedBy int64
	// LockedAt — момент захвата блокировки; nil, если свободен.
	LockedAt *time.Time
	// PublisherID — пользователь, выполнивший публикацию.
	PublisherID *int64
	// PublishedAt — момент публикации.
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPublished сообщает, опубликован ли вопрос (версия назначена).
func (q *Question) IsPublished() bool {
	return q.Version != nil
}

// HasLicense сообщает, назначена ли лицензия.
func (q *Question) HasLicense() bool {
	return q.LicenseID != nil
}

// IsLocked сообщает, действует ли блокировка в момент now при заданном таймауте.
// Просроченная блокировка эквивалентна её отсутствию (ленивое истечение,
// фоновой очистки нет).
func (q *Question) IsLocked(now time.Time, timeout time.Duration) bool {
	if timeout <= 0 {
		return false
	}

	return q.LockedBy > 0 && q.LockedAt != nil && now.Before(q.LockedAt.Add(timeout))
}

// HasLock сообщает, принадлежит ли блокировка пользователю.
// Предполагает, что IsLocked == true.
func (q *Question) HasLock(userID int64) bool {
	return q.LockedBy == userID
}

// HasEarlierVersions — у вопроса есть более ранние версии
// (опубликован с версией больше первой).
func (q *Question) HasEarlierVersions() bool {
	return q.Version != nil && *q.Version > 1
}

// ExternalID возвращает внешний идентификатор вопроса
// ("q{number}v{version}" или "d{id}").
func (q *Question) ExternalID() string {
	return FormatExternalID(q)
}
