package models

import (
	"time"

	"github.com/google/uuid"
)

// QuestionDerivation — ребро графа производных: из какого опубликованного
// вопроса и кем был произведён новый. Создаётся один раз, далее неизменно.
// Новые версии того же номера рёбер не получают (это одна линия, не ответвление).
type QuestionDerivation struct {
	ID                uuid.UUID
	SourceQuestionID  int64
	DerivedQuestionID int64
	DeriverID         int64
	CreatedAt         time.Time
}

// DependencyKind — тип направленного ребра зависимости между вопросами.
type DependencyKind string

const (
	// DependencyRequirement — независимый вопрос обязателен перед зависимым.
	DependencyRequirement DependencyKind = "requirement"
	// DependencySupport — независимый вопрос облегчает зависимый.
	DependencySupport DependencyKind = "support"
)

// Valid сообщает, входит ли значение в множество типов зависимостей.
func (k DependencyKind) Valid() bool {
	return k == DependencyRequirement || k == DependencySupport
}

// QuestionDependencyPair — направленное типизированное ребро
// (independent -> dependent). Рёбра привязаны к конкретной строке вопроса и
// не копируются при новых версиях или производных.
type QuestionDependencyPair struct {
	ID                    uuid.UUID
	IndependentQuestionID int64
	DependentQuestionID   int64
	Kind                  DependencyKind
	CreatedAt             time.Time
}

// IsRequirement — ребро типа «обязательное предварительное условие».
func (p *QuestionDependencyPair) IsRequirement() bool { return p.Kind == DependencyRequirement }

// IsSupport — ребро типа «поддерживающий вопрос».
func (p *QuestionDependencyPair) IsSupport() bool { return p.Kind == DependencySupport }

// QuestionSetup — общая «подводка» вопроса; может разделяться несколькими
// вопросами и уничтожается только когда на неё не ссылается ни один вопрос.
type QuestionSetup struct {
	ID          uuid.UUID
	Content     string
	ContentHTML string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Blank — подводка без содержимого; при публикации отцепляется и,
// если осталась без вопросов, уничтожается.
func (s *QuestionSetup) Blank() bool {
	return s.Content == ""
}

// RoleRequest — ожидающий запрос роли на вопрос.
type RoleRequest struct {
	ID         uuid.UUID
	QuestionID int64
	UserID     int64
	Role       Role
	CreatedAt  time.Time
}
