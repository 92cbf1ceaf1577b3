package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind — вид вопроса. Закрытое множество вариантов; бизнес-логика зависит
// только от KindBehavior, а не от конкретного варианта.
type Kind string

const (
	KindSimple    Kind = "simple"
	KindMatching  Kind = "matching"
	KindMultipart Kind = "multipart"
)

// Valid сообщает, входит ли значение в закрытое множество видов.
func (k Kind) Valid() bool {
	switch k {
	case KindSimple, KindMatching, KindMultipart:
		return true
	}

	return false
}

// KindBehavior — способности вида вопроса, используемые публикацией и
// созданием производных. Новый вид подключается реализацией этого интерфейса.
type KindBehavior interface {
	// ContentSummary — короткая сводка содержимого для списков.
	ContentSummary(q *Question) string
	// ContentCopy — несохранённая копия редактируемых полей
	// (роли и связи не копируются).
	ContentCopy(q *Question) Question
	// ExtraPrepublishErrors — дополнительные ошибки предпубликационной
	// проверки вида; parts — части (для multipart).
	ExtraPrepublishErrors(q *Question, parts []Question) []string
	// PrepublishHook — видоспецифичная подготовка перед публикацией;
	// выполняется до чистки ролей.
	PrepublishHook(q *Question)
	// IsMultipart — является ли вид составным.
	IsMultipart() bool
}

// BehaviorFor возвращает поведение для вида; для неизвестного вида — simple.
func BehaviorFor(k Kind) KindBehavior {
	switch k {
	case KindMatching:
		return matchingKind{}
	case KindMultipart:
		return multipartKind{}
	default:
		return simpleKind{}
	}
}

const summaryLimit = 80

type simpleKind struct{}

func (simpleKind) ContentSummary(q *Question) string { return truncate(q.Content, summaryLimit) }
func (simpleKind) ContentCopy(q *Question) Question  { return baseContentCopy(q) }
func (simpleKind) ExtraPrepublishErrors(_ *Question, _ []Question) []string {
	return nil
}
func (simpleKind) PrepublishHook(_ *Question) {}
func (simpleKind) IsMultipart() bool          { return false }

type matchingKind struct{}

func (matchingKind) ContentSummary(q *Question) string { return truncate(q.Content, summaryLimit) }
func (matchingKind) ContentCopy(q *Question) Question  { return baseContentCopy(q) }
func (matchingKind) ExtraPrepublishErrors(_ *Question, _ []Question) []string {
	return nil
}
func (matchingKind) PrepublishHook(_ *Question) {}
func (matchingKind) IsMultipart() bool          { return false }

type multipartKind struct{}

func (multipartKind) ContentSummary(q *Question) string {
	return fmt.Sprintf("multipart: %s", truncate(q.Content, summaryLimit))
}

func (multipartKind) ContentCopy(q *Question) Question { return baseContentCopy(q) }

func (multipartKind) ExtraPrepublishErrors(_ *Question, parts []Question) []string {
	if len(parts) == 0 {
		return []string{"a multipart question must contain at least one part"}
	}

	return nil
}

func (multipartKind) PrepublishHook(_ *Question) {}
func (multipartKind) IsMultipart() bool          { return true }

// baseContentCopy — общая для всех видов копия редактируемых полей.
// Number/Version/блокировки/издатель намеренно не переносятся.
func baseContentCopy(q *Question) Question {
	return Question{
		Kind:            q.Kind,
		Content:         q.Content,
		ContentHTML:     q.ContentHTML,
		ChangesSolution: q.ChangesSolution,
		LicenseID:       q.LicenseID,
	}
}

func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)

	return string(runes[:limit]) + "…"
}
