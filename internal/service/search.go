package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-question-bank/internal/models"
	"github.com/pribylovaa/go-question-bank/internal/storage"
	"github.com/pribylovaa/go-question-bank/pkg/log"
)

// SearchInput — фильтры поиска вопросов.
type SearchInput struct {
	// Scope — область поиска: all | published | drafts | projects.
	// Пустая строка -> all.
	Scope string
	// Kind — фильтр по виду; пустая строка -> любой.
	Kind string
	// Text — подстрочный фильтр по содержимому.
	Text string
	User models.User
	// Limit — размер выдачи; 0 -> лимит по умолчанию, верхняя граница — из
	// конфигурации.
	Limit int32
}

// Search возвращает вопросы по фильтрам области, вида и текста.
// Область projects сужает выдачу до проектов пользователя.
//
// Поведение/ошибки:
//   - ErrInvalidArgument — неизвестная область или вид;
//   - ErrInternal — ошибки стораджа.
func (s *Service) Search(ctx context.Context, in SearchInput) ([]models.Question, error) {
	const op = "service/search/Search"

	scope, err := parseScope(in.Scope)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	opts := storage.SearchOptions{
		Scope:  scope,
		Text:   strings.TrimSpace(in.Text),
		UserID: in.User.ID,
		Limit:  s.clampLimit(in.Limit),
	}

	if in.Kind != "" {
		kind := models.Kind(in.Kind)
		if !kind.Valid() {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		opts.Kind = &kind
	}

	questions, err := s.storage.SearchQuestions(ctx, opts)
	if err != nil {
		log.Op(ctx, op).Error("storage error on SearchQuestions", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return questions, nil
}

func parseScope(raw string) (storage.SearchScope, error) {
	switch storage.SearchScope(raw) {
	case "":
		return storage.ScopeAll, nil
	case storage.ScopeAll, storage.ScopePublished, storage.ScopeDrafts, storage.ScopeMyProjects:
		return storage.SearchScope(raw), nil
	}

	return "", fmt.Errorf("unknown scope %q", raw)
}

// clampLimit — нормализация размера выдачи: 0 -> default, сверху -> max.
func (s *Service) clampLimit(limit int32) int32 {
	switch {
	case limit <= 0:
		return s.cfg.Limits.Default
	case limit > s.cfg.Limits.Max:
		return s.cfg.Limits.Max
	default:
		return limit
	}
}
