package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/go-question-bank/internal/models"
	"github.com/pribylovaa/go-question-bank/internal/storage"
	"github.com/pribylovaa/go-question-bank/pkg/log"
)

// Размещение вопросов по проектам и подписки на ветку обсуждения.

// Projects возвращает проекты, в которых пользователь состоит.
func (s *Service) Projects(ctx context.Context, user models.User) ([]models.Project, error) {
	const op = "service/projects/Projects"

	if user.Anonymous {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	projects, err := s.storage.ProjectsFor(ctx, user.ID)
	if err != nil {
		log.Op(ctx, op).Error("storage error on ProjectsFor", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return projects, nil
}

// AddToProject привязывает вопрос к проекту. Привязывать может только член
// целевого проекта; повтор привязки — no-op.
//
// Поведение/ошибки:
//   - ErrInvalidArgument — кривой UUID проекта или анонимный пользователь;
//   - ErrPermissionDenied — пользователь не состоит в целевом проекте;
//   - ErrNotFound — проект или вопрос отсутствуют;
//   - ErrInternal — ошибки стораджа.
func (s *Service) AddToProject(ctx context.Context, questionID int64, projectID string, user models.User) error {
	const op = "service/projects/AddToProject"

	if user.Anonymous || questionID <= 0 {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	id, err := parseUUID(projectID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	lg := log.Op(ctx, op).With("question_id", questionID, "project_id", projectID, "user_id", user.ID)

	projects, err := s.storage.ProjectsFor(ctx, user.ID)
	if err != nil {
		lg.Error("storage error on ProjectsFor", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	member := false
	for _, p := range projects {
		if p.ID == id {
			member = true
			break
		}
	}

	if !member {
		lg.Warn("add to project rejected: user is not a member")
		return fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	if err := s.storage.AddQuestionToProject(ctx, id, questionID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("storage error on AddQuestionToProject", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return nil
}

// Subscribe подписывает пользователя на ветку обсуждения вопроса.
// Подписаться может любой, кому вопрос доступен на чтение; повтор
// подписки — no-op.
//
// Поведение/ошибки:
//   - ErrInvalidArgument — анонимный пользователь;
//   - ErrPermissionDenied — вопрос недоступен пользователю на чтение;
//   - ErrNotFound / ErrInternal — ошибки стораджа.
func (s *Service) Subscribe(ctx context.Context, questionID int64, user models.User) error {
	const op = "service/projects/Subscribe"

	if user.Anonymous {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	lg := log.Op(ctx, op).With("question_id", questionID, "user_id", user.ID)

	q, err := s.QuestionByID(ctx, questionID)
	if err != nil {
		return err
	}

	readable, err := s.CanBeReadBy(ctx, q, user)
	if err != nil {
		return err
	}

	if !readable {
		lg.Warn("subscribe rejected: question is not readable by user")
		return fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	if err := s.storage.SubscribeToThread(ctx, q.ID, user.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("storage error on SubscribeToThread", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return nil
}
