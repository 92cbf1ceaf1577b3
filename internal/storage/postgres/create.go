package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/go-question-bank/internal/models"
	"github.com/pribylovaa/go-question-bank/internal/storage"
)

// CreateQuestion атомарно создаёт черновик со всеми сопутствующими записями.
//
// Подшаги одной транзакции:
//  1. подводка: привязка к существующей (SetupID) или вставка новой;
//  2. строка вопроса: номер назначается сразу (следующий свободный, семя
//     max(number, 1) + 1), version NULL, locked_by = сентинел;
//  3. ветка обсуждения;
//  4. роли: начальные роли создателя с подпиской на ветку (SetInitialRoles)
//     или дословная копия ролей источника (CopyRolesFrom);
//  5. привязка к проекту;
//  6. ребро производной (SourceQuestionID + DeriverID).
//
// Ошибки: storage.ErrNotFound — подводка/проект/источник отсутствуют;
// storage.ErrConflict — конфликт уникальности; иные — как есть.
func (s *Storage) CreateQuestion(ctx context.Context, params storage.CreateQuestionParams) (*models.Question, error) {
	const op = "storage/postgres/create/CreateQuestion"

	if params.ProjectID == nil {
		return nil, fmt.Errorf("%s: project id is required", op)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	setupID, err := resolveSetup(ctx, tx, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Номер — сразу при создании: новая версия наследует номер источника,
	// остальные пути получают следующий свободный (первое значение
	// последовательности — 2, семя max(number, 1) + 1).
	q := `
	INSERT INTO questions
		(number, version, kind, content, content_html, changes_solution,
		 setup_id, license_id, parent_question_id, locked_by)
	VALUES (
		COALESCE($1, (SELECT GREATEST(COALESCE(MAX(number), 1), 1) + 1 FROM questions)),
		NULL, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING ` + questionColumns

	var number any
	if params.Number > 0 {
		number = params.Number
	} else {
		number = nil
	}

	question, err := scanQuestion(tx.QueryRow(ctx, q,
		number,
		string(params.Kind),
		params.Content,
		params.ContentHTML,
		params.ChangesSolution,
		setupID,
		params.LicenseID,
		params.ParentQuestionID,
		models.UnlockedSentinel,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var threadID int64
	if err := tx.QueryRow(ctx,
		`INSERT INTO comment_threads (question_id) VALUES ($1) RETURNING id`, question.ID,
	).Scan(&threadID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	switch {
	case params.CopyRolesFrom != nil:
		if _, err := tx.Exec(ctx, `
			INSERT INTO question_collaborators
				(question_id, user_id, position, is_author, is_copyright_holder, is_listed)
			SELECT $1, user_id, position, is_author, is_copyright_holder, is_listed
			FROM question_collaborators
			WHERE question_id = $2`,
			question.ID, *params.CopyRolesFrom,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

	case params.SetInitialRoles:
		if _, err := tx.Exec(ctx, `
			INSERT INTO question_collaborators
				(question_id, user_id, position, is_author, is_copyright_holder, is_listed)
			VALUES ($1, $2, 1, TRUE, TRUE, TRUE)`,
			question.ID, params.CreatorID,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		// Начальные роли идут в паре с подпиской создателя на ветку обсуждения.
		if _, err := tx.Exec(ctx,
			`INSERT INTO comment_thread_subscriptions (thread_id, user_id) VALUES ($1, $2)`,
			threadID, params.CreatorID,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO project_questions (project_id, question_id) VALUES ($1, $2)`,
		*params.ProjectID, question.ID,
	); err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if params.SourceQuestionID != nil && params.DeriverID != nil {
		if _, err := tx.Exec(ctx, `
			INSERT INTO question_derivations (source_question_id, derived_question_id, deriver_id)
			VALUES ($1, $2, $3)`,
			*params.SourceQuestionID, question.ID, *params.DeriverID,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return question, nil
}

// resolveSetup — существующая подводка по SetupID либо вставка новой
// (возможно, пустой: пустая подводка отцепится при публикации).
func resolveSetup(ctx context.Context, tx pgx.Tx, params storage.CreateQuestionParams) (uuid.UUID, error) {
	if params.SetupID != nil {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT TRUE FROM question_setups WHERE id = $1`, *params.SetupID,
		).Scan(&exists)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return uuid.Nil, storage.ErrNotFound
			}

			return uuid.Nil, err
		}

		return *params.SetupID, nil
	}

	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO question_setups (content, content_html)
		VALUES ($1, $2)
		RETURNING id`,
		params.SetupContent, params.SetupContentHTML,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

