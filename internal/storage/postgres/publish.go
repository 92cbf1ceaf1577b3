package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/go-question-bank/internal/models"
	"github.com/pribylovaa/go-question-bank/internal/storage"
)

// PublishQuestion атомарно публикует черновик.
//
// Подшаги одной транзакции:
//  1. пустая подводка отцепляется; осиротевшие подводки уничтожаются;
//  2. безролевые соавторы уничтожаются;
//  3. ветка обсуждения сбрасывается начисто (новая взамен старой);
//  4. авторы с автоподпиской переподписываются на свежую ветку;
//  5. строка переводится в опубликованное состояние: версия, издатель,
//     момент публикации; блокировка сбрасывается.
//
// Ошибки: storage.ErrPublished — вопрос уже опубликован; storage.ErrNotFound —
// строки нет; storage.ErrConflict — гонка за (number, version).
func (s *Storage) PublishQuestion(ctx context.Context, params storage.PublishParams) (*models.Question, error) {
	const op = "storage/postgres/publish/PublishQuestion"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	// Строка берётся под FOR UPDATE: параллельная публикация того же
	// черновика отработает второй и увидит version IS NOT NULL.
	var published bool
	err = tx.QueryRow(ctx,
		`SELECT version IS NOT NULL FROM questions WHERE id = $1 FOR UPDATE`,
		params.QuestionID,
	).Scan(&published)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if published {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrPublished)
	}

	if _, err := tx.Exec(ctx, `
		UPDATE questions q SET setup_id = NULL
		WHERE q.id = $1
		  AND EXISTS (SELECT 1 FROM question_setups s WHERE s.id = q.setup_id AND s.content = '')`,
		params.QuestionID,
	); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM question_setups s
		WHERE NOT EXISTS (SELECT 1 FROM questions q WHERE q.setup_id = s.id)`,
	); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM question_collaborators
		WHERE question_id = $1 AND NOT is_author AND NOT is_copyright_holder`,
		params.QuestionID,
	); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Сброс обсуждения: старая ветка уходит с подписками и комментариями,
	// опубликованный вопрос начинает разговор заново.
	if _, err := tx.Exec(ctx,
		`DELETE FROM comment_threads WHERE question_id = $1`, params.QuestionID,
	); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO comment_threads (question_id) VALUES ($1)`, params.QuestionID,
	); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO comment_thread_subscriptions (thread_id, user_id)
		SELECT t.id, c.user_id
		FROM comment_threads t
		JOIN question_collaborators c ON c.question_id = t.question_id
		JOIN users u ON u.id = c.user_id
		WHERE t.question_id = $1 AND c.is_author AND u.auto_author_subscribe`,
		params.QuestionID,
	); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	q := `
	UPDATE questions SET
		version      = $2,
		publisher_id = $3,
		published_at = now(),
		locked_by    = $4,
		locked_at    = NULL,
		updated_at   = now()
	WHERE id = $1
	RETURNING ` + questionColumns

	question, err := scanQuestion(tx.QueryRow(ctx, q,
		params.QuestionID,
		params.Version,
		params.PublisherID,
		models.UnlockedSentinel,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return question, nil
}
