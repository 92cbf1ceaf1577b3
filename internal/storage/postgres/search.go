package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-question-bank/internal/models"
	"github.com/pribylovaa/go-question-bank/internal/storage"
)

// SearchQuestions возвращает вопросы по фильтрам области/вида/текста.
// Текстовый фильтр — регистронезависимое подстрочное совпадение по content;
// порядок — свежие обновления первыми.
func (s *Storage) SearchQuestions(ctx context.Context, opts storage.SearchOptions) ([]models.Question, error) {
	const op = "storage/postgres/search/SearchQuestions"

	where := []string{"TRUE"}
	args := []any{}

	switch opts.Scope {
	case storage.ScopePublished:
		where = append(where, "q.version IS NOT NULL")
	case storage.ScopeDrafts:
		where = append(where, "q.version IS NULL")
	case storage.ScopeMyProjects:
		args = append(args, opts.UserID)
		where = append(where, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM project_questions pq
			JOIN project_members pm ON pm.project_id = pq.project_id
			WHERE pq.question_id = q.id AND pm.user_id = $%d)`, len(args)))
	}

	if opts.Kind != nil {
		args = append(args, string(*opts.Kind))
		where = append(where, fmt.Sprintf("q.kind = $%d", len(args)))
	}

	if opts.Text != "" {
		args = append(args, "%"+opts.Text+"%")
		where = append(where, fmt.Sprintf("q.content ILIKE $%d", len(args)))
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)

	q := fmt.Sprintf(`
		SELECT %s FROM questions q
		WHERE %s
		ORDER BY q.updated_at DESC, q.id DESC
		LIMIT $%d`,
		questionColumns, strings.Join(where, " AND "), len(args))

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result, err := scanQuestions(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
