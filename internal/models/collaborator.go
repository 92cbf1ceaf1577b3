package models

import (
	"time"

	"github.com/google/uuid"
)

// Role — именованная роль соавтора.
type Role string

const (
	// RoleAuthor — автор.
	RoleAuthor Role = "author"
	// RoleCopyrightHolder — правообладатель.
	RoleCopyrightHolder Role = "copyright_holder"
	// RoleListed — «числится в списке» (не даёт прав публикации).
	RoleListed Role = "listed"
	// RoleAny — автор или правообладатель.
	RoleAny Role = "any"
)

// QuestionCollaborator — запись соавторства: пара (вопрос, пользователь)
// с флагами ролей. Вопрос «полностью укомплектован», когда флаги автора и
// правообладателя держатся хотя бы по одному разу (возможно, разными записями).
type QuestionCollaborator struct {
	ID         uuid.UUID
	QuestionID int64
	UserID     int64
	// Position — порядок отображения в списке соавторов.
	Position          int32
	IsAuthor          bool
	IsCopyrightHolder bool
	// IsListed — прочая «списочная» роль без прав на публикацию.
	IsListed  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasRole сообщает, установлен ли у записи флаг названной роли.
func (c *QuestionCollaborator) HasRole(role Role) bool {
	switch role {
	case RoleAuthor:
		return c.IsAuthor
	case RoleCopyrightHolder:
		return c.IsCopyrightHolder
	case RoleListed:
		return c.IsListed
	case RoleAny:
		return c.IsAuthor || c.IsCopyrightHolder
	}

	return false
}

// Roleless — запись без ролей автора и правообладателя;
// такие записи вычищаются при публикации.
func (c *QuestionCollaborator) Roleless() bool {
	return !c.IsAuthor && !c.IsCopyrightHolder
}
