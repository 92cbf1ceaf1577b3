package models

// Тесты модели вопроса (question.go): состояние публикации и ленивое
// истечение блокировки.

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQuestion_IsPublished(t *testing.T) {
	t.Parallel()

	draft := Question{ID: 1}
	require.False(t, draft.IsPublished())
	require.False(t, draft.HasEarlierVersions())

	v1 := int32(1)
	first := Question{ID: 2, Number: 3, Version: &v1}
	require.True(t, first.IsPublished())
	require.False(t, first.HasEarlierVersions())

	v2 := int32(2)
	second := Question{ID: 3, Number: 3, Version: &v2}
	require.True(t, second.HasEarlierVersions())
}

func TestQuestion_IsLocked_LazyExpiry(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	timeout := 20 * time.Minute

	free := Question{LockedBy: UnlockedSentinel}
	require.False(t, free.IsLocked(now, timeout))

	lockedAt := now.Add(-5 * time.Minute)
	active := Question{LockedBy: 1, LockedAt: &lockedAt}
	require.True(t, active.IsLocked(now, timeout))
	require.True(t, active.HasLock(1))
	require.False(t, active.HasLock(2))

	// Ровно на границе таймаута блокировка уже не действует.
	boundary := now.Add(-timeout)
	expired := Question{LockedBy: 1, LockedAt: &boundary}
	require.False(t, expired.IsLocked(now, timeout))

	// Отключённые блокировки: любая запись считается свободной.
	require.False(t, active.IsLocked(now, 0))
	require.False(t, active.IsLocked(now, -time.Minute))
}
