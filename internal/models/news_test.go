package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Тесты машины состояний модерации и базового предиката видимости.
//
// Проверяем:
//  - единственные легальные переходы: pending_review -> approved|declined;
//  - терминальность approved/declined;
//  - VisibleAt: одобрено и не истекло; нулевой expires_at = бессрочно.

func TestModerationStatus_TransitionTable(t *testing.T) {
	t.Parallel()

	require.True(t, ModerationPending.CanTransition(ModerationApproved))
	require.True(t, ModerationPending.CanTransition(ModerationDeclined))

	// Из терминальных статусов переходов нет, включая «обратно в pending».
	require.False(t, ModerationApproved.CanTransition(ModerationPending))
	require.False(t, ModerationApproved.CanTransition(ModerationDeclined))
	require.False(t, ModerationDeclined.CanTransition(ModerationPending))
	require.False(t, ModerationDeclined.CanTransition(ModerationApproved))

	// Переход в самого себя тоже нелегален.
	require.False(t, ModerationPending.CanTransition(ModerationPending))
}

func TestModerationStatus_ValidAndTerminal(t *testing.T) {
	t.Parallel()

	require.True(t, ModerationPending.Valid())
	require.True(t, ModerationApproved.Valid())
	require.True(t, ModerationDeclined.Valid())
	require.False(t, ModerationStatus("rejected").Valid())

	require.False(t, ModerationPending.Terminal())
	require.True(t, ModerationApproved.Terminal())
	require.True(t, ModerationDeclined.Terminal())
}

func TestNews_VisibleAt(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	visible := News{ModerationStatus: ModerationApproved, ExpiresAt: now.Add(time.Hour)}
	require.True(t, visible.VisibleAt(now))

	// Истекшая новость невидима даже в статусе approved.
	expired := News{ModerationStatus: ModerationApproved, ExpiresAt: now.Add(-time.Minute)}
	require.False(t, expired.VisibleAt(now))

	// Pending и declined невидимы независимо от expires_at.
	pending := News{ModerationStatus: ModerationPending, ExpiresAt: now.Add(time.Hour)}
	require.False(t, pending.VisibleAt(now))

	declined := News{ModerationStatus: ModerationDeclined, ExpiresAt: now.Add(time.Hour)}
	require.False(t, declined.VisibleAt(now))

	// Нулевой expires_at — без срока давности.
	forever := News{ModerationStatus: ModerationApproved}
	require.True(t, forever.VisibleAt(now))
}
