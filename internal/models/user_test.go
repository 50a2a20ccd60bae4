package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Период дайджеста выводится из частоты пользователя; на нём строится
// выборка должников в хранилище. Неизвестная частота трактуется как daily.
func TestDigestFrequency_Period(t *testing.T) {
	t.Parallel()

	require.Equal(t, 24*time.Hour, DigestDaily.Period())
	require.Equal(t, 7*24*time.Hour, DigestWeekly.Period())
	require.Equal(t, 24*time.Hour, DigestFrequency("hourly").Period())
}
