package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTournament_HasLeague(t *testing.T) {
	tournament := &Tournament{HasGold: true, HasBronze: true}

	assert.True(t, tournament.HasLeague(LeagueGold))
	assert.False(t, tournament.HasLeague(LeagueSilver))
	assert.True(t, tournament.HasLeague(LeagueBronze))
	assert.False(t, tournament.HasLeague(League("PLATINUM")))
}

func TestTournament_IsOpenForRegistration(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	t.Run("UPCOMING без дедлайна открыт", func(t *testing.T) {
		tournament := &Tournament{Status: TournamentUpcoming}
		assert.True(t, tournament.IsOpenForRegistration(now))
	})

	t.Run("ONGOING открыт", func(t *testing.T) {
		tournament := &Tournament{Status: TournamentOngoing}
		assert.True(t, tournament.IsOpenForRegistration(now))
	})

	t.Run("FINISHED и CANCELED закрыты", func(t *testing.T) {
		assert.False(t, (&Tournament{Status: TournamentFinished}).IsOpenForRegistration(now))
		assert.False(t, (&Tournament{Status: TournamentCanceled}).IsOpenForRegistration(now))
	})

	t.Run("дедлайн в день регистрации еще действует", func(t *testing.T) {
		deadline := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
		tournament := &Tournament{Status: TournamentUpcoming, RegistrationEndDate: &deadline}
		assert.True(t, tournament.IsOpenForRegistration(now))
	})

	t.Run("просроченный дедлайн закрывает регистрацию", func(t *testing.T) {
		deadline := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
		tournament := &Tournament{Status: TournamentUpcoming, RegistrationEndDate: &deadline}
		assert.False(t, tournament.IsOpenForRegistration(now))
	})
}
