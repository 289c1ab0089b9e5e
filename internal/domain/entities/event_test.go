package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventStatus(t *testing.T) {
	for _, s := range EventStatuses {
		got, err := ParseEventStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	for _, label := range []string{"", "cancelada", "Confirmada", " confirmada", "encerrada-pendente"} {
		_, err := ParseEventStatus(label)
		assert.ErrorIs(t, err, ErrInvalidState, "label %q", label)
	}
}

func TestEventStatus_TransitionToIsPermissive(t *testing.T) {
	for _, from := range EventStatuses {
		for _, to := range EventStatuses {
			got, err := from.TransitionTo(string(to))
			require.NoError(t, err, "%s -> %s", from, to)
			assert.Equal(t, to, got)
		}
	}
}

func TestEventStatus_TransitionToIsIdempotent(t *testing.T) {
	first, err := EventStatusConfirmada.TransitionTo("encerrada_pendente")
	require.NoError(t, err)
	second, err := first.TransitionTo("encerrada_pendente")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err1 := EventStatusEncerrada.TransitionTo("arquivada")
	_, err2 := EventStatusEncerrada.TransitionTo("arquivada")
	assert.True(t, errors.Is(err1, ErrInvalidState) && errors.Is(err2, ErrInvalidState))
}

func TestEventStatus_Helpers(t *testing.T) {
	assert.Equal(t, EventStatusPlanejamento, InitialEventStatus)
	assert.True(t, EventStatusEncerrada.IsTerminal())
	assert.False(t, EventStatusEncerradaPendente.IsTerminal())
	assert.True(t, EventStatusConfirmada.IsValid())
	assert.False(t, EventStatus("x").IsValid())
}

func TestEvent_HasTime(t *testing.T) {
	assert.True(t, Event{Time: "19:30"}.HasTime())
	assert.False(t, Event{Time: "  "}.HasTime())
}
