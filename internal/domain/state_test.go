package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemporalState_KnownTokens(t *testing.T) {
	for _, token := range []string{"ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"} {
		state, err := ParseTemporalState(token)
		require.NoError(t, err, "token %s", token)
		assert.Equal(t, TemporalState(token), state)
	}
}

func TestParseTemporalState_EmptyMeansAll(t *testing.T) {
	state, err := ParseTemporalState("")
	require.NoError(t, err)
	assert.Equal(t, StateAll, state)
}

func TestParseTemporalState_Unknown(t *testing.T) {
	_, err := ParseTemporalState("SOMEDAY")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedState)
	assert.Equal(t, "Unknown state: UNSUPPORTED_STATUS", err.Error())
}

func TestParseTemporalState_CaseSensitive(t *testing.T) {
	_, err := ParseTemporalState("current")
	assert.ErrorIs(t, err, ErrUnsupportedState)
}

func TestPageFromOffset(t *testing.T) {
	tests := []struct {
		name string
		from int
		size int
		want int
	}{
		{"first page", 0, 10, 0},
		{"exact page boundary", 10, 10, 1},
		{"offset inside page truncates down", 5, 10, 0},
		{"offset inside later page", 25, 10, 2},
		{"zero size", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageFromOffset(tt.from, tt.size))
		})
	}
}
