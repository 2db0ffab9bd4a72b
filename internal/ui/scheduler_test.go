package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickScheduler_FiresOnce(t *testing.T) {
	s := newTickScheduler()
	calls := 0
	s.Schedule(time.Millisecond, func() { calls++ })

	require.NotNil(t, s.Drain())
	assert.Nil(t, s.Drain())

	assert.True(t, s.Fire(1))
	assert.False(t, s.Fire(1))
	assert.Equal(t, 1, calls)
}

func TestTickScheduler_Cancel(t *testing.T) {
	s := newTickScheduler()
	calls := 0
	cancel := s.Schedule(time.Millisecond, func() { calls++ })
	cancel()

	assert.False(t, s.Fire(1))
	assert.Zero(t, calls)
}

func TestTickScheduler_TickCarriesID(t *testing.T) {
	s := newTickScheduler()
	s.Schedule(time.Millisecond, func() {})
	s.Schedule(time.Millisecond, func() {})

	cmd := s.Drain()
	require.NotNil(t, cmd)

	assert.True(t, s.Fire(2))
	assert.True(t, s.Fire(1))
}
