package systems

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct{ trace []string }

func phase(name string, err error) System[*counter] {
	return NewFunc(name, func(_ float64, c *counter) error {
		c.trace = append(c.trace, name)
		return err
	})
}

func TestManagerRunsInRegistrationOrder(t *testing.T) {
	m := NewManager[*counter]()
	m.MustRegister(phase("player", nil), phase("predators", nil), phase("bubbles", nil))

	c := &counter{}
	require.NoError(t, m.Update(0.016, c))
	require.NoError(t, m.Update(0.016, c))

	assert.Equal(t, []string{"player", "predators", "bubbles", "player", "predators", "bubbles"}, c.trace)
	assert.Equal(t, []string{"player", "predators", "bubbles"}, m.GetExecutionOrder())

	metrics, ok := m.GetSystemMetrics("predators")
	require.True(t, ok)
	assert.Equal(t, uint64(2), metrics.ExecutionCount)
}

func TestManagerDuplicateAndMissing(t *testing.T) {
	m := NewManager[*counter]()
	require.NoError(t, m.Register(phase("a", nil)))
	assert.ErrorIs(t, m.Register(phase("a", nil)), ErrSystemExists)
	assert.ErrorIs(t, m.SetEnabled("b", false), ErrSystemNotFound)
	assert.Panics(t, func() { m.MustRegister(phase("a", nil)) })

	_, ok := m.GetSystemMetrics("b")
	assert.False(t, ok)
}

func TestManagerDisabledSkipped(t *testing.T) {
	m := NewManager[*counter]()
	m.MustRegister(phase("a", nil), phase("b", nil))
	require.NoError(t, m.SetEnabled("a", false))
	assert.False(t, m.IsEnabled("a"))
	assert.True(t, m.IsEnabled("b"))

	c := &counter{}
	require.NoError(t, m.Update(0.016, c))
	assert.Equal(t, []string{"b"}, c.trace)
}

func TestManagerJoinsErrorsAndContinues(t *testing.T) {
	boom := errors.New("boom")
	m := NewManager[*counter]()
	m.MustRegister(phase("a", boom), phase("b", nil))

	c := &counter{}
	err := m.Update(0.016, c)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "a: boom")
	assert.Equal(t, []string{"a", "b"}, c.trace)

	metrics, _ := m.GetSystemMetrics("a")
	assert.Equal(t, uint64(1), metrics.ErrorCount)
	assert.ErrorIs(t, metrics.LastError, boom)
}
