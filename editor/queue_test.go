package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phong-viewer/scene"
)

type failingCommand struct{}

func (failingCommand) Execute(*scene.State) error { return errors.New("boom") }
func (failingCommand) Description() string { return "fail" }

func TestQueueFlushAppliesInOrder(t *testing.T) {
	s := scene.NewState()
	q := NewQueue(NewHistory(10))

	q.Post(EditCamera("fovy", func(c *scene.Camera) { c.SetFovy(c.Fovy + 1) }))
	q.Post(EditCamera("fovy", func(c *scene.Camera) { c.SetFovy(c.Fovy * 2) }))
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, float32(45), s.Camera.Fovy, "nothing applies before the flush")

	assert.Equal(t, 2, q.Flush(s))
	assert.Equal(t, float32(92), s.Camera.Fovy)
	assert.Zero(t, q.Len())
	assert.Zero(t, q.Flush(s))
}

func TestQueueKeepsGoingAfterFailures(t *testing.T) {
	s := scene.NewState()
	q := NewQueue(NewHistory(10))

	var seen []error
	q.OnApplied = func(_ Command, err error) { seen = append(seen, err) }

	q.Post(failingCommand{})
	q.Post(NewRemoveLightCommand())
	q.Post(NewAddLightCommand(scene.NewLightPosition))

	assert.Equal(t, 1, q.Flush(s))
	require.Len(t, seen, 3)
	assert.EqualError(t, seen[0], "boom")
	assert.ErrorIs(t, seen[1], ErrNoChange)
	assert.NoError(t, seen[2])
	assert.Len(t, s.Lights, 1)
}

func TestQueueUndoRedoCommands(t *testing.T) {
	s := scene.NewDefaultState()
	h := NewHistory(10)
	q := NewQueue(h)

	q.Post(NewRemoveLightCommand())
	q.Post(NewRemoveLightCommand())
	q.Flush(s)
	require.Len(t, s.Lights, 1)

	q.Post(UndoCommand{History: h})
	assert.Equal(t, 1, q.Flush(s))
	assert.Len(t, s.Lights, 2)

	q.Post(RedoCommand{History: h})
	assert.Equal(t, 1, q.Flush(s))
	assert.Len(t, s.Lights, 1)

	q.Post(RedoCommand{History: h})
	assert.Zero(t, q.Flush(s))

	// Undo and redo never land in the history themselves.
	q.Post(UndoCommand{History: h})
	q.Post(UndoCommand{History: h})
	q.Post(UndoCommand{History: h})
	assert.Equal(t, 2, q.Flush(s))
	assert.Len(t, s.Lights, 3)
}
