package editor

import (
	"errors"
	"log/slog"

	"phong-viewer/scene"
)

// Queue collects commands posted from input callbacks and applies them
// once per frame, before rendering. Commands posted while flushing run on
// the next frame.
type Queue struct {
	pending []Command
	history *History

	// OnApplied, if set, observes every command after it ran.
	OnApplied func(cmd Command, err error)
}

func NewQueue(history *History) *Queue {
	return &Queue{history: history}
}

func (q *Queue) Post(cmd Command) {
	q.pending = append(q.pending, cmd)
}

// Len reports how many commands are waiting.
func (q *Queue) Len() int { return len(q.pending) }

// Flush applies the pending commands in order and returns how many
// changed the state. Failures are logged; they never stop the queue.
func (q *Queue) Flush(s *scene.State) int {
	pending := q.pending
	q.pending = nil

	applied := 0
	for _, cmd := range pending {
		err := q.history.Do(s, cmd)
		switch {
		case err == nil:
			applied++
			slog.Debug("command applied", "command", cmd.Description())
		case errors.Is(err, ErrNoChange):
			slog.Debug("command had no effect", "command", cmd.Description())
		case errors.Is(err, scene.ErrMaxLights):
			slog.Info("light rejected", "limit", scene.MaxLights)
		default:
			slog.Warn("command failed", "command", cmd.Description(), "err", err)
		}
		if q.OnApplied != nil {
			q.OnApplied(cmd, err)
		}
	}
	return applied
}

// UndoCommand reverts the newest history entry.
type UndoCommand struct {
	History *History
}

func (c UndoCommand) Execute(s *scene.State) error {
	if _, ok := c.History.Undo(s); !ok {
		return ErrNoChange
	}
	return nil
}

func (c UndoCommand) Description() string { return "Undo" }

// RedoCommand reapplies the newest undone entry.
type RedoCommand struct {
	History *History
}

func (c RedoCommand) Execute(s *scene.State) error {
	_, err := c.History.Redo(s)
	return err
}

func (c RedoCommand) Description() string { return "Redo" }
