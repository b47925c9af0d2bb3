package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func keyMsg(t tea.KeyType) tea.Msg {
	return tea.KeyMsg{Type: t}
}

func runeMsg(r rune) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(m selectModel, msgs ...tea.Msg) selectModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(selectModel)
	}
	return m
}

func TestSelectModel(t *testing.T) {
	files := []string{"a.pdf", "b.pdf", "c.pdf"}

	t.Run("toggle order becomes merge order", func(t *testing.T) {
		m := newSelectModel(files)

		// Select b, then a
		m = update(m,
			keyMsg(tea.KeyDown),
			keyMsg(tea.KeySpace),
			keyMsg(tea.KeyUp),
			keyMsg(tea.KeySpace),
		)

		require.Equal(t, []int{1, 0}, m.order)
	})

	t.Run("toggling again deselects", func(t *testing.T) {
		m := newSelectModel(files)

		m = update(m, keyMsg(tea.KeySpace), keyMsg(tea.KeySpace))
		require.Empty(t, m.order)
	})

	t.Run("K moves the highlighted file earlier in the order", func(t *testing.T) {
		m := newSelectModel(files)

		// Select a then b, then move b before a
		m = update(m,
			keyMsg(tea.KeySpace),
			keyMsg(tea.KeyDown),
			keyMsg(tea.KeySpace),
			runeMsg('K'),
		)

		require.Equal(t, []int{1, 0}, m.order)
	})

	t.Run("J moves the highlighted file later in the order", func(t *testing.T) {
		m := newSelectModel(files)

		m = update(m,
			keyMsg(tea.KeySpace),
			keyMsg(tea.KeyDown),
			keyMsg(tea.KeySpace),
			keyMsg(tea.KeyUp),
			runeMsg('J'),
		)

		require.Equal(t, []int{1, 0}, m.order)
	})

	t.Run("moving an unselected file does nothing", func(t *testing.T) {
		m := newSelectModel(files)

		m = update(m, runeMsg('K'), runeMsg('J'))
		require.Empty(t, m.order)
	})

	t.Run("enter with an empty selection does not confirm", func(t *testing.T) {
		m := newSelectModel(files)

		m = update(m, keyMsg(tea.KeyEnter))
		require.False(t, m.confirmed)
	})

	t.Run("enter confirms a non-empty selection", func(t *testing.T) {
		m := newSelectModel(files)

		m = update(m, keyMsg(tea.KeySpace), keyMsg(tea.KeyEnter))
		require.True(t, m.confirmed)
		require.Equal(t, []int{0}, m.order)
	})

	t.Run("esc cancels", func(t *testing.T) {
		m := newSelectModel(files)

		m = update(m, keyMsg(tea.KeySpace), keyMsg(tea.KeyEsc))
		require.True(t, m.canceled)
	})

	t.Run("cursor stays within bounds", func(t *testing.T) {
		m := newSelectModel(files)

		m = update(m, keyMsg(tea.KeyUp))
		require.Equal(t, 0, m.cursor)

		m = update(m, keyMsg(tea.KeyDown), keyMsg(tea.KeyDown), keyMsg(tea.KeyDown), keyMsg(tea.KeyDown))
		require.Equal(t, 2, m.cursor)
	})
}
