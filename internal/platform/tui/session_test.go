package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kojo-codeur/Mario/internal/core"
	"github.com/kojo-codeur/Mario/internal/logging"
	"github.com/kojo-codeur/Mario/internal/registry"
	"github.com/kojo-codeur/Mario/internal/storage"
)

func init() {
	registry.Register("scripted", func() registry.Game { return &scriptedGame{} })
}

// fullStore adds the read side to memoryStore.
type fullStore struct {
	memoryStore
}

func (s *fullStore) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	var out []storage.ScoreEntry
	for _, sc := range s.scores {
		out = append(out, storage.ScoreEntry{GameID: gameID, Score: sc})
	}
	return out, nil
}

func (s *fullStore) RecentRuns(gameID string, limit int) ([]storage.RunRecord, error) {
	return s.runs, nil
}

func TestFromStorageNil(t *testing.T) {
	assert.Nil(t, FromStorage(nil))
}

func TestMenuSelectsVariant(t *testing.T) {
	m := NewMenuModel(&fullStore{memoryStore{high: 77}}, core.DefaultConfig())
	require.NotEmpty(t, m.items)
	assert.Equal(t, 77, m.items[0].HighScore)
	assert.Contains(t, m.View(), "best 77")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	assert.True(t, isQuit(cmd))
	require.NotNil(t, m.Selected())
	assert.Equal(t, m.items[0].GameID, m.Result().GameID)
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, next.(MenuModel).Result().WantsScoreboard)

	next, _ = m.Update(runeKey('q'))
	assert.True(t, next.(MenuModel).Result().Quit)
}

func TestScoreboardToggleViews(t *testing.T) {
	store := &fullStore{}
	store.scores = []int{300, 100}
	store.runs = []storage.RunRecord{{Outcome: storage.OutcomeVictory, Score: 300, Level: 4, Duration: 75 * time.Second}}

	m := NewScoreboardModel(store, 100, 30)
	assert.Len(t, m.scores, 2)
	assert.Contains(t, m.View(), "HIGH SCORES")

	next, _ := m.Update(runeKey('v'))
	m = next.(ScoreboardModel)
	assert.Len(t, m.runs, 1)
	assert.Contains(t, m.View(), "RECENT RUNS")
	assert.Equal(t, "1:15", formatDuration(75))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, isQuit(cmd))
	assert.True(t, next.(ScoreboardModel).IsGoingBack())
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, logging.Discard())

	// Pick the first variant
	for s.menu.items[s.menu.cursor].GameID != "scripted" {
		next, _ := s.Update(tea.KeyMsg{Type: tea.KeyDown})
		s = next.(SessionModel)
	}
	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	require.Equal(t, screenGame, s.screen)
	assert.False(t, isQuit(cmd), "starting a game must not end the session")

	// Quitting the game returns to the picker
	next, cmd = s.Update(runeKey('q'))
	s = next.(SessionModel)
	assert.Equal(t, screenPicker, s.screen)
	assert.False(t, isQuit(cmd))

	// Quitting the picker ends the session
	next, cmd = s.Update(runeKey('q'))
	assert.True(t, isQuit(cmd))
	assert.Empty(t, next.(SessionModel).View())
}
