package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termsearch/internal/google"
	"termsearch/internal/outcome"
)

func threeItems() *google.Response {
	return &google.Response{
		TotalResults: "3",
		SearchTime:   "0.21",
		Items: []google.Item{
			{Title: "A", Link: "https://a.example"},
			{Title: "B", Link: "https://b.example"},
			{Title: "C", Link: "https://c.example"},
		},
	}
}

func TestInitializeModel_Defaults(t *testing.T) {
	m := InitializeModel(Options{Query: "golang", Results: outcome.NewContainer(), SeparatorRows: -2})

	assert.Equal(t, DefaultPollInterval, m.PollInterval)
	assert.Equal(t, 0, m.SeparatorRows)
	assert.NotNil(t, m.Opener)
	assert.Equal(t, RenderSearching, m.RenderState())
	assert.NotNil(t, m.Init(), "a pending model must start polling")
}

func TestInitializeModel_AlreadyComplete(t *testing.T) {
	c := outcome.NewContainer()
	c.Complete(outcome.Succeeded(threeItems()))

	m := InitializeModel(Options{Query: "golang", Results: c})
	assert.Equal(t, RenderResults, m.RenderState())
	assert.Nil(t, m.Init())

	item, ok := m.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, "A", item.Title)
}

func TestSync_TransitionResetsSelectionOnce(t *testing.T) {
	c := outcome.NewContainer()
	m := InitializeModel(Options{Results: c})

	assert.False(t, m.Sync(), "no change while pending")
	_, ok := m.SelectedItem()
	assert.False(t, ok)

	c.Complete(outcome.Succeeded(threeItems()))
	assert.True(t, m.Sync())
	assert.Equal(t, 3, m.Selection.Count())

	m.Selection.Next()
	assert.False(t, m.Sync(), "a terminal outcome never changes")
	idx, _ := m.Selection.Index()
	assert.Equal(t, 1, idx, "later syncs must not reset the selection")
}

func TestSync_Failed(t *testing.T) {
	c := outcome.NewContainer()
	m := InitializeModel(Options{Results: c})
	c.Complete(outcome.Failed(errors.New("quota exceeded")))

	assert.True(t, m.Sync())
	assert.Equal(t, RenderResults, m.RenderState())
	assert.False(t, m.Navigable())
	_, ok := m.SelectedItem()
	assert.False(t, ok)
}

func TestSync_EmptySuccess(t *testing.T) {
	c := outcome.NewContainer()
	c.Complete(outcome.Succeeded(&google.Response{TotalResults: "0"}))
	m := InitializeModel(Options{Results: c})

	assert.True(t, m.Navigable())
	_, ok := m.SelectedItem()
	assert.False(t, ok)
}

func TestSetStatusMessage(t *testing.T) {
	m := InitializeModel(Options{Results: outcome.NewContainer()})

	cmd := m.SetStatusMessage("Link copied", StatusBarSuccess, time.Millisecond)
	require.NotNil(t, cmd)
	assert.Equal(t, "Link copied", m.StatusBarMessage)
	assert.Equal(t, StatusBarSuccess, m.StatusBarMessageType)
	assert.Equal(t, ClearStatusBarMsg{}, cmd())

	stale := m.SetStatusMessage("first", StatusBarInfo, time.Millisecond)
	m.SetStatusMessage("second", StatusBarInfo, time.Millisecond)
	assert.Nil(t, stale(), "a replaced message must not clear its successor")

	m.ClearStatusMessage()
	assert.Empty(t, m.StatusBarMessage)
	assert.Nil(t, m.StatusBarClearCancel)
}

func TestPollCmd(t *testing.T) {
	msg := PollCmd(time.Millisecond)()
	_, ok := msg.(PollMsg)
	assert.True(t, ok)
}

func TestRenderStateString(t *testing.T) {
	assert.Equal(t, "Searching", RenderSearching.String())
	assert.Equal(t, "Results", RenderResults.String())
	assert.Equal(t, "Unknown", RenderState(7).String())
}
