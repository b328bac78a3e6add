package controller

import (
	"bytes"
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termsearch/internal/outcome"
	"termsearch/internal/tui/model"
)

func TestNewProgram(t *testing.T) {
	p := NewProgram(model.Options{Query: "golang", Results: outcome.NewContainer()})
	assert.NotNil(t, p)
}

// A program fed a quit key exits cleanly even though the search never
// completes.
func TestRun_QuitWhileSearching(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out bytes.Buffer
	err := Run(
		model.Options{Query: "golang", Results: outcome.NewContainer()},
		tea.WithContext(ctx),
		tea.WithInput(bytes.NewBufferString("q")),
		tea.WithOutput(&out),
		tea.WithoutRenderer(),
	)
	require.NoError(t, err)
}
