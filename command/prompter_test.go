package command

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/koch"
)

func TestParsePoints(t *testing.T) {
	tests := []struct {
		in   string
		want []koch.Point
	}{
		{"", []koch.Point{}},
		{"1,2", []koch.Point{koch.Pt(1, 2)}},
		{"1,2;3.5,-4", []koch.Point{koch.Pt(1, 2), koch.Pt(3.5, -4)}},
		{" 0,0  10,10,2 ", []koch.Point{koch.Pt(0, 0), koch.Pt3(10, 10, 2)}},
	}
	for _, tt := range tests {
		got, err := ParsePoints(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"1", "1,2,3,4", "a,b", "1,,2"} {
		_, err := ParsePoints(bad)
		assert.Error(t, err, bad)
	}
}

func TestLinePrompter_Answers(t *testing.T) {
	in := strings.NewReader("0,0; 20,0\n3\n7.5\n")
	var out bytes.Buffer
	p := NewLinePrompter(in, &out)
	ctx := context.Background()

	pts, err := p.SelectPoints(ctx, PromptPoints)
	require.NoError(t, err)
	assert.Equal(t, []koch.Point{koch.Pt(0, 0), koch.Pt(20, 0)}, pts)

	depth, err := p.GetInteger(ctx, PromptDepth, 0, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, depth)

	radius, err := p.GetNumber(ctx, PromptRadius, 10)
	require.NoError(t, err)
	assert.Equal(t, 7.5, radius)

	assert.Contains(t, out.String(), PromptDepth+" <0> [0..5]: ")
	assert.Contains(t, out.String(), PromptRadius+" <10>: ")
}

func TestLinePrompter_DefaultsAndRetries(t *testing.T) {
	in := strings.NewReader("9\nx\n\n\n")
	var out bytes.Buffer
	p := NewLinePrompter(in, &out)
	ctx := context.Background()

	depth, err := p.GetInteger(ctx, PromptDepth, 2, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, depth, "out-of-range and malformed answers are asked again")
	assert.Contains(t, out.String(), "must be between 0 and 5")
	assert.Contains(t, out.String(), `not an integer: "x"`)

	radius, err := p.GetNumber(ctx, PromptRadius, 10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, radius)
}

func TestLinePrompter_Abort(t *testing.T) {
	ctx := context.Background()

	p := NewLinePrompter(strings.NewReader("!\n"), &bytes.Buffer{})
	_, err := p.SelectPoints(ctx, PromptPoints)
	assert.ErrorIs(t, err, koch.ErrAborted)

	p = NewLinePrompter(strings.NewReader(""), &bytes.Buffer{})
	_, err = p.GetNumber(ctx, PromptRadius, 1)
	assert.ErrorIs(t, err, koch.ErrAborted, "EOF cancels")
}

func TestLinePrompter_FullCommand(t *testing.T) {
	in := strings.NewReader("bad\n0,0\n\n\n")
	var out bytes.Buffer
	doc := &memDocument{}

	res, err := New().Run(context.Background(), NewLinePrompter(in, &out), doc)
	require.NoError(t, err)
	assert.Equal(t, Success, res)
	assert.Len(t, doc.lines, 3, "default depth 0 draws the seed triangle")
	assert.Contains(t, out.String(), "invalid point")
}

func TestLinePrompter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := New().Run(ctx, NewLinePrompter(strings.NewReader("0,0\n"), &bytes.Buffer{}), &memDocument{})
	assert.Equal(t, Cancel, res)
	assert.ErrorIs(t, err, koch.ErrAborted)
}
