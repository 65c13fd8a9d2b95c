package modalview

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopUtil(ctx context.Context, args url.Values) (UtilResult, error) {
	return UtilResult{}, nil
}

func TestNewUtilViewUnknownName(t *testing.T) {
	_, err := NewUtilView("purge", Utils{"send": noopUtil})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUtilNotRegistered)
	assert.Contains(t, err.Error(), "purge")
}

func TestNewUtilViewDefaults(t *testing.T) {
	v, err := NewUtilView("send", Utils{"send": noopUtil})
	require.NoError(t, err)

	assert.Equal(t, "Run test", v.UtilButton.Value)
	assert.Equal(t, ButtonInfo, v.UtilButton.Style)
	assert.True(t, v.UtilButton.Display)
	assert.Empty(t, v.UtilButton.URL)
}

func TestNewUtilViewCopiesUtils(t *testing.T) {
	utils := Utils{"send": noopUtil}
	v, err := NewUtilView("send", utils)
	require.NoError(t, err)

	delete(utils, "send")

	_, err = v.runUtil(context.Background(), requestState{query: url.Values{}})
	assert.NoError(t, err, "view must keep its own copy of the utils map")
}

func TestMergeArgsQueryWins(t *testing.T) {
	preset := url.Values{"to": {"owner"}, "keep": {"yes"}}
	query := url.Values{"to": {"override"}, "x": {"5"}}

	merged := mergeArgs(preset, query)

	assert.Equal(t, "override", merged.Get("to"))
	assert.Equal(t, "yes", merged.Get("keep"))
	assert.Equal(t, "5", merged.Get("x"))

	merged.Set("to", "mutated")
	assert.Equal(t, "owner", preset.Get("to"), "merging must not touch the preset values")
}

func TestNewResponseDefaults(t *testing.T) {
	resp := NewResponse("", "")
	assert.Equal(t, "Result", resp.Text)
	assert.Equal(t, ResultInfo, resp.Result)

	resp = NewResponse("Saved", ResultSuccess)
	assert.Equal(t, "Saved", resp.Text)
	assert.Equal(t, ResultSuccess, resp.Result)
}

func TestNewButtonDefaults(t *testing.T) {
	b := NewButton("Send report")
	assert.Equal(t, "Send report", b.Value)
	assert.Equal(t, ButtonInfo, b.Style)
	assert.True(t, b.Display)
}
