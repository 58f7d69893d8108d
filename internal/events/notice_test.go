package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNotice(t *testing.T) {
	a := NewSuccess("Settings saved successfully!")
	b := NewSuccess("Settings saved successfully!")

	assert.Equal(t, EventSuccess, a.Type)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.Timestamp.IsZero())

	assert.Equal(t, EventError, NewError("x").Type)
	assert.Equal(t, EventWarn, NewWarn("x").Type)
	assert.Equal(t, EventInfo, NewInfo("x").Type)
}

func TestRecorder_Notices(t *testing.T) {
	r := &Recorder{}
	ctx := context.Background()
	r.Emit(ctx, StateChangedEvent, nil)
	r.Emit(ctx, NoticeEvent, NewError("Failed to save settings"))

	notices := r.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, "Failed to save settings", notices[0].Message)
	assert.Len(t, r.Names, 2)
}
