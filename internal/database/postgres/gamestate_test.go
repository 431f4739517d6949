package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRow feeds canned column values into scanGameState.
type stubRow struct {
	inv, progress, clock string
}

func (r stubRow) Scan(dest ...any) error {
	*dest[0].(*int) = 42
	*dest[1].(*int) = 7
	*dest[2].(*string) = "meadowbrook"
	*dest[3].(*json.RawMessage) = json.RawMessage(r.inv)
	*dest[4].(*json.RawMessage) = json.RawMessage(r.progress)
	*dest[5].(*json.RawMessage) = json.RawMessage(r.clock)
	*dest[6].(*time.Time) = time.Now()
	*dest[7].(*time.Time) = time.Now()
	return nil
}

func TestScanGameState_MalformedInventoryBlob(t *testing.T) {
	row := stubRow{
		inv:      `{"items": not-json`,
		progress: `{"available": ["mq001"], "completed": []}`,
		clock:    `{"day": 2, "hour": 9}`,
	}

	state, err := scanGameState(context.Background(), row)
	require.NoError(t, err)

	assert.Equal(t, 42, state.ID)
	assert.Equal(t, "meadowbrook", state.CurrentLocation)
	assert.False(t, state.Inventory.Valid())
	assert.Equal(t, []string{"mq001"}, state.QuestProgress.Available)
	assert.Equal(t, 2, state.Clock.Day)
}

func TestScanGameState_AllBlobsMalformed(t *testing.T) {
	row := stubRow{inv: `garbage`, progress: `{{`, clock: `null,`}

	state, err := scanGameState(context.Background(), row)
	require.NoError(t, err)

	assert.False(t, state.Inventory.Valid())
	assert.Nil(t, state.QuestProgress.Available)
	assert.Nil(t, state.QuestProgress.Completed)
	assert.Equal(t, 0, state.Clock.Day)
	assert.Equal(t, 0, state.Clock.Hour)
}
