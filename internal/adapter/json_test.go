package adapter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-awards/internal/adapter"
)

func TestRealJSON_Unmarshal(t *testing.T) {
	j := adapter.NewJSON()

	var out struct {
		GrantID int64 `json:"grant_id"`
	}
	require.NoError(t, j.Unmarshal([]byte(`{"grant_id": 7}`), &out))
	assert.Equal(t, int64(7), out.GrantID)

	assert.Error(t, j.Unmarshal([]byte(`{"grant_id": 7} {"grant_id": 8}`), &out))
	assert.Error(t, j.Unmarshal([]byte(`not json`), &out))
}

func TestRealClock(t *testing.T) {
	c := adapter.NewClock()
	start := c.Now()
	<-c.After(0)
	assert.GreaterOrEqual(t, c.Since(start).Nanoseconds(), int64(0))
}

func TestClock_NowIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, adapter.NewClock().Now().Location())
}
