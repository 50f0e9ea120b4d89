package worker

import (
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	var out struct {
		Period string `json:"period"`
	}

	require.NoError(t, Decode(asynq.NewTask("earning:recalculate", []byte(`{"period":"2026-10"}`)), &out))
	assert.Equal(t, "2026-10", out.Period)

	err := Decode(asynq.NewTask("earning:recalculate", []byte(`{`)), &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}
