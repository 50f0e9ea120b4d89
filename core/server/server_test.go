package server

import (
	"testing"
	"time"

	"court-reservation-api/core/config"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
)

func TestNewTaskMux_RegistersHandlers(t *testing.T) {
	cfg := &config.Config{Availability: config.AvailabilityConfig{Timezone: "America/Santiago"}}
	mux := NewTaskMux(nil, nil, cfg)

	for _, taskType := range []string{"earning:recalculate", "report:export"} {
		_, pattern := mux.Handler(asynq.NewTask(taskType, nil))
		assert.Equal(t, taskType, pattern)
	}

	_, pattern := mux.Handler(asynq.NewTask("unknown:task", nil))
	assert.Empty(t, pattern)
}

func TestShutdownTimeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, shutdownTimeout(&config.Config{}))
	assert.Equal(t, 5*time.Second, shutdownTimeout(&config.Config{Server: config.ServerConfig{ShutdownTimeout: 5}}))
}
