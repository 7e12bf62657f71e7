package discord

import (
	"sync/atomic"
	"time"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
}

var (
	startTime       = time.Now()
	commandCounter  int64
	lastCommandTime atomic.Value // time.Time
)

// RecordCommand increments the command counter
func RecordCommand() {
	atomic.AddInt64(&commandCounter, 1)
	lastCommandTime.Store(time.Now())
}

// Health returns a snapshot of the bot's health. The bot shares a process
// with the API server, so there is no remote endpoint to probe.
func (b *Bot) Health() HealthStatus {
	connected := b.Session != nil && b.Session.DataReady

	status := "healthy"
	if !connected {
		status = "degraded"
	}

	h := HealthStatus{
		Status:           status,
		Uptime:           time.Since(startTime).String(),
		Connected:        connected,
		CommandsReceived: atomic.LoadInt64(&commandCounter),
	}
	if t, ok := lastCommandTime.Load().(time.Time); ok {
		h.LastCommandTime = t
	}
	return h
}
