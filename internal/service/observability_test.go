package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := NewLogUseCaseObserver(logger)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "save-profile", Success: true})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "save-profile",
		Err:  domain.ValidateProfile(domain.UserProfile{}),
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "get-profile", Err: errors.New("boom")})

	out := buf.String()
	assert.Contains(t, out, "level=INFO msg=service_use_case")
	assert.Contains(t, out, "level=WARN msg=service_use_case")
	assert.Contains(t, out, "level=ERROR msg=service_use_case")
	assert.Contains(t, out, "use_case=save-profile")
	assert.Contains(t, out, "component=service")

	_, isNoop := NewLogUseCaseObserver(nil).(NoopUseCaseObserver)
	assert.True(t, isNoop)
}

func TestIsInvalidInput(t *testing.T) {
	wrapped := fmt.Errorf("save: %w", domain.ValidateProfile(domain.UserProfile{}))

	assert.True(t, isInvalidInput(wrapped))
	assert.False(t, isInvalidInput(errors.New("disk full")))
	assert.False(t, isInvalidInput(nil))
}
