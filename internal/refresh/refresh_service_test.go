package refresh

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/admybrand/dashboard-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLoader struct {
	calls       atomic.Int32
	hadDeadline atomic.Bool
}

func (l *countingLoader) Load(ctx context.Context) models.AppConfig {
	_, ok := ctx.Deadline()
	l.hadDeadline.Store(ok)
	l.calls.Add(1)
	return models.AppConfig{}
}

func TestServiceRunsOnSchedule(t *testing.T) {
	loader := &countingLoader{}
	svc := NewService(loader, "@every 1s", 0)

	require.NoError(t, svc.Start(context.Background()))
	defer svc.Stop()

	assert.False(t, svc.Next().IsZero())
	assert.Eventually(t, func() bool { return loader.calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
}

func TestServiceRejectsInvalidSchedule(t *testing.T) {
	svc := NewService(&countingLoader{}, "not a schedule", 0)

	err := svc.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid refresh schedule")
	assert.True(t, svc.Next().IsZero())
}

func TestServiceStartTwice(t *testing.T) {
	svc := NewService(&countingLoader{}, "@hourly", 0)
	require.NoError(t, svc.Start(context.Background()))
	defer svc.Stop()

	assert.Error(t, svc.Start(context.Background()))
}

func TestServiceStopIsIdempotent(t *testing.T) {
	svc := NewService(&countingLoader{}, "@hourly", 0)
	require.NoError(t, svc.Start(context.Background()))

	svc.Stop()
	svc.Stop()
	assert.True(t, svc.Next().IsZero())
}

func TestServiceStopsWithContext(t *testing.T) {
	svc := NewService(&countingLoader{}, "@hourly", 0)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, svc.Start(ctx))

	cancel()
	assert.Eventually(t, func() bool { return svc.Next().IsZero() }, time.Second, 10*time.Millisecond)
}

func TestRunOnceAppliesTimeout(t *testing.T) {
	loader := &countingLoader{}

	NewService(loader, "@hourly", time.Second).RunOnce(context.Background())
	assert.Equal(t, int32(1), loader.calls.Load())
	assert.True(t, loader.hadDeadline.Load())

	NewService(loader, "@hourly", 0).RunOnce(context.Background())
	assert.Equal(t, int32(2), loader.calls.Load())
	assert.False(t, loader.hadDeadline.Load())
}
