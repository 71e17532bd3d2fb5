package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mrlokans/catalogexport/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingExporter struct {
	calls atomic.Int32
	err   error
}

func (c *countingExporter) ExportAll(ctx context.Context) (services.ExportResult, error) {
	c.calls.Add(1)
	return services.ExportResult{RunID: "run", Total: 3, ItemsExported: 3}, c.err
}

func TestValidateSchedule(t *testing.T) {
	assert.NoError(t, ValidateSchedule("0 * * * *"))
	assert.NoError(t, ValidateSchedule("*/15 * * * *"))
	assert.Error(t, ValidateSchedule("every hour"))
	assert.Error(t, ValidateSchedule("0 0 * * * *"))
}

func TestNextRunTime(t *testing.T) {
	from := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)
	next, err := NextRunTime("0 * * * *", from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 15, 0, 0, 0, time.UTC), next)
}

func TestDescribeSchedule(t *testing.T) {
	assert.Equal(t, "Every hour at :00", DescribeSchedule("0 * * * *"))
	assert.Equal(t, "Custom schedule: 5 4 * * *", DescribeSchedule("5 4 * * *"))
}

func TestExportScheduler(t *testing.T) {
	t.Run("rejects invalid schedule", func(t *testing.T) {
		s := NewExportScheduler(&countingExporter{}, "nope")
		assert.Error(t, s.Start(context.Background()))
		assert.False(t, s.IsRunning())
	})

	t.Run("starts and stops", func(t *testing.T) {
		s := NewExportScheduler(&countingExporter{}, "0 * * * *")
		require.NoError(t, s.Start(context.Background()))
		assert.True(t, s.IsRunning())
		assert.NotNil(t, s.GetNextRunTime())

		s.Stop()
		assert.False(t, s.IsRunning())
		assert.Nil(t, s.GetNextRunTime())
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		s := NewExportScheduler(&countingExporter{}, "0 * * * *")
		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, s.Start(ctx))

		cancel()
		assert.Eventually(t, func() bool { return !s.IsRunning() }, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("RunNow exports and keeps the last result", func(t *testing.T) {
		exporter := &countingExporter{}
		s := NewExportScheduler(exporter, "0 * * * *")

		s.RunNow()
		assert.Eventually(t, func() bool { return exporter.calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

		assert.Eventually(t, func() bool {
			result, err := s.LastResult()
			return result != nil && err == nil && result.RunID == "run"
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("keeps failed result", func(t *testing.T) {
		cause := errors.New("catalog unavailable")
		exporter := &countingExporter{err: cause}
		s := NewExportScheduler(exporter, "0 * * * *")

		s.RunNow()
		assert.Eventually(t, func() bool {
			_, err := s.LastResult()
			return errors.Is(err, cause)
		}, 2*time.Second, 10*time.Millisecond)
	})
}
