package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayJob_Process(t *testing.T) {
	t.Run("advances once", func(t *testing.T) {
		calls := 0
		job := NewDayJob(func(ctx context.Context) error {
			calls++
			return nil
		})

		assert.NoError(t, job.Process(context.Background()))
		assert.Equal(t, 1, calls)
	})

	t.Run("returns advance error", func(t *testing.T) {
		boom := errors.New("boom")
		job := NewDayJob(func(ctx context.Context) error { return boom })

		assert.ErrorIs(t, job.Process(context.Background()), boom)
	})

	t.Run("runs on the pool", func(t *testing.T) {
		pool := NewPool(1, 1)
		pool.Start()
		defer pool.Stop()

		days := 0
		err := pool.Do(context.Background(), NewDayJob(func(ctx context.Context) error {
			days++
			return nil
		}))

		assert.NoError(t, err)
		assert.Equal(t, 1, days)
	})
}
