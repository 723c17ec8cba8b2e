package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSaver struct {
	calls int
	err   error
}

func (f *fakeSaver) SaveAllQuotesToDb(ctx context.Context) error {
	f.calls++
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("missing deadline")
	}
	return f.err
}

func TestRunOnce(t *testing.T) {
	saver := &fakeSaver{}
	s := NewCurrentStockScheduler(saver)

	s.RunOnce()

	assert.Equal(t, 1, saver.calls)
}

func TestRunOnceFailureDoesNotStopNextRun(t *testing.T) {
	saver := &fakeSaver{err: errors.New("mongo down")}
	s := NewCurrentStockScheduler(saver)

	s.RunOnce()
	s.RunOnce()

	assert.Equal(t, 2, saver.calls)
}

func TestRegister(t *testing.T) {
	s := NewCurrentStockScheduler(&fakeSaver{})

	require.NoError(t, s.Register(CurrentStockSpec))
	assert.Len(t, s.Cron.Entries(), 1)

	assert.Error(t, s.Register("not a schedule"))
}
