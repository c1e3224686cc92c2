package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixit/internal/shared/logger"
)

type countingJob struct {
	runs atomic.Int32
	err  error
}

func (j *countingJob) Execute(ctx context.Context) (int, error) {
	j.runs.Add(1)
	return 1, j.err
}

func TestManager_RunsImmediateJob(t *testing.T) {
	m, err := NewManager(logger.NewNop())
	require.NoError(t, err)

	job := &countingJob{}
	require.NoError(t, m.RegisterDashboardRefresh(job, time.Hour))

	m.Start()
	m.Start()
	defer func() { assert.NoError(t, m.Shutdown()) }()

	assert.Eventually(t, func() bool { return job.runs.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestManager_RejectsNonPositiveInterval(t *testing.T) {
	m, err := NewManager(logger.NewNop())
	require.NoError(t, err)

	assert.Error(t, m.RegisterOverdueReminder(&countingJob{}, 0))
}

func TestManager_RunSurvivesJobError(t *testing.T) {
	m, err := NewManager(logger.NewNop())
	require.NoError(t, err)

	job := &countingJob{err: errors.New("db down")}
	m.run("failing", job)
	m.run("failing", job)

	assert.Equal(t, int32(2), job.runs.Load())
}
