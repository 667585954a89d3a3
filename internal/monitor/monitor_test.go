package monitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disco-express/kiosk/internal/client/mock"
	"github.com/disco-express/kiosk/internal/models"
)

func TestPollUpdatesState(t *testing.T) {
	testCases := []struct {
		name   string
		status models.ServerStatus
		err    error
		want   models.ServerStatus
	}{
		{
			name:   "ok",
			status: models.StatusOK,
			want:   models.StatusOK,
		},
		{
			name:   "unavailable",
			status: models.StatusUnavailable,
			want:   models.StatusUnavailable,
		},
		{
			name: "poll_failure_synthesizes_error",
			err:  errors.New("connection refused"),
			want: models.StatusError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			c := mock.NewMockClient(ctrl)
			c.EXPECT().Status(gomock.Any()).Return(tc.status, tc.err)

			m := New(c, time.Minute)
			require.Equal(t, models.StatusUnknown, m.State())

			m.poll(context.Background())
			assert.Equal(t, tc.want, m.State())
		})
	}
}

func TestPollReplacesStateUnconditionally(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewMockClient(ctrl)
	gomock.InOrder(
		c.EXPECT().Status(gomock.Any()).Return(models.StatusOK, nil),
		c.EXPECT().Status(gomock.Any()).Return(models.ServerStatus(""), errors.New("timeout")),
		c.EXPECT().Status(gomock.Any()).Return(models.StatusOK, nil),
	)

	m := New(c, time.Minute)
	ctx := context.Background()

	m.poll(ctx)
	assert.Equal(t, models.StatusOK, m.State())
	m.poll(ctx)
	assert.Equal(t, models.StatusError, m.State())
	m.poll(ctx)
	assert.Equal(t, models.StatusOK, m.State())
}

func TestSubscribersNotifiedEveryPoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewMockClient(ctrl)
	c.EXPECT().Status(gomock.Any()).Return(models.StatusOK, nil).Times(2)

	m := New(c, time.Minute)

	var seen []models.ServerStatus
	m.Subscribe(func(state models.ServerStatus) {
		seen = append(seen, state)
	})

	m.poll(context.Background())
	m.poll(context.Background())
	assert.Equal(t, []models.ServerStatus{models.StatusOK, models.StatusOK}, seen)
}

func TestShutdownExitsAndStopsPolling(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewMockClient(ctrl)
	// Times(1) also proves no poll happens after SHUTDOWN.
	c.EXPECT().Status(gomock.Any()).Return(models.StatusShutdown, nil).Times(1)

	m := New(c, 10*time.Millisecond)

	exited := make(chan int, 1)
	m.exit = func(code int) { exited <- code }

	done := make(chan struct{})
	go func() {
		m.Run(context.Background())
		close(done)
	}()

	select {
	case code := <-exited:
		assert.Equal(t, 0, code)
	case <-time.After(time.Second):
		t.Fatal("exit was not called")
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after shutdown")
	}

	// Give a dropped ticker tick the chance to misfire.
	time.Sleep(50 * time.Millisecond)
}

func TestShutdownSkipsSubscribers(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewMockClient(ctrl)
	c.EXPECT().Status(gomock.Any()).Return(models.StatusShutdown, nil)

	m := New(c, time.Minute)
	m.exit = func(int) {}

	notified := false
	m.Subscribe(func(models.ServerStatus) { notified = true })

	m.poll(context.Background())
	assert.False(t, notified, "SHUTDOWN bypasses visual signaling")
}

func TestRunStopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewMockClient(ctrl)
	c.EXPECT().Status(gomock.Any()).Return(models.StatusOK, nil).AnyTimes()

	m := New(c, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}
