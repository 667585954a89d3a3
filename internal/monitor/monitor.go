// Package monitor tracks jukebox server reachability for the whole
// kiosk. The source of truth is one shared poller; screens subscribe to
// it instead of each running their own timer.
package monitor

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/disco-express/kiosk/internal/client"
	"github.com/disco-express/kiosk/internal/logger"
	"github.com/disco-express/kiosk/internal/models"
)

// Monitor polls the server status endpoint on a fixed interval and
// broadcasts the result. A SHUTDOWN status is a remote kill switch: the
// monitor stops polling and terminates the process with exit code 0.
type Monitor struct {
	client   client.Client
	interval time.Duration
	exit     func(code int)

	mu          sync.Mutex
	state       models.ServerStatus
	subscribers []func(models.ServerStatus)

	stopOnce sync.Once
	stopped  chan struct{}
}

func New(c client.Client, interval time.Duration) *Monitor {
	return &Monitor{
		client:   c,
		interval: interval,
		exit:     os.Exit,
		state:    models.StatusUnknown,
		stopped:  make(chan struct{}),
	}
}

// Subscribe registers a callback invoked after every completed poll with
// the new state. Must be called before Run.
func (m *Monitor) Subscribe(fn func(models.ServerStatus)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

// State returns the most recent poll result, or StatusUnknown before the
// first poll completes.
func (m *Monitor) State() models.ServerStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Run polls immediately and then on every tick until ctx is cancelled or
// a SHUTDOWN status is observed. Polls run on this goroutine, so two
// ticks can never interleave; a poll that outlasts the interval makes
// the ticker drop ticks rather than queue them.
func (m *Monitor) Run(ctx context.Context) {
	m.poll(ctx)

	t := time.NewTicker(m.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stopped:
			return
		case <-t.C:
			m.poll(ctx)
		}
	}
}

func (m *Monitor) poll(ctx context.Context) {
	status, err := m.client.Status(ctx)
	if err != nil {
		// ERROR is synthesized locally: "could not determine" rather
		// than "server said so".
		logger.Log.Debug("status poll failed", zap.Error(err))
		status = models.StatusError
	}

	if status == models.StatusShutdown {
		logger.Log.Info("server commanded shutdown, exiting")
		m.stopOnce.Do(func() { close(m.stopped) })
		m.exit(0)
		return
	}

	m.mu.Lock()
	m.state = status
	subscribers := m.subscribers
	m.mu.Unlock()

	for _, fn := range subscribers {
		fn(status)
	}
}
