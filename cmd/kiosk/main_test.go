package main

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disco-express/kiosk/internal/client"
	"github.com/disco-express/kiosk/internal/config"
	"github.com/disco-express/kiosk/internal/pipeline"
)

// fakeJukebox is a minimal request server covering the endpoints the
// kiosk talks to.
type fakeJukebox struct {
	reject   atomic.Value // string; empty means accept
	received atomic.Int64
}

func (f *fakeJukebox) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/status/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "OK"}`))
	})
	mux.HandleFunc("/music_wish/", func(w http.ResponseWriter, r *http.Request) {
		if msg, _ := f.reject.Load().(string); msg != "" {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error": "` + msg + `"}`))
			return
		}
		f.received.Add(1)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/documents/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	return mux
}

func newTestApp(t *testing.T) (*app, *fakeJukebox) {
	t.Helper()

	fake := &fakeJukebox{}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	host, portStr, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	dir := t.TempDir()
	slurs := filepath.Join(dir, "slurs.txt")
	require.NoError(t, os.WriteFile(slurs, []byte("badword\n"), 0o644))

	cfg := config.Config{
		ServerAddress:    host,
		ServerPort:       port,
		ChartsFile:       filepath.Join(dir, "charts.csv"),
		SlursFile:        slurs,
		DocumentsDir:     filepath.Join(dir, "documents"),
		StatusInterval:   time.Minute,
		DocumentInterval: time.Minute,
		RequestTimeout:   5 * time.Second,
	}

	appInstance, err := newApp(cfg, client.New(cfg.ServerAddress, cfg.ServerPort, cfg.RequestTimeout))
	require.NoError(t, err)
	return appInstance, fake
}

func TestAppSubmitAndCharts(t *testing.T) {
	appInstance, fake := newTestApp(t)
	ctx := context.Background()

	form := pipeline.FormValues{Title: "Bohemian Rhapsody", Artist: "Queen"}
	require.NoError(t, appInstance.Submit(ctx, form))
	require.NoError(t, appInstance.Submit(ctx, form))

	assert.Equal(t, int64(2), fake.received.Load())

	list := appInstance.Charts()
	require.Len(t, list, 1)
	assert.Equal(t, "Bohemian Rhapsody", list[0].Title)
	assert.Equal(t, 2, list[0].Plays)
}

func TestAppSubmitRejected(t *testing.T) {
	appInstance, fake := newTestApp(t)
	fake.reject.Store("unavailable")

	err := appInstance.Submit(context.Background(), pipeline.FormValues{Title: "x", Artist: "y"})

	var serr *pipeline.SubmitError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, pipeline.KindDJUnavailable, serr.Kind)
	assert.Empty(t, appInstance.Charts())
}

func TestAppSubmitModerated(t *testing.T) {
	appInstance, fake := newTestApp(t)

	err := appInstance.Submit(context.Background(), pipeline.FormValues{
		Title:  "Bohemian Rhapsody",
		Artist: "Queen",
		Sender: "some badword here",
	})

	var serr *pipeline.SubmitError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, pipeline.KindModeration, serr.Kind)
	assert.Equal(t, int64(0), fake.received.Load(), "no network call on moderation failure")
}
