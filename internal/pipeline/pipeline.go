// Package pipeline orchestrates a single music request submission:
// validate, moderate, send, record.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/disco-express/kiosk/internal/charts"
	"github.com/disco-express/kiosk/internal/client"
	"github.com/disco-express/kiosk/internal/logger"
	"github.com/disco-express/kiosk/internal/models"
	"github.com/disco-express/kiosk/internal/profanity"
)

// Kind classifies a failed submission so the UI can pick the right
// localized message. The language itself is an opaque lookup key owned
// by the UI layer.
type Kind int

const (
	KindMissingTitle Kind = iota
	KindMissingArtist
	KindModeration
	KindConnection
	KindDJUnavailable
	KindNetwork
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindMissingTitle:
		return "missing title"
	case KindMissingArtist:
		return "missing artist"
	case KindModeration:
		return "banned word"
	case KindConnection:
		return "server unreachable"
	case KindDJUnavailable:
		return "dj unavailable"
	case KindNetwork:
		return "request rejected"
	case KindPersistence:
		return "charts write failed"
	}
	return "unknown"
}

// SubmitError is a terminal, user-facing submission failure.
type SubmitError struct {
	Kind Kind
	// Text is the offending or rejected text, where one exists, for
	// message formatting.
	Text string
	Err  error
}

func (e *SubmitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	if e.Text != "" {
		return fmt.Sprintf("%s: %q", e.Kind, e.Text)
	}
	return e.Kind.String()
}

func (e *SubmitError) Unwrap() error { return e.Err }

// FormValues are the raw form fields of one submit action.
type FormValues struct {
	Title    string
	Artist   string
	Sender   string
	Receiver string
	Message  string
}

// Pipeline runs one submission at a time; the mutex mirrors the single
// submit button of the kiosk form.
type Pipeline struct {
	mu     sync.Mutex
	client client.Client
	filter *profanity.Filter
	charts *charts.Manager
}

func New(c client.Client, filter *profanity.Filter, manager *charts.Manager) *Pipeline {
	return &Pipeline{client: c, filter: filter, charts: manager}
}

// Submit validates the form, moderates it, sends the request, and on
// success records a play in the charts. Every failure is terminal for
// this submission and returned as a *SubmitError; nothing is retried.
// Rejected and failed submissions never touch the charts.
func (p *Pipeline) Submit(ctx context.Context, form FormValues) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if strings.TrimSpace(form.Title) == "" {
		return &SubmitError{Kind: KindMissingTitle}
	}
	if strings.TrimSpace(form.Artist) == "" {
		return &SubmitError{Kind: KindMissingArtist}
	}

	req := &models.MusicRequest{
		Title:     form.Title,
		Interpret: form.Artist,
		Sender:    form.Sender,
		Receiver:  form.Receiver,
		Message:   form.Message,
	}

	if match := p.filter.CheckRequest(req); match != nil {
		logger.Log.Info("banned word in request", zap.String("field", match.Field))
		return &SubmitError{Kind: KindModeration, Text: match.Text}
	}

	rejection, err := p.client.SendMusicRequest(ctx, req)
	if err != nil {
		logger.Log.Warn("cannot reach jukebox server", zap.Error(err))
		return &SubmitError{Kind: KindConnection, Err: err}
	}
	if rejection != nil {
		if rejection.Error == "unavailable" {
			return &SubmitError{Kind: KindDJUnavailable, Text: rejection.Error}
		}
		return &SubmitError{Kind: KindNetwork, Text: rejection.Error}
	}

	if err := p.charts.AddSong(models.Song{Title: form.Title, Artist: form.Artist}); err != nil {
		// The request was accepted; only the local charts write failed.
		// The in-memory table keeps the play, the kiosk keeps running.
		logger.Log.Error("charts update failed", zap.Error(err))
		return &SubmitError{Kind: KindPersistence, Err: err}
	}

	logger.Log.Info("music request sent",
		zap.String("title", form.Title),
		zap.String("artist", form.Artist))
	return nil
}
