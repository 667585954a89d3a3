// Package charts maintains the persistent play-count leaderboard of
// requested songs.
package charts

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/disco-express/kiosk/internal/logger"
	"github.com/disco-express/kiosk/internal/models"
)

var header = []string{"Title", "Artist", "Plays"}

// Manager owns the charts table. All mutations are serialized; every
// mutation rewrites the backing file in full so the file always matches
// the in-memory table.
type Manager struct {
	mu        sync.Mutex
	file      string
	threshold int
	songs     []models.Song
}

// NewManager loads the charts from file if it exists, otherwise starts
// empty. threshold is the minimum play count required to appear in List.
func NewManager(file string, threshold int) (*Manager, error) {
	m := &Manager{file: file, threshold: threshold}

	if _, err := os.Stat(file); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m, nil
		}
		return nil, fmt.Errorf("checking charts file: %w", err)
	}

	if err := m.load(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) load() error {
	f, err := os.Open(m.file)
	if err != nil {
		return fmt.Errorf("opening charts file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	rows, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("parsing charts file %s: %w", m.file, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("charts file %s: missing header row", m.file)
	}

	for i, row := range rows[1:] {
		if len(row) != len(header) {
			return fmt.Errorf("charts file %s: row %d has %d fields, want %d", m.file, i+2, len(row), len(header))
		}
		plays, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil || plays < 0 {
			return fmt.Errorf("charts file %s: row %d has invalid play count %q", m.file, i+2, row[2])
		}
		m.songs = append(m.songs, models.Song{Title: row[0], Artist: row[1], Plays: plays})
	}

	logger.Log.Debug("charts loaded", zap.Int("songs", len(m.songs)))
	return nil
}

// List returns the songs at or above the configured threshold, sorted
// descending by plays; ties keep their original row order. The slice is
// computed fresh on every call.
func (m *Manager) List() []models.Song {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Song, 0, len(m.songs))
	for _, song := range m.songs {
		if song.Plays >= m.threshold {
			out = append(out, song)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Plays > out[j].Plays
	})
	return out
}

// AddSong records one play. If an existing row's normalized title and
// artist both contain the incoming ones as substrings, that row's count
// is incremented (first match wins); otherwise a new row is appended
// with a count of 1. The table is persisted either way. On a write
// failure the in-memory table keeps the mutation and stays authoritative
// for the session.
func (m *Manager) AddSong(song models.Song) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	title := normalize(song.Title)
	artist := normalize(song.Artist)

	merged := false
	for i := range m.songs {
		if strings.Contains(normalize(m.songs[i].Title), title) &&
			strings.Contains(normalize(m.songs[i].Artist), artist) {
			m.songs[i].Plays++
			merged = true
			break
		}
	}
	if !merged {
		m.songs = append(m.songs, models.Song{Title: song.Title, Artist: song.Artist, Plays: 1})
	}

	return m.persist()
}

// persist rewrites the backing file in full. Callers must hold mu.
func (m *Manager) persist() error {
	f, err := os.Create(m.file)
	if err != nil {
		return fmt.Errorf("writing charts file: %w", err)
	}

	w := csv.NewWriter(f)
	w.Comma = ';'

	records := [][]string{header}
	for _, song := range m.songs {
		records = append(records, []string{song.Title, song.Artist, strconv.Itoa(song.Plays)})
	}
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("writing charts file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing charts file: %w", err)
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// LoadSongsFromCSV reads a read-only song catalogue in the same
// semicolon-delimited format. The plays column is optional and defaults
// to zero. Used for the classics and radio lists shown next to the
// charts.
func LoadSongsFromCSV(path string) ([]models.Song, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening song list: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing song list %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var songs []models.Song
	for i, row := range rows[1:] {
		if len(row) < 2 {
			return nil, fmt.Errorf("song list %s: row %d has %d fields, want at least 2", path, i+2, len(row))
		}
		song := models.Song{Title: row[0], Artist: row[1]}
		if len(row) > 2 {
			plays, err := strconv.Atoi(strings.TrimSpace(row[2]))
			if err != nil {
				return nil, fmt.Errorf("song list %s: row %d has invalid play count %q", path, i+2, row[2])
			}
			song.Plays = plays
		}
		songs = append(songs, song)
	}

	return songs, nil
}
