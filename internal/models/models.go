package models

// ServerStatus is the availability state reported by the jukebox server,
// plus the locally synthesized values Unknown and Error.
type ServerStatus string

const (
	// StatusUnknown is the state before the first poll completes.
	StatusUnknown ServerStatus = ""
	// StatusOK means the server accepts music requests.
	StatusOK ServerStatus = "OK"
	// StatusUnavailable means the server is up but not taking requests.
	StatusUnavailable ServerStatus = "UNAVAILABLE"
	// StatusShutdown commands the kiosk to terminate.
	StatusShutdown ServerStatus = "SHUTDOWN"
	// StatusError is synthesized locally when a poll fails; the server
	// never reports it.
	StatusError ServerStatus = "ERROR"
)

// Song is one charts entry.
type Song struct {
	Title  string
	Artist string
	Plays  int
}

// MusicRequest is the schema of a music request sent to the server.
// The server calls the artist field "interpret".
type MusicRequest struct {
	Title     string `json:"title"`
	Interpret string `json:"interpret"`
	Sender    string `json:"sender,omitempty"`
	Receiver  string `json:"receiver,omitempty"`
	Message   string `json:"message,omitempty"`
}

// JukeBoxError is a structured rejection from the server: a non-2xx
// response that still carried a machine-readable error payload.
type JukeBoxError struct {
	Status int
	Error  string
}

// BannerSchema holds the banner texts served under /banner/.
type BannerSchema struct {
	German  string `json:"german"`
	English string `json:"english"`
}
