package tui

import (
	"github.com/MKhiriev/go-transcript-keeper/models"
)

// opDoneMsg reports a finished controller call. The banner already shows
// the outcome; the model only refreshes its snapshot.
type opDoneMsg struct {
	op  string
	err error
}

type statusMsg models.Status

type revisionTickMsg struct{}
