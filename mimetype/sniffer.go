package mimetype

import (
	"github.com/fwojciec/curate"
	"github.com/gabriel-vasile/mimetype"
)

// Ensure Sniffer implements curate.ContentSniffer at compile time.
var _ curate.ContentSniffer = (*Sniffer)(nil)

// Sniffer detects content types from magic numbers and markup signatures.
type Sniffer struct{}

// NewSniffer creates a new Sniffer.
func NewSniffer() *Sniffer {
	return &Sniffer{}
}

// Sniff returns the detected content type of data. Unrecognized data is
// reported as application/octet-stream.
func (s *Sniffer) Sniff(data []byte) string {
	return mimetype.Detect(data).String()
}
