package export

import (
	"listkeeper/pkg/log"
)

// Renderer produces list downloads in CSV, TXT and PDF form.
type Renderer struct {
	l         log.Logger
	chromeBin string
}

// New creates a Renderer. chromeBin optionally pins the Chromium binary used
// for PDF rendering; empty means the launcher's default resolution.
func New(l log.Logger, chromeBin string) *Renderer {
	return &Renderer{l: l, chromeBin: chromeBin}
}
