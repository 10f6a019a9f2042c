package tui

import "github.com/MKhiriev/go-exam-drafts/models"

type cursorLoadedMsg struct {
	index int
}

// draftLoadedMsg carries the texts of one problem. seq identifies the load
// that produced it; results of superseded loads are dropped.
type draftLoadedMsg struct {
	seq   int
	code  string
	input string
	err   error
}

type pushDoneMsg struct {
	key models.ArtifactKey
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
