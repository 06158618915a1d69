package emojidom

import "errors"

var (
	// ErrStarted is returned by Start on an engine that is already running.
	ErrStarted = errors.New("emojidom: engine already started")

	// ErrClosed is returned by Start on a closed engine.
	ErrClosed = errors.New("emojidom: engine closed")
)
