// Package quotes rotates through a blank-line separated corpus of
// quotes without repeating an entry until the reader approves starting
// over, and throttles how often one may be requested.
package quotes

import (
	"math/rand/v2"
	"os"
	"strings"
	"time"
)

// Result describes the outcome of a quote request.
type Result int

const (
	// ResultQuote carries a fresh quote.
	ResultQuote Result = iota
	// ResultRateLimited means the request exceeded the window.
	ResultRateLimited
	// ResultNoQuotes means the corpus is missing or empty.
	ResultNoQuotes
	// ResultRestartPrompt means every entry has been shown and the
	// reader must decide whether to start over.
	ResultRestartPrompt
	// ResultDepleted means the reader declined a restart and the
	// corpus has not grown since.
	ResultDepleted
)

// Library serves quotes from a file, tracking which entries have been
// shown. The file is re-read lazily whenever its mtime changes, so
// edits land without a restart.
type Library struct {
	path      string
	limiter   *Limiter
	entries   []string
	shown     map[string]struct{}
	exhausted bool
	mtime     time.Time
	loaded    bool
	pick      func(n int) int
}

func NewLibrary(path string, limiter *Limiter) *Library {
	return &Library{
		path:    path,
		limiter: limiter,
		shown:   make(map[string]struct{}),
		pick:    rand.IntN,
	}
}

// Request runs the quote flow for one user request. force skips the
// throttle check once while still recording the request against the
// window.
func (l *Library) Request(now time.Time, force bool) (Result, string) {
	if !force && !l.limiter.Allowed(now) {
		return ResultRateLimited, ""
	}
	l.limiter.Record(now)
	l.reload()
	if len(l.entries) == 0 {
		return ResultNoQuotes, ""
	}
	unseen := l.unseen()
	if len(unseen) == 0 {
		if l.exhausted {
			return ResultDepleted, ""
		}
		return ResultRestartPrompt, ""
	}
	quote := unseen[l.pick(len(unseen))]
	l.shown[quote] = struct{}{}
	return ResultQuote, quote
}

// Reset clears the shown set so the rotation starts over from the full
// corpus.
func (l *Library) Reset() {
	l.shown = make(map[string]struct{})
	l.exhausted = false
}

// Decline marks the library depleted after the reader refused to start
// over. The flag clears when the corpus gains an unseen entry.
func (l *Library) Decline() {
	l.exhausted = true
}

func (l *Library) unseen() []string {
	out := make([]string, 0, len(l.entries))
	for _, q := range l.entries {
		if _, ok := l.shown[q]; !ok {
			out = append(out, q)
		}
	}
	return out
}

func (l *Library) reload() {
	info, err := os.Stat(l.path)
	if err != nil {
		l.entries = nil
		return
	}
	if l.loaded && info.ModTime().Equal(l.mtime) {
		return
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return
	}
	l.entries = ParseCorpus(string(data))
	l.mtime = info.ModTime()
	l.loaded = true
	for _, q := range l.entries {
		if _, ok := l.shown[q]; !ok {
			l.exhausted = false
			break
		}
	}
}

// ParseCorpus splits a corpus blob into entries. Entries are separated
// by blank lines; surrounding whitespace is trimmed and empty chunks
// are dropped.
func ParseCorpus(text string) []string {
	parts := strings.Split(text, "\n\n")
	entries := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}
	return entries
}
