package build

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/phpx-labs/cargo-php/internal/project"
)

// ErrMalformedEvent is returned when a line on cargo's stdout is not a valid
// JSON message.
var ErrMalformedEvent = errors.New("invalid message received from `cargo build`")

// Message reasons emitted by cargo that the driver acts on.
const (
	ReasonCompilerArtifact = "compiler-artifact"
	ReasonBuildFinished    = "build-finished"
)

// Kind classifies an Event.
type Kind int

const (
	KindOther Kind = iota
	KindArtifact
	KindFinished
)

// Event is one message from `cargo build --message-format=json`.
type Event struct {
	Kind   Kind
	Reason string
	// Artifact is set for KindArtifact.
	Artifact *Artifact
	// Success is meaningful for KindFinished.
	Success bool
}

// Artifact describes the files cargo produced for one target.
type Artifact struct {
	PackageID string
	Target    project.Target
	Filenames []string
}

type wireMessage struct {
	Reason    *string         `json:"reason"`
	PackageID string          `json:"package_id"`
	Target    *project.Target `json:"target"`
	Filenames []string        `json:"filenames"`
	Success   *bool           `json:"success"`
}

// ParseEvent decodes a single JSON message line.
func ParseEvent(line []byte) (Event, error) {
	var msg wireMessage
	if err := json.Unmarshal(line, &msg); err != nil {
		return Event{}, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	if msg.Reason == nil {
		return Event{}, fmt.Errorf("%w: message has no reason", ErrMalformedEvent)
	}

	ev := Event{Reason: *msg.Reason}
	switch ev.Reason {
	case ReasonCompilerArtifact:
		if msg.Target == nil {
			return Event{}, fmt.Errorf("%w: compiler-artifact without target", ErrMalformedEvent)
		}
		ev.Kind = KindArtifact
		ev.Artifact = &Artifact{
			PackageID: msg.PackageID,
			Target:    *msg.Target,
			Filenames: msg.Filenames,
		}
	case ReasonBuildFinished:
		if msg.Success == nil {
			return Event{}, fmt.Errorf("%w: build-finished without success flag", ErrMalformedEvent)
		}
		ev.Kind = KindFinished
		ev.Success = *msg.Success
	}
	return ev, nil
}

// maxMessageSize bounds a single JSON line. Rendered diagnostics for large
// crates can exceed bufio's default 64KiB.
const maxMessageSize = 16 << 20

// Events returns a single-pass sequence of the messages read from r. The
// sequence ends at EOF or after yielding the first error.
func Events(r io.Reader) iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxMessageSize)
		for scanner.Scan() {
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}
			ev, err := ParseEvent(line)
			if err != nil {
				yield(Event{}, err)
				return
			}
			if !yield(ev, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(Event{}, fmt.Errorf("reading `cargo build` output: %w", err))
		}
	}
}
