// Package audit keeps a hash-chained JSONL log of what the qoid tools did:
// server start and stop, table exports and table generation.
//
// The log is kept apart from request logging. Each line carries the SHA-256
// of the line before it, so VerifyChain detects edits and deletions. When an
// event cannot be written, the operation that produced it fails.
package audit

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrInvalidEvent is returned by Validate and by writers for incomplete events.
var ErrInvalidEvent = errors.New("invalid audit event")

// EventType names what happened.
type EventType string

const (
	EventServerStarted   EventType = "SERVER_STARTED"
	EventServerStopped   EventType = "SERVER_STOPPED"
	EventTableExported   EventType = "TABLE_EXPORTED"
	EventTablesGenerated EventType = "TABLES_GENERATED"
)

type Result string

const (
	ResultSuccess Result = "success"
	ResultFailure Result = "failure"
)

// Actor types.
const (
	ActorUser    = "user"
	ActorService = "service"
)

// Actor is the account and host an event was recorded on.
type Actor struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Host string `json:"host,omitempty"`
}

// Object is the server, table or registry an event is about. Name holds a
// table name or listen address, Path a file or directory.
type Object struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
	Path string `json:"path,omitempty"`
}

type Context struct {
	Table   string `json:"table,omitempty"`
	Format  string `json:"format,omitempty"`
	Output  string `json:"output,omitempty"`
	Entries int    `json:"entries,omitempty"`
	Sources int    `json:"sources,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// Event is one line of the audit log. Timestamp is RFC 3339 in UTC.
type Event struct {
	EventType EventType `json:"event_type"`
	Timestamp string    `json:"timestamp"`
	Actor     Actor     `json:"actor"`
	Object    Object    `json:"object"`
	Context   Context   `json:"context,omitempty"`
	Result    Result    `json:"result"`
	HashPrev  string    `json:"hash_prev"`
	Hash      string    `json:"hash"`
}

// NewEvent returns an event recorded now by the user running the process.
func NewEvent(eventType EventType, result Result) *Event {
	return newEvent(eventType, result, ActorUser)
}

// NewServiceEvent is NewEvent for events emitted by the lookup server.
func NewServiceEvent(eventType EventType, result Result) *Event {
	return newEvent(eventType, result, ActorService)
}

func newEvent(eventType EventType, result Result, actorType string) *Event {
	host, _ := os.Hostname()
	return &Event{
		EventType: eventType,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Actor:     Actor{Type: actorType, ID: currentUser(), Host: host},
		Result:    result,
	}
}

// currentUser reads USER, then USERNAME on Windows.
func currentUser() string {
	for _, env := range []string{"USER", "USERNAME"} {
		if u := os.Getenv(env); u != "" {
			return u
		}
	}
	return "unknown"
}

func (e *Event) WithObject(obj Object) *Event {
	e.Object = obj
	return e
}

func (e *Event) WithContext(ctx Context) *Event {
	e.Context = ctx
	return e
}

// Validate reports the first missing required field.
func (e *Event) Validate() error {
	var missing string
	switch {
	case e.EventType == "":
		missing = "event_type"
	case e.Timestamp == "":
		missing = "timestamp"
	case e.Actor.Type == "" || e.Actor.ID == "":
		missing = "actor"
	case e.Result == "":
		missing = "result"
	default:
		return nil
	}
	return fmt.Errorf("%w: %s is required", ErrInvalidEvent, missing)
}

// CanonicalJSON is the hashed form of the event: every field but Hash.
func (e *Event) CanonicalJSON() ([]byte, error) {
	return json.Marshal(struct {
		*Event
		Hash string `json:"hash,omitempty"` // shadows Event.Hash
	}{Event: e})
}

// JSON returns the event as written to the log.
func (e *Event) JSON() ([]byte, error) {
	return json.Marshal(e)
}
