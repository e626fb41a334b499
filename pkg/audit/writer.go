package audit

// Writer persists audit events.
//
// Write chains the event onto the log by setting HashPrev and Hash, and
// returns an error unless the event is durable. A failed Write fails the
// command or server operation that produced the event.
type Writer interface {
	Write(event *Event) error
	Close() error
	// LastHash is GenesisHash on an empty log.
	LastHash() string
}

// NopWriter is the global writer while no audit log is configured.
type NopWriter struct{}

var _ Writer = NopWriter{}

func (NopWriter) Write(*Event) error { return nil }
func (NopWriter) Close() error       { return nil }
func (NopWriter) LastHash() string   { return GenesisHash }
