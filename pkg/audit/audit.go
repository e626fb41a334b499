package audit

import (
	"fmt"
	"sync"
)

var (
	globalWriter Writer = NopWriter{}
	globalMu     sync.RWMutex
	enabled      bool
)

// Init installs w as the process-wide audit writer. A nil writer disables
// auditing.
func Init(w Writer) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if w == nil {
		globalWriter = NopWriter{}
		enabled = false
		return nil
	}

	globalWriter = w
	enabled = true
	return nil
}

// InitFile initializes auditing to a hash-chained JSONL file.
// An empty path disables auditing.
func InitFile(path string) error {
	if path == "" {
		return Init(nil)
	}

	w, err := NewFileWriter(path)
	if err != nil {
		return err
	}

	return Init(w)
}

// Close closes the global audit writer and disables auditing.
func Close() error {
	globalMu.Lock()
	defer globalMu.Unlock()

	err := globalWriter.Close()
	globalWriter = NopWriter{}
	enabled = false
	return err
}

// Enabled returns whether audit logging is active.
func Enabled() bool {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return enabled
}

// Log writes an audit event to the global writer.
func Log(event *Event) error {
	globalMu.RLock()
	w := globalWriter
	globalMu.RUnlock()

	return w.Write(event)
}

// MustLog is Log with an error suitable for failing the parent operation.
//
//	if err := audit.MustLog(event); err != nil {
//	    return err
//	}
func MustLog(event *Event) error {
	if err := Log(event); err != nil {
		return fmt.Errorf("audit log failed: %w", err)
	}
	return nil
}

func resultOf(success bool) Result {
	if success {
		return ResultSuccess
	}
	return ResultFailure
}

// LogServerStarted logs the lookup API starting to listen.
func LogServerStarted(addr, table string) error {
	event := NewServiceEvent(EventServerStarted, ResultSuccess).
		WithObject(Object{Type: "server", Name: addr}).
		WithContext(Context{Table: table})

	return MustLog(event)
}

// LogServerStopped logs the lookup API shutting down. reason is empty on a
// clean shutdown.
func LogServerStopped(addr, reason string) error {
	event := NewServiceEvent(EventServerStopped, resultOf(reason == "")).
		WithObject(Object{Type: "server", Name: addr}).
		WithContext(Context{Reason: reason})

	return MustLog(event)
}

// LogTableExported logs a table dump written by the CLI.
func LogTableExported(table, format, path string, entries int) error {
	event := NewEvent(EventTableExported, ResultSuccess).
		WithObject(Object{Type: "table", Name: table, Path: path}).
		WithContext(Context{Table: table, Format: format, Entries: entries})

	return MustLog(event)
}

// LogTablesGenerated logs a generator run over a registry directory.
func LogTablesGenerated(registryDir, outDir string, sources, entries int, success bool, reason string) error {
	event := NewEvent(EventTablesGenerated, resultOf(success)).
		WithObject(Object{Type: "registry", Path: registryDir}).
		WithContext(Context{
			Output:  outDir,
			Sources: sources,
			Entries: entries,
			Reason:  reason,
		})

	return MustLog(event)
}
