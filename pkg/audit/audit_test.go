package audit

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// =============================================================================
// Event Tests
// =============================================================================

func TestU_NewEvent_Creation(t *testing.T) {
	event := NewEvent(EventTableExported, ResultSuccess)

	if event.EventType != EventTableExported {
		t.Errorf("expected EventType=%s, got %s", EventTableExported, event.EventType)
	}
	if event.Result != ResultSuccess {
		t.Errorf("expected Result=%s, got %s", ResultSuccess, event.Result)
	}
	if event.Timestamp == "" {
		t.Error("Timestamp should not be empty")
	}
	if event.Actor.Type != ActorUser {
		t.Errorf("expected Actor.Type=user, got %s", event.Actor.Type)
	}
}

func TestU_NewServiceEvent(t *testing.T) {
	t.Setenv("USER", "qoid")

	event := NewServiceEvent(EventServerStarted, ResultSuccess)
	if event.Actor.Type != ActorService || event.Actor.ID != "qoid" {
		t.Errorf("Actor = %+v, want service qoid", event.Actor)
	}
	if err := event.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestU_NewEvent_UnknownUser(t *testing.T) {
	t.Setenv("USER", "")
	t.Setenv("USERNAME", "")

	if got := NewEvent(EventServerStarted, ResultSuccess).Actor.ID; got != "unknown" {
		t.Errorf("Actor.ID = %q, want unknown", got)
	}
}

func TestU_Event_Validate(t *testing.T) {
	tests := []struct {
		name    string
		event   *Event
		wantErr bool
	}{
		{
			name:    "[Unit] Validate: valid event",
			event:   NewEvent(EventTableExported, ResultSuccess),
			wantErr: false,
		},
		{
			name: "[Unit] Validate: missing event_type",
			event: &Event{
				Timestamp: "2026-01-15T10:00:00Z",
				Actor:     Actor{Type: "user", ID: "admin"},
				Result:    ResultSuccess,
			},
			wantErr: true,
		},
		{
			name: "[Unit] Validate: missing timestamp",
			event: &Event{
				EventType: EventTableExported,
				Actor:     Actor{Type: "user", ID: "admin"},
				Result:    ResultSuccess,
			},
			wantErr: true,
		},
		{
			name: "[Unit] Validate: missing actor",
			event: &Event{
				EventType: EventTableExported,
				Timestamp: "2026-01-15T10:00:00Z",
				Result:    ResultSuccess,
			},
			wantErr: true,
		},
		{
			name: "[Unit] Validate: missing result",
			event: &Event{
				EventType: EventTableExported,
				Timestamp: "2026-01-15T10:00:00Z",
				Actor:     Actor{Type: "user", ID: "admin"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidEvent) {
				t.Errorf("Validate() error = %v, want ErrInvalidEvent", err)
			}
		})
	}
}

func TestU_Event_CanonicalJSON(t *testing.T) {
	event := NewEvent(EventTableExported, ResultSuccess).
		WithObject(Object{Type: "table", Name: "attr"})
	event.HashPrev = GenesisHash
	event.Hash = "sha256:ignored"

	canonical, err := event.CanonicalJSON()
	if err != nil {
		t.Fatalf("CanonicalJSON() error = %v", err)
	}

	if strings.Contains(string(canonical), `"hash":`) {
		t.Error("CanonicalJSON should not contain hash field")
	}

	var parsed map[string]any
	if err := json.Unmarshal(canonical, &parsed); err != nil {
		t.Errorf("CanonicalJSON produced invalid JSON: %v", err)
	}
	if parsed["hash_prev"] != GenesisHash {
		t.Errorf("hash_prev = %v", parsed["hash_prev"])
	}
}

// =============================================================================
// FileWriter Tests
// =============================================================================

func TestU_FileWriter_Write(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.jsonl")

	writer, err := NewFileWriter(logPath)
	if err != nil {
		t.Fatalf("NewFileWriter() error = %v", err)
	}
	defer func() { _ = writer.Close() }()

	event1 := NewEvent(EventServerStarted, ResultSuccess).
		WithObject(Object{Type: "server", Name: "127.0.0.1:8443"})
	if err := writer.Write(event1); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if event1.HashPrev != GenesisHash {
		t.Errorf("First event HashPrev = %s, want %s", event1.HashPrev, GenesisHash)
	}
	if !strings.HasPrefix(event1.Hash, HashPrefix) {
		t.Errorf("First event Hash should start with %s, got %s", HashPrefix, event1.Hash)
	}

	event2 := NewEvent(EventServerStopped, ResultSuccess)
	if err := writer.Write(event2); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if event2.HashPrev != event1.Hash {
		t.Errorf("Second event HashPrev = %s, want %s", event2.HashPrev, event1.Hash)
	}
	if writer.LastHash() != event2.Hash {
		t.Errorf("LastHash() = %s, want %s", writer.LastHash(), event2.Hash)
	}

	_ = writer.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Errorf("Expected 2 lines, got %d", len(lines))
	}
}

func TestU_FileWriter_Append(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.jsonl")

	writer1, err := NewFileWriter(logPath)
	if err != nil {
		t.Fatalf("NewFileWriter() error = %v", err)
	}
	event1 := NewEvent(EventTablesGenerated, ResultSuccess)
	if err := writer1.Write(event1); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	_ = writer1.Close()

	writer2, err := NewFileWriter(logPath)
	if err != nil {
		t.Fatalf("NewFileWriter() error = %v", err)
	}
	defer func() { _ = writer2.Close() }()

	if writer2.LastHash() != event1.Hash {
		t.Errorf("LastHash() = %s, want %s", writer2.LastHash(), event1.Hash)
	}

	event2 := NewEvent(EventTableExported, ResultSuccess)
	if err := writer2.Write(event2); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if event2.HashPrev != event1.Hash {
		t.Errorf("Event2 HashPrev = %s, want %s", event2.HashPrev, event1.Hash)
	}
}

func TestU_FileWriter_WriteAfterClose(t *testing.T) {
	writer, err := NewFileWriter(filepath.Join(t.TempDir(), "audit.jsonl"))
	if err != nil {
		t.Fatalf("NewFileWriter() error = %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := writer.Write(NewEvent(EventTableExported, ResultSuccess)); err == nil {
		t.Error("Write() after Close should fail")
	}
}

func TestU_FileWriter_InvalidEvent(t *testing.T) {
	writer, err := NewFileWriter(filepath.Join(t.TempDir(), "audit.jsonl"))
	if err != nil {
		t.Fatalf("NewFileWriter() error = %v", err)
	}
	defer func() { _ = writer.Close() }()

	if err := writer.Write(&Event{}); err == nil {
		t.Error("Write() should reject an invalid event")
	}
	if writer.LastHash() != GenesisHash {
		t.Error("rejected event must not advance the chain")
	}
}

func TestU_FileWriter_InvalidPath(t *testing.T) {
	if _, err := NewFileWriter(filepath.Join(t.TempDir(), "missing", "audit.jsonl")); err == nil {
		t.Error("NewFileWriter() should fail for a missing directory")
	}
}

func TestU_FileWriter_CorruptTail(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.jsonl")
	if err := os.WriteFile(logPath, []byte("{not json\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileWriter(logPath); err == nil {
		t.Error("NewFileWriter() should refuse to continue a corrupt log")
	}

	if err := os.WriteFile(logPath, []byte(`{"event_type":"X"}`+"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileWriter(logPath); err == nil {
		t.Error("NewFileWriter() should refuse a last event without hash")
	}
}

func TestU_FileWriter_ConcurrentWrites(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.jsonl")
	writer, err := NewFileWriter(logPath)
	if err != nil {
		t.Fatalf("NewFileWriter() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = writer.Write(NewEvent(EventTableExported, ResultSuccess))
		}()
	}
	wg.Wait()
	_ = writer.Close()

	count, err := VerifyChain(logPath)
	if err != nil {
		t.Fatalf("VerifyChain() error = %v", err)
	}
	if count != 10 {
		t.Errorf("VerifyChain() count = %d, want 10", count)
	}
}

// =============================================================================
// VerifyChain Tests
// =============================================================================

func writeEvents(t *testing.T, path string, n int) {
	t.Helper()
	writer, err := NewFileWriter(path)
	if err != nil {
		t.Fatalf("NewFileWriter() error = %v", err)
	}
	for i := 0; i < n; i++ {
		event := NewEvent(EventTableExported, ResultSuccess).
			WithContext(Context{Table: "all", Entries: i + 1})
		if err := writer.Write(event); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}
	_ = writer.Close()
}

func TestU_VerifyChain_ValidLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.jsonl")
	writeEvents(t, logPath, 5)

	count, err := VerifyChain(logPath)
	if err != nil {
		t.Errorf("VerifyChain() error = %v", err)
	}
	if count != 5 {
		t.Errorf("VerifyChain() count = %d, want 5", count)
	}
}

func TestU_VerifyChain_Tampering(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.jsonl")
	writeEvents(t, logPath, 3)

	data, _ := os.ReadFile(logPath)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")

	var event Event
	_ = json.Unmarshal([]byte(lines[1]), &event)
	event.Context.Table = "TAMPERED"
	tamperedLine, _ := event.JSON()
	lines[1] = string(tamperedLine)
	_ = os.WriteFile(logPath, []byte(strings.Join(lines, "\n")+"\n"), 0644)

	count, err := VerifyChain(logPath)
	if !errors.Is(err, ErrChainBroken) {
		t.Errorf("VerifyChain() error = %v, want ErrChainBroken", err)
	}
	if count != 1 {
		t.Errorf("VerifyChain() count = %d, want 1 (events before tampering)", count)
	}
}

func TestU_VerifyChain_DeletedEvent(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.jsonl")
	writeEvents(t, logPath, 3)

	data, _ := os.ReadFile(logPath)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	_ = os.WriteFile(logPath, []byte(lines[0]+"\n"+lines[2]+"\n"), 0644)

	count, err := VerifyChain(logPath)
	if !errors.Is(err, ErrChainBroken) {
		t.Errorf("VerifyChain() error = %v, want ErrChainBroken", err)
	}
	if count != 1 {
		t.Errorf("VerifyChain() count = %d, want 1", count)
	}
}

func TestU_VerifyChain_EdgeCases(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.jsonl")
	_ = os.WriteFile(empty, nil, 0600)
	if count, err := VerifyChain(empty); err != nil || count != 0 {
		t.Errorf("VerifyChain(empty) = %d, %v", count, err)
	}

	if _, err := VerifyChain(filepath.Join(dir, "missing.jsonl")); err == nil {
		t.Error("VerifyChain() should fail for a missing file")
	}

	bad := filepath.Join(dir, "bad.jsonl")
	_ = os.WriteFile(bad, []byte("not json\n"), 0600)
	if _, err := VerifyChain(bad); err == nil {
		t.Error("VerifyChain() should fail on invalid JSON")
	}

	blank := filepath.Join(dir, "blank.jsonl")
	writeEvents(t, blank, 2)
	data, _ := os.ReadFile(blank)
	_ = os.WriteFile(blank, append([]byte("\n   \n"), data...), 0600)
	if count, err := VerifyChain(blank); err != nil || count != 2 {
		t.Errorf("VerifyChain(blank lines) = %d, %v", count, err)
	}
}

// =============================================================================
// Tail Tests
// =============================================================================

func TestU_Tail(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.jsonl")
	writeEvents(t, logPath, 5)

	events, err := Tail(logPath, 2)
	if err != nil {
		t.Fatalf("Tail() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("Tail() returned %d events, want 2", len(events))
	}
	if events[0].Context.Entries != 4 || events[1].Context.Entries != 5 {
		t.Errorf("Tail() returned entries %d, %d; want 4, 5", events[0].Context.Entries, events[1].Context.Entries)
	}

	all, err := Tail(logPath, 100)
	if err != nil || len(all) != 5 {
		t.Errorf("Tail(100) = %d events, %v", len(all), err)
	}
}

// =============================================================================
// Writer Tests
// =============================================================================

type failingWriter struct{ NopWriter }

func (failingWriter) Write(*Event) error { return errors.New("disk full") }

func TestU_NopWriter(t *testing.T) {
	var w NopWriter
	if err := w.Write(NewEvent(EventTableExported, ResultSuccess)); err != nil {
		t.Errorf("NopWriter.Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("NopWriter.Close() error = %v", err)
	}
	if w.LastHash() != GenesisHash {
		t.Errorf("NopWriter.LastHash() = %s, want %s", w.LastHash(), GenesisHash)
	}
}

// =============================================================================
// Global Audit Tests
// =============================================================================

func TestU_GlobalAudit_InitAndLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.jsonl")

	if err := InitFile(logPath); err != nil {
		t.Fatalf("InitFile() error = %v", err)
	}
	if !Enabled() {
		t.Error("Enabled() should return true after InitFile")
	}

	if err := LogServerStarted("127.0.0.1:8443", "all"); err != nil {
		t.Errorf("LogServerStarted() error = %v", err)
	}
	if err := LogTableExported("attr", "cbor", "/tmp/attr.cbor", 103); err != nil {
		t.Errorf("LogTableExported() error = %v", err)
	}
	if err := LogTablesGenerated("registry", "pkg/oiddb", 11, 198, true, ""); err != nil {
		t.Errorf("LogTablesGenerated() error = %v", err)
	}
	if err := LogServerStopped("127.0.0.1:8443", "listen tcp: address in use"); err != nil {
		t.Errorf("LogServerStopped() error = %v", err)
	}

	if err := Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if Enabled() {
		t.Error("Enabled() should return false after Close")
	}

	count, err := VerifyChain(logPath)
	if err != nil {
		t.Errorf("VerifyChain() error = %v", err)
	}
	if count != 4 {
		t.Errorf("VerifyChain() count = %d, want 4", count)
	}

	events, err := Tail(logPath, -1)
	if err != nil {
		t.Fatalf("Tail() error = %v", err)
	}
	want := []struct {
		typ    EventType
		result Result
		actor  string
	}{
		{EventServerStarted, ResultSuccess, "service"},
		{EventTableExported, ResultSuccess, "user"},
		{EventTablesGenerated, ResultSuccess, "user"},
		{EventServerStopped, ResultFailure, "service"},
	}
	for i, w := range want {
		if events[i].EventType != w.typ || events[i].Result != w.result || events[i].Actor.Type != w.actor {
			t.Errorf("event %d = %s/%s/%s, want %s/%s/%s", i,
				events[i].EventType, events[i].Result, events[i].Actor.Type, w.typ, w.result, w.actor)
		}
	}
	if events[1].Context.Format != "cbor" || events[1].Context.Entries != 103 {
		t.Errorf("export context = %+v", events[1].Context)
	}
	if events[2].Context.Output != "pkg/oiddb" || events[2].Context.Sources != 11 {
		t.Errorf("generate context = %+v", events[2].Context)
	}
}

func TestU_GlobalAudit_Disabled(t *testing.T) {
	if err := InitFile(""); err != nil {
		t.Fatalf("InitFile(\"\") error = %v", err)
	}
	if Enabled() {
		t.Error("empty path should disable auditing")
	}
	if err := LogTableExported("all", "json", "", 1); err != nil {
		t.Errorf("logging while disabled should succeed, got %v", err)
	}
	if err := Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestU_MustLog_Error(t *testing.T) {
	if err := Init(failingWriter{}); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = Init(nil) }()

	err := MustLog(NewEvent(EventTableExported, ResultSuccess))
	if err == nil || !strings.Contains(err.Error(), "audit log failed") {
		t.Errorf("MustLog() error = %v", err)
	}
}
