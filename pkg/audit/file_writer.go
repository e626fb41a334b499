package audit

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

const (
	// GenesisHash is the hash_prev of the first event in a log.
	GenesisHash = "sha256:genesis"

	// HashPrefix is prepended to all hash values.
	HashPrefix = "sha256:"
)

// ErrChainBroken is returned by VerifyChain when the log was altered.
var ErrChainBroken = errors.New("audit hash chain broken")

// FileWriter appends events to a JSONL file with hash chaining.
type FileWriter struct {
	mu       sync.Mutex
	file     *os.File
	lastHash string
	path     string
}

var _ Writer = (*FileWriter)(nil)

// NewFileWriter opens path for appending. An existing log is continued from
// its last hash.
func NewFileWriter(path string) (*FileWriter, error) {
	lastHash := GenesisHash
	if data, err := os.ReadFile(path); err == nil && len(data) > 0 {
		hash, err := readLastHash(data)
		if err != nil {
			return nil, fmt.Errorf("failed to read last hash from existing log: %w", err)
		}
		lastHash = hash
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}

	return &FileWriter{
		file:     file,
		lastHash: lastHash,
		path:     path,
	}, nil
}

// nonEmptyLines returns the trimmed, non-blank lines of a JSONL log.
func nonEmptyLines(data []byte) ([][]byte, error) {
	var lines [][]byte
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) > 0 {
			lines = append(lines, append([]byte(nil), line...))
		}
	}
	return lines, scanner.Err()
}

func readLastHash(data []byte) (string, error) {
	lines, err := nonEmptyLines(data)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return GenesisHash, nil
	}

	var event struct {
		Hash string `json:"hash"`
	}
	if err := json.Unmarshal(lines[len(lines)-1], &event); err != nil {
		return "", fmt.Errorf("failed to parse last event: %w", err)
	}
	if event.Hash == "" {
		return "", fmt.Errorf("last event has no hash")
	}
	return event.Hash, nil
}

// Write chains, appends and fsyncs one event.
func (w *FileWriter) Write(event *Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return fmt.Errorf("audit log %s is closed", w.path)
	}
	if err := event.Validate(); err != nil {
		return err
	}

	event.HashPrev = w.lastHash
	canonical, err := event.CanonicalJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}
	event.Hash = calculateHash(canonical, w.lastHash)

	line, err := event.JSON()
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}
	if _, err := w.file.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	if err := w.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync audit log: %w", err)
	}

	w.lastHash = event.Hash
	return nil
}

// Close closes the audit log file. Closing twice is a no-op.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	f := w.file
	w.file = nil
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// LastHash returns the hash of the last written event.
func (w *FileWriter) LastHash() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastHash
}

// Path returns the file path of the audit log.
func (w *FileWriter) Path() string {
	return w.path
}

// calculateHash computes SHA256(data || prevHash).
func calculateHash(data []byte, prevHash string) string {
	h := sha256.New()
	_, _ = h.Write(data)
	_, _ = h.Write([]byte(prevHash))
	return HashPrefix + hex.EncodeToString(h.Sum(nil))
}

// VerifyChain checks the hash chain of an audit log file.
// It returns the number of events verified before the first problem.
func VerifyChain(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read audit log: %w", err)
	}
	lines, err := nonEmptyLines(data)
	if err != nil {
		return 0, fmt.Errorf("scan error: %w", err)
	}

	prev := GenesisHash
	for i, line := range lines {
		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			return i, fmt.Errorf("event %d: invalid JSON: %w", i+1, err)
		}
		if event.HashPrev != prev {
			return i, fmt.Errorf("%w at event %d: expected prev=%s, got prev=%s",
				ErrChainBroken, i+1, prev, event.HashPrev)
		}

		canonical, err := event.CanonicalJSON()
		if err != nil {
			return i, fmt.Errorf("event %d: failed to serialize: %w", i+1, err)
		}
		if want := calculateHash(canonical, event.HashPrev); event.Hash != want {
			return i, fmt.Errorf("%w at event %d: expected hash=%s, got hash=%s",
				ErrChainBroken, i+1, want, event.Hash)
		}
		prev = event.Hash
	}

	return len(lines), nil
}

// Tail returns the last n events of an audit log, oldest first.
// Lines that do not decode are skipped.
func Tail(path string, n int) ([]*Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audit log: %w", err)
	}
	lines, err := nonEmptyLines(data)
	if err != nil {
		return nil, err
	}
	if n >= 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}

	events := make([]*Event, 0, len(lines))
	for _, line := range lines {
		var e Event
		if err := json.Unmarshal(line, &e); err != nil {
			continue
		}
		events = append(events, &e)
	}
	return events, nil
}
