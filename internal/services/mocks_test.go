package services

import (
	"fmt"
	"sync"

	"github.com/vvka-141/tsea/pkg/tsea"
)

type mockEnumerator struct {
	candidates []string
	err        error
	calls      []string
}

func (m *mockEnumerator) ListCandidates(dir string) ([]string, error) {
	m.calls = append(m.calls, dir)
	return m.candidates, m.err
}

type mockFileScanner struct {
	results map[string][]tsea.MatchRecord
	errs    map[string]error
	scanned []string
}

func (m *mockFileScanner) ScanFile(path, _ string) ([]tsea.MatchRecord, error) {
	m.scanned = append(m.scanned, path)
	if err, ok := m.errs[path]; ok {
		return nil, err
	}
	return m.results[path], nil
}

type recordingLogger struct {
	mu      sync.Mutex
	verbose []string
	info    []string
	errors  []string
}

func (l *recordingLogger) Verbose(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = append(l.verbose, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.info = append(l.info, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

var _ tsea.Logger = (*recordingLogger)(nil)
