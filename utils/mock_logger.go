package utils

import "sync"

// MockLogger records log calls for assertions in tests.
type MockLogger struct {
	mu       sync.Mutex
	messages []MockLogEntry
	level    LogLevel
}

type MockLogEntry struct {
	Level   string
	Message string
	Fields  []any
}

func NewMockLogger() *MockLogger {
	return &MockLogger{level: LogLevelDebug}
}

func (m *MockLogger) record(level, msg string, keysAndValues []any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, MockLogEntry{Level: level, Message: msg, Fields: keysAndValues})
}

func (m *MockLogger) Debug(msg string, keysAndValues ...any) { m.record("DEBUG", msg, keysAndValues) }
func (m *MockLogger) Info(msg string, keysAndValues ...any)  { m.record("INFO", msg, keysAndValues) }
func (m *MockLogger) Warn(msg string, keysAndValues ...any)  { m.record("WARN", msg, keysAndValues) }
func (m *MockLogger) Error(msg string, keysAndValues ...any) { m.record("ERROR", msg, keysAndValues) }

func (m *MockLogger) SetLevel(level LogLevel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.level = level
}

// Messages returns a copy of everything logged so far.
func (m *MockLogger) Messages() []MockLogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockLogEntry, len(m.messages))
	copy(out, m.messages)
	return out
}

func (m *MockLogger) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = nil
}
