package main

import (
	"sync"
	"time"
)

// PollInterval is how often the presentation layer samples the data slot.
const PollInterval = 100 * time.Millisecond

const maxLines = 10000

// Source is polled by a Monitor. SerialLink implements it.
type Source interface {
	LatestData() (SerialLine, bool)
	LatestCharacter() (SerialLine, bool)
}

// Monitor turns the polled data slot into two plotted channels and keeps a
// bounded history of received lines for export.
type Monitor struct {
	src Source

	mu      sync.Mutex
	signal1 *Window
	signal2 *Window
	lines   []SerialLine
	lastSeq uint64
}

func NewMonitor(src Source, samples int) *Monitor {
	return &Monitor{
		src:     src,
		signal1: NewWindow(samples),
		signal2: NewWindow(samples),
	}
}

// Tick samples the data slot once. The latest value is held and pushed on
// every tick so the plot scrolls at a fixed rate; fresh reports whether the
// line is new since the previous tick. A line that does not parse leaves the
// windows untouched.
func (m *Monitor) Tick() (fresh bool, err error) {
	line, ok := m.src.LatestData()
	if !ok {
		return false, nil
	}

	sample, err := ParseSample(line.Data)

	m.mu.Lock()
	defer m.mu.Unlock()

	fresh = line.Seq != m.lastSeq
	m.lastSeq = line.Seq
	if err != nil {
		return fresh, err
	}

	m.signal1.Push(sample.Signal1)
	m.signal2.Push(sample.Signal2)

	if fresh {
		m.lines = append(m.lines, line)
		// Bound memory
		if len(m.lines) > maxLines {
			m.lines = m.lines[len(m.lines)-maxLines:]
		}
	}
	return fresh, nil
}

// Series returns both channels, oldest first.
func (m *Monitor) Series() (signal1, signal2 []float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.signal1.Values(), m.signal2.Values()
}

// Character returns the last echoed character, or "" if none arrived yet.
func (m *Monitor) Character() string {
	line, ok := m.src.LatestCharacter()
	if !ok {
		return ""
	}
	return line.Data
}

// History returns a copy of the recorded data lines.
func (m *Monitor) History() []SerialLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SerialLine, len(m.lines))
	copy(out, m.lines)
	return out
}

// Clear drops the history and zeroes both channels.
func (m *Monitor) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = nil
	m.signal1.reset()
	m.signal2.reset()
}
