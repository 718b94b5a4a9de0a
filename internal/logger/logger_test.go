package logger

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetVerbose(t *testing.T) {
	defer Reset()

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	defer Reset()

	tests := []struct {
		name string
		log  func()
		want string
	}{
		{"debug", func() { Debug("test message %s", "arg") }, "[DEBUG] test message arg\n"},
		{"info", func() { Info("info message %d", 42) }, "[INFO] info message 42\n"},
		{"warn", func() { Warn("warning message") }, "[WARN] warning message\n"},
		{"section", func() { Section("Normalise") }, "\n=== Normalise ===\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetOutput(&buf)
			SetVerbose(true)

			tt.log()

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("test message")
	Info("test message")
	Warn("test message")
	Section("test")

	assert.Zero(t, buf.Len())
}

func TestReset(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Reset()
	Debug("hidden")

	assert.False(t, IsVerbose())
	assert.Zero(t, buf.Len())
}

func TestConcurrentAccess(t *testing.T) {
	defer Reset()

	SetOutput(io.Discard)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetVerbose(true)
			Debug("concurrent %d", i)
			IsVerbose()
			SetVerbose(false)
		}()
	}
	wg.Wait()
}
