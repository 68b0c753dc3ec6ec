package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Recorder writes every update and the frame it produced to a temporary
// directory so a session can be replayed while debugging.
type Recorder struct {
	logFile  *os.File
	frameDir string
	frameNum int
	enabled  bool
}

// NewRecorder creates a recorder. A disabled recorder, or one whose directory
// cannot be created, ignores every call.
func NewRecorder(enabled bool) *Recorder {
	if !enabled {
		return &Recorder{}
	}

	dir, err := os.MkdirTemp("", fmt.Sprintf("verdict-record-%d-", time.Now().Unix()))
	if err != nil {
		return &Recorder{}
	}

	logFile, err := os.Create(filepath.Join(dir, "session.log")) // #nosec G304 -- path under our own temp dir
	if err != nil {
		return &Recorder{}
	}

	r := &Recorder{
		enabled:  true,
		logFile:  logFile,
		frameDir: dir,
	}
	r.Log("Recording to %s", dir)
	return r
}

// Dir returns the directory frames are written to, or "" when disabled.
func (r *Recorder) Dir() string {
	if !r.enabled {
		return ""
	}
	return r.frameDir
}

// Frames returns the number of frames captured so far.
func (r *Recorder) Frames() int {
	return r.frameNum
}

// RecordState captures the model after it handled msg.
func (r *Recorder) RecordState(m Model, msg tea.Msg) {
	if !r.enabled {
		return
	}

	r.frameNum++

	r.Log("\n=== Frame %d (%s) ===", r.frameNum, time.Now().Format("15:04:05.000"))
	r.Log("Message: %T", msg)
	r.Log("App state: %s", m.state)
	r.Log("Result state: %s", m.presenter.State())
	if m.pendingID != "" {
		r.Log("Pending request: %s", m.pendingID)
	}

	view := m.render()
	framePath := filepath.Join(r.frameDir, fmt.Sprintf("frame-%04d.txt", r.frameNum))
	if err := os.WriteFile(framePath, []byte(view), 0600); err != nil {
		r.Log("Error saving frame: %v", err)
	}
}

// Log writes a line to the session log.
func (r *Recorder) Log(format string, args ...any) {
	if !r.enabled || r.logFile == nil {
		return
	}

	if _, err := fmt.Fprintf(r.logFile, format+"\n", args...); err != nil {
		return
	}
	_ = r.logFile.Sync()
}

// Close flushes and closes the session log. It is safe to call more than once.
func (r *Recorder) Close() {
	if r.logFile == nil {
		return
	}
	r.Log("Recording complete. %d frames captured.", r.frameNum)
	_ = r.logFile.Close()
	r.logFile = nil
}
