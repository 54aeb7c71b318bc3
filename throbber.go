// Package throbber animates a cyclic progress indicator next to a
// status message on the terminal while the calling program does other
// work. One background worker goroutine owns the render loop; the
// Throbber handle controls it through a FIFO command queue. Stopping
// the animation with Finish, Success or Fail parks the worker instead
// of destroying it, so repeated start/stop phases reuse a single
// goroutine; only Close ends it.
//
// A Throbber is not safe for concurrent use by multiple goroutines,
// and the caller must not write to the output stream while the
// animation is running — the worker owns the current line.
package throbber

import (
	"errors"
	"io"
	"os"
	"runtime"
	"time"
)

// ErrEmptyFrames reports an attempt to install an empty frame table.
var ErrEmptyFrames = errors.New("throbber: frame table must not be empty")

const defaultInterval = 200 * time.Millisecond

// Throbber is the control handle for one animation. The zero value is
// not usable; construct with New or NewWith.
type Throbber struct {
	message  string
	interval time.Duration
	frames   []string
	out      io.Writer

	anim    *anim
	cleanup runtime.Cleanup
}

// Config is a partial-update record for Configure. Zero-valued fields
// keep the current setting (use SetMessage to clear a message).
type Config struct {
	Message  string
	Interval time.Duration
	Frames   []string
	Out      io.Writer
}

// New returns a Throbber with an empty message, a 200ms interval and
// the braille DefaultFrames, writing to stdout.
func New() *Throbber {
	return &Throbber{
		interval: defaultInterval,
		frames:   DefaultFrames,
		out:      os.Stdout,
	}
}

// NewWith returns a fully configured Throbber. It panics if frames is
// empty.
func NewWith(message string, interval time.Duration, frames []string) *Throbber {
	t := New()
	t.message = message
	t.interval = interval
	return t.Frames(frames)
}

// Message sets the message and returns t for chaining.
func (t *Throbber) Message(msg string) *Throbber {
	t.SetMessage(msg)
	return t
}

// Interval sets the time each frame is shown and returns t.
func (t *Throbber) Interval(d time.Duration) *Throbber {
	t.SetInterval(d)
	return t
}

// Frames installs a frame table and returns t. An empty table is a
// programmer error and panics with ErrEmptyFrames; use SetFrames to
// get the error instead.
func (t *Throbber) Frames(frames []string) *Throbber {
	if err := t.SetFrames(frames); err != nil {
		panic(err)
	}
	return t
}

// Writer redirects animation output. It only takes effect before the
// first Start.
func (t *Throbber) Writer(w io.Writer) *Throbber {
	t.out = w
	return t
}

// Configure applies the non-zero fields of cfg. Like the individual
// setters it propagates to a live worker.
func (t *Throbber) Configure(cfg Config) error {
	if cfg.Frames != nil {
		if err := t.SetFrames(cfg.Frames); err != nil {
			return err
		}
	}
	if cfg.Message != "" {
		t.SetMessage(cfg.Message)
	}
	if cfg.Interval != 0 {
		t.SetInterval(cfg.Interval)
	}
	if cfg.Out != nil {
		t.out = cfg.Out
	}
	return nil
}

// SetMessage changes the message shown next to the frame. Takes effect
// on the next render tick when the animation is live.
func (t *Throbber) SetMessage(msg string) {
	if t.anim != nil {
		t.anim.enqueue(command{kind: cmdSetMessage, msg: msg})
	}
	t.message = msg
}

// SetInterval changes the time between frames.
func (t *Throbber) SetInterval(d time.Duration) {
	if t.anim != nil {
		t.anim.enqueue(command{kind: cmdSetInterval, interval: d})
	}
	t.interval = d
}

// SetFrames swaps the frame table and restarts the cycle at the first
// frame. Returns ErrEmptyFrames for an empty table, leaving the
// previous table active.
func (t *Throbber) SetFrames(frames []string) error {
	if len(frames) == 0 {
		return ErrEmptyFrames
	}
	if t.anim != nil {
		t.anim.enqueue(command{kind: cmdSetFrames, frames: frames})
	}
	t.frames = frames
	return nil
}

// Start begins or resumes the animation. The first call spawns the
// render worker seeded with the current configuration; later calls
// wake and resume the same worker. Calling Start while already running
// is a no-op (the animation continues where it was).
func (t *Throbber) Start() {
	if t.anim != nil {
		t.anim.enqueue(command{kind: cmdStart})
		return
	}
	a := newAnim(t.out)
	go a.loop(t.message, t.interval, t.frames)
	t.anim = a
	// If the handle is dropped without Close, still terminate the
	// worker so it is never leaked. Close stops this hook and joins
	// properly.
	t.cleanup = runtime.AddCleanup(t, func(a *anim) {
		a.enqueue(command{kind: cmdTerminate})
	}, a)
}

// StartWithMsg sets the message and starts in one call; the worker
// observes the new message before the next render.
func (t *Throbber) StartWithMsg(msg string) {
	t.SetMessage(msg)
	t.Start()
}

// Finish stops the animation and clears the line, leaving the worker
// parked so a later Start resumes it. No-op when never started.
func (t *Throbber) Finish() {
	if t.anim == nil {
		return
	}
	t.anim.enqueue(command{kind: cmdStop})
}

// Success stops the animation and prints a "✔ msg" status line. When
// no worker exists yet the line is printed synchronously on the
// caller's goroutine, so Success can be called unconditionally.
func (t *Throbber) Success(msg string) {
	if t.anim == nil {
		printStatus(t.out, successMark(), msg)
		return
	}
	t.anim.enqueue(command{kind: cmdSucceed, msg: msg})
}

// Fail stops the animation and prints a "✖ msg" status line, with the
// same synchronous fallback as Success when never started.
func (t *Throbber) Fail(msg string) {
	if t.anim == nil {
		printStatus(t.out, failureMark(), msg)
		return
	}
	t.anim.enqueue(command{kind: cmdFail, msg: msg})
}

// Close terminates the render worker and waits for it to exit — at
// most one interval when the worker is mid-sleep. It is the only
// operation that ends the worker; Finish, Success and Fail merely park
// it. Safe to call repeatedly; later calls do nothing and return nil.
// A non-nil error means the worker exited abnormally and the output
// stream may have been left mid-line.
func (t *Throbber) Close() error {
	if t.anim == nil {
		return nil
	}
	a := t.anim
	t.anim = nil
	t.cleanup.Stop()
	a.enqueue(command{kind: cmdTerminate})
	<-a.done
	return a.workerr
}
