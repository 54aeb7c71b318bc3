// worker.go
package throbber

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
)

// clearLine erases the current terminal line and returns the cursor to
// column 0.
const clearLine = "\x1b[2K\r"

type cmdKind int

const (
	cmdStart cmdKind = iota
	cmdStop
	cmdSucceed
	cmdFail
	cmdSetMessage
	cmdSetInterval
	cmdSetFrames
	cmdTerminate
)

type command struct {
	kind     cmdKind
	msg      string
	interval time.Duration
	frames   []string
}

// anim is the live link between a Throbber handle and its render
// worker: the FIFO command queue shared by both, and the worker's exit
// state. The handle is the only sender, the worker the only receiver.
type anim struct {
	mu     sync.Mutex
	wake   *sync.Cond
	queue  []command
	closed bool // worker exited; later enqueues are dropped

	done    chan struct{}
	workerr error // recovered worker panic; read only after done closes

	out io.Writer
}

func newAnim(out io.Writer) *anim {
	a := &anim{out: out, done: make(chan struct{})}
	a.wake = sync.NewCond(&a.mu)
	return a
}

// enqueue appends c and wakes the worker. It never blocks the caller;
// commands sent after the worker has exited are silently dropped.
func (a *anim) enqueue(c command) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.queue = append(a.queue, c)
	a.wake.Signal()
}

// take removes and returns every currently queued command. With park
// set it blocks until at least one command arrives; otherwise it may
// return an empty batch.
func (a *anim) take(park bool) []command {
	a.mu.Lock()
	defer a.mu.Unlock()
	for park && len(a.queue) == 0 {
		a.wake.Wait()
	}
	cmds := a.queue
	a.queue = nil
	return cmds
}

func (a *anim) markClosed() {
	a.mu.Lock()
	a.closed = true
	a.queue = nil
	a.mu.Unlock()
}

func successMark() string { return color.GreenString("✔") }
func failureMark() string { return color.RedString("✖") }

// printStatus erases the current line and prints a final status line.
func printStatus(w io.Writer, mark, msg string) {
	fmt.Fprintf(w, "%s%s %s\n", clearLine, mark, msg)
}

// loop is the render worker. It owns the authoritative animation state;
// once the worker exists the handle's copies of message, interval and
// frames are only a mirror of the last requested values.
//
// Each iteration drains the whole queue, applies it, then either
// renders one frame and sleeps (running) or parks until the next
// enqueue (suspended). Draining everything before rendering means a
// burst of setter calls collapses to its final value for that tick.
func (a *anim) loop(msg string, interval time.Duration, frames []string) {
	defer close(a.done)
	defer a.markClosed()
	defer func() {
		if r := recover(); r != nil {
			a.workerr = fmt.Errorf("throbber: render worker panicked: %v", r)
		}
	}()

	running := true
	frame := 0
	for {
		for _, c := range a.take(!running) {
			switch c.kind {
			case cmdStart:
				running = true
			case cmdStop:
				fmt.Fprint(a.out, clearLine)
				running = false
			case cmdSucceed:
				printStatus(a.out, successMark(), c.msg)
				running = false
			case cmdFail:
				printStatus(a.out, failureMark(), c.msg)
				running = false
			case cmdSetMessage:
				msg = c.msg
			case cmdSetInterval:
				interval = c.interval
			case cmdSetFrames:
				frames = c.frames
				frame = 0
			case cmdTerminate:
				// Commands queued behind a terminate are discarded.
				fmt.Fprint(a.out, clearLine)
				return
			}
		}
		if !running {
			continue
		}
		fmt.Fprintf(a.out, "%s%s %s", clearLine, frames[frame], msg)
		time.Sleep(interval)
		frame = (frame + 1) % len(frames)
	}
}
