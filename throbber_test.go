// throbber_test.go
package throbber

import (
	"errors"
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	th := New()
	if th == nil {
		t.Fatal("New returned nil")
	}
	if th.message != "" {
		t.Errorf("message = %q, want empty", th.message)
	}
	if th.interval != 200*time.Millisecond {
		t.Errorf("interval = %v, want 200ms", th.interval)
	}
	if len(th.frames) != len(DefaultFrames) || th.frames[0] != DefaultFrames[0] {
		t.Errorf("frames = %v, want DefaultFrames", th.frames)
	}
	if th.anim != nil {
		t.Error("worker exists before Start")
	}
}

func TestNewWith(t *testing.T) {
	th := NewWith("work", 50*time.Millisecond, RotateFrames)
	if th.message != "work" {
		t.Errorf("message = %q, want %q", th.message, "work")
	}
	if th.interval != 50*time.Millisecond {
		t.Errorf("interval = %v, want 50ms", th.interval)
	}
	if th.frames[0] != "|" {
		t.Errorf("frames[0] = %q, want %q", th.frames[0], "|")
	}
}

func TestFluentSetters(t *testing.T) {
	th := New().Message("loading").Interval(80 * time.Millisecond).Frames(CircleFrames)
	if th.message != "loading" {
		t.Errorf("message = %q, want %q", th.message, "loading")
	}
	if th.interval != 80*time.Millisecond {
		t.Errorf("interval = %v, want 80ms", th.interval)
	}
	if th.frames[0] != "◐" {
		t.Errorf("frames[0] = %q, want %q", th.frames[0], "◐")
	}
}

func TestFrames_PanicsOnEmptyTable(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Frames(nil) did not panic")
		}
		if err, ok := r.(error); !ok || !errors.Is(err, ErrEmptyFrames) {
			t.Errorf("panic value = %v, want ErrEmptyFrames", r)
		}
	}()
	New().Frames(nil)
}

func TestSetFrames_EmptyTableRejected(t *testing.T) {
	th := New().Frames(RotateFrames)
	err := th.SetFrames([]string{})
	if !errors.Is(err, ErrEmptyFrames) {
		t.Fatalf("SetFrames(empty) = %v, want ErrEmptyFrames", err)
	}
	// Previous table stays active.
	if th.frames[0] != "|" {
		t.Errorf("frames[0] = %q, want %q after rejected update", th.frames[0], "|")
	}
}

func TestConfigure(t *testing.T) {
	tests := []struct {
		name         string
		cfg          Config
		wantMessage  string
		wantInterval time.Duration
		wantFrame0   string
		wantErr      bool
	}{
		{
			name:         "all fields",
			cfg:          Config{Message: "dl", Interval: 30 * time.Millisecond, Frames: RotateFrames},
			wantMessage:  "dl",
			wantInterval: 30 * time.Millisecond,
			wantFrame0:   "|",
		},
		{
			name:         "zero fields keep current values",
			cfg:          Config{},
			wantMessage:  "",
			wantInterval: 200 * time.Millisecond,
			wantFrame0:   DefaultFrames[0],
		},
		{
			name:         "interval only",
			cfg:          Config{Interval: time.Second},
			wantMessage:  "",
			wantInterval: time.Second,
			wantFrame0:   DefaultFrames[0],
		},
		{
			name:    "empty frames rejected",
			cfg:     Config{Frames: []string{}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := New()
			err := th.Configure(tt.cfg)
			if tt.wantErr {
				if !errors.Is(err, ErrEmptyFrames) {
					t.Fatalf("Configure = %v, want ErrEmptyFrames", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Configure: %v", err)
			}
			if th.message != tt.wantMessage {
				t.Errorf("message = %q, want %q", th.message, tt.wantMessage)
			}
			if th.interval != tt.wantInterval {
				t.Errorf("interval = %v, want %v", th.interval, tt.wantInterval)
			}
			if th.frames[0] != tt.wantFrame0 {
				t.Errorf("frames[0] = %q, want %q", th.frames[0], tt.wantFrame0)
			}
		})
	}
}

func TestSuccessBeforeStart_PrintsSynchronously(t *testing.T) {
	buf := &syncBuffer{}
	th := New().Writer(buf)
	th.Success("done")
	if th.anim != nil {
		t.Error("worker created by never-started Success")
	}
	want := clearLine + "✔ done\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestFailBeforeStart_PrintsSynchronously(t *testing.T) {
	buf := &syncBuffer{}
	th := New().Writer(buf)
	th.Fail("boom")
	if th.anim != nil {
		t.Error("worker created by never-started Fail")
	}
	want := clearLine + "✖ boom\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestFinishBeforeStart_NoOp(t *testing.T) {
	buf := &syncBuffer{}
	th := New().Writer(buf)
	th.Finish()
	if th.anim != nil {
		t.Error("worker created by never-started Finish")
	}
	if got := buf.String(); got != "" {
		t.Errorf("output = %q, want empty", got)
	}
}

func TestCloseWithoutStart(t *testing.T) {
	th := New()
	if err := th.Close(); err != nil {
		t.Errorf("Close = %v, want nil", err)
	}
}

func TestCloseTwice(t *testing.T) {
	th := New().Writer(&syncBuffer{}).Interval(5 * time.Millisecond)
	th.Start()
	if err := th.Close(); err != nil {
		t.Fatalf("first Close = %v", err)
	}
	if err := th.Close(); err != nil {
		t.Errorf("second Close = %v, want nil", err)
	}
}

func TestCloseTerminatesWithinInterval(t *testing.T) {
	th := New().Writer(&syncBuffer{}).Interval(50 * time.Millisecond).Message("work")
	th.Start()
	time.Sleep(20 * time.Millisecond)

	began := time.Now()
	if err := th.Close(); err != nil {
		t.Fatalf("Close = %v", err)
	}
	if elapsed := time.Since(began); elapsed > 500*time.Millisecond {
		t.Errorf("Close took %v, want at most one interval plus slack", elapsed)
	}
}

func TestCommandsAfterWorkerDeath_SilentNoOp(t *testing.T) {
	buf := &syncBuffer{}
	th := New().Writer(buf).Interval(5 * time.Millisecond)
	th.Start()
	if err := th.Close(); err != nil {
		t.Fatalf("Close = %v", err)
	}

	// The animation is gone; none of these may panic or block.
	th.SetMessage("late")
	th.Finish()
	if err := th.SetFrames(RotateFrames); err != nil {
		t.Errorf("SetFrames after Close = %v", err)
	}
}
