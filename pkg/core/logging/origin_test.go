package logging

import (
	"bytes"
	"testing"
)

func TestOrigin_SharesThreshold(t *testing.T) {
	l, out, _ := newTestLogger()
	auth := l.Origin("auth")

	auth.Debug("token refreshed")
	if out.Len() != 0 {
		t.Fatalf("debug at info threshold wrote %q", out)
	}

	l.SetLevel(int(LevelDebug))
	auth.Debug("token refreshed")
	if got, want := out.String(), "[DEBUG] auth: token refreshed\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if auth.Name() != "auth" || auth.Logger() != l {
		t.Errorf("Name() = %q, Logger() = %p", auth.Name(), auth.Logger())
	}
}

func TestOrigin_Formatted(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	l := NewWithConfig(Config{Level: LevelTrace, Output: out, ErrorOutput: errOut})
	net := l.Origin("net")

	net.Warnf("retry %d of %d", 2, 3)
	net.Tracef("peer %s", "10.0.0.1")
	net.Errorf("gave up after %d", 3)
	net.Fatalf("%s", "unreachable")

	wantOut := "[WARN ] net: retry 2 of 3\n[TRACE] net: peer 10.0.0.1\n"
	wantErr := "[ERROR] net: gave up after 3\n[FATAL] net: unreachable\n"
	if out.String() != wantOut {
		t.Errorf("stdout = %q, want %q", out.String(), wantOut)
	}
	if errOut.String() != wantErr {
		t.Errorf("stderr = %q, want %q", errOut.String(), wantErr)
	}
}

func TestOrigin_FilteredSkipsFormatting(t *testing.T) {
	l, out, _ := newTestLogger()
	net := l.Origin("net")

	net.Debugf("%v", panicStringer{})
	net.Infof("ok")
	net.Info("plain")
	net.Warn("w")
	net.Error("e")
	net.Fatal("f")
	net.Trace("t")

	if got, want := out.String(), "[INFO ] net: ok\n[INFO ] net: plain\n[WARN ] net: w\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

type panicStringer struct{}

func (panicStringer) String() string { panic("formatted a filtered message") }
