package signals

import (
	"syscall"
	"testing"
	"time"
)

func TestService_TranslatesCountersSignal(t *testing.T) {
	s := New()
	defer s.Stop()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGUSR1); err != nil {
		t.Fatalf("Kill: %v", err)
	}

	select {
	case r := <-s.Requests():
		if r != ReqCounters {
			t.Fatalf("got %v, want ReqCounters", r)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for translated request")
	}
}

func TestService_TranslatesParamsSignal(t *testing.T) {
	s := New()
	defer s.Stop()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGUSR2); err != nil {
		t.Fatalf("Kill: %v", err)
	}

	select {
	case r := <-s.Requests():
		if r != ReqParams {
			t.Fatalf("got %v, want ReqParams", r)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for translated request")
	}
}

func TestService_StopUnregisters(t *testing.T) {
	s := New()
	s.Stop()

	// Stop must be safe even though nothing else happens after it;
	// sending a signal post-Stop should not deliver through Requests().
	if err := syscall.Kill(syscall.Getpid(), syscall.SIGUSR1); err != nil {
		t.Fatalf("Kill: %v", err)
	}
	select {
	case r := <-s.Requests():
		t.Fatalf("unexpected request after Stop: %v", r)
	case <-time.After(200 * time.Millisecond):
	}
}
