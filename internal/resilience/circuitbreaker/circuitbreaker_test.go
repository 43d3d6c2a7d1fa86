package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
)

func testConfig(timeout time.Duration) Config {
	return Config{
		Name:             "test-circuit",
		MaxRequests:      1,
		Interval:         10 * time.Second,
		Timeout:          timeout,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

func TestNew(t *testing.T) {
	cfg := testConfig(time.Second)
	cfg.Name = "media-store"
	cb := New(cfg)

	if cb.Name() != "media-store" {
		t.Errorf("expected name media-store, got %s", cb.Name())
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("expected initial state Closed, got %v", cb.State())
	}
	if cb.IsOpen() {
		t.Error("new breaker should not be open")
	}
}

func TestCircuitBreaker_Execute_PassesThrough(t *testing.T) {
	cb := New(testConfig(time.Second))

	got, err := cb.Execute(func() (interface{}, error) { return 42, nil })
	if err != nil || got.(int) != 42 {
		t.Fatalf("Execute() = %v, %v", got, err)
	}

	wantErr := errors.New("boom")
	if _, err := cb.Execute(func() (interface{}, error) { return nil, wantErr }); err != wantErr {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestCircuitBreaker_TripsOpen(t *testing.T) {
	cb := New(testConfig(time.Second))
	testErr := errors.New("test error")

	// 4 failures + 1 success: 80% failure ratio over 5 requests
	for i := 0; i < 4; i++ {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, testErr })
	}
	if cb.IsOpen() {
		t.Fatal("must not trip below MinRequests")
	}
	_, _ = cb.Execute(func() (interface{}, error) { return "ok", nil })
	_, _ = cb.Execute(func() (interface{}, error) { return nil, testErr })

	if !cb.IsOpen() {
		t.Fatalf("expected Open, got %v", cb.State())
	}

	_, err := cb.Execute(func() (interface{}, error) {
		t.Error("function should not be called when circuit is open")
		return nil, nil
	})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected ErrOpenState, got %v", err)
	}
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	cb := New(testConfig(50 * time.Millisecond))
	testErr := errors.New("test error")

	for i := 0; i < 5; i++ {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, testErr })
	}
	if !cb.IsOpen() {
		t.Fatalf("expected Open, got %v", cb.State())
	}

	time.Sleep(80 * time.Millisecond)
	if cb.State() != gobreaker.StateHalfOpen {
		t.Fatalf("expected HalfOpen after timeout, got %v", cb.State())
	}

	if _, err := cb.Execute(func() (interface{}, error) { return "ok", nil }); err != nil {
		t.Fatalf("half-open trial request failed: %v", err)
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("expected Closed after a successful trial request, got %v", cb.State())
	}
}

func TestCircuitBreaker_IsSuccessfulIgnoresClassifiedErrors(t *testing.T) {
	benign := errors.New("benign")
	cfg := testConfig(time.Second)
	cfg.IsSuccessful = func(err error) bool { return err == nil || errors.Is(err, benign) }
	cb := New(cfg)

	for i := 0; i < 10; i++ {
		_, err := cb.Execute(func() (interface{}, error) { return nil, benign })
		if err != benign {
			t.Fatalf("error must still be returned, got %v", err)
		}
	}
	if cb.IsOpen() {
		t.Error("classified errors must not trip the breaker")
	}
}
