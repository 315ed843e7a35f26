package application

import (
	"testing"
	"time"
)

func TestPingInteractor_StartAndFinish(t *testing.T) {
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	interactor := &PingInteractor{now: func() time.Time { return clock }}

	result := interactor.Start()
	if result.Message != "Pong!" {
		t.Errorf("expected message %q, got %q", "Pong!", result.Message)
	}

	clock = clock.Add(87 * time.Millisecond)

	if got := interactor.Finish(result); got != "Pong! `87` ms" {
		t.Errorf("expected %q, got %q", "Pong! `87` ms", got)
	}
}

func TestPingInteractor_Start_ReturnsNewResultEachTime(t *testing.T) {
	interactor := NewPingInteractor()

	result1 := interactor.Start()
	result2 := interactor.Start()

	if result1 == result2 {
		t.Error("expected different result instances")
	}
}
