package logging

import "testing"

func TestProgressSamplerBuckets(t *testing.T) {
	s := NewProgressSampler(10)

	emitted := 0
	for done := 1; done <= 100; done++ {
		if s.ShouldLog(done, 100) {
			emitted++
		}
	}
	// Buckets 0 through 10 inclusive: first item, each 10% crossing, and 100%.
	if emitted != 11 {
		t.Errorf("emitted = %d, want 11", emitted)
	}
}

func TestProgressSamplerUnknownTotal(t *testing.T) {
	s := NewProgressSampler(10)
	for i := 0; i < 5; i++ {
		if !s.ShouldLog(i, 0) {
			t.Fatalf("ShouldLog(%d, 0) = false, want true for unknown total", i)
		}
	}
}

func TestProgressSamplerReset(t *testing.T) {
	s := NewProgressSampler(50)
	if !s.ShouldLog(60, 100) {
		t.Fatal("first crossing should log")
	}
	if s.ShouldLog(70, 100) {
		t.Fatal("same bucket should not log twice")
	}
	s.Reset()
	if !s.ShouldLog(60, 100) {
		t.Fatal("after Reset the bucket should log again")
	}
}

func TestProgressSamplerNil(t *testing.T) {
	var s *ProgressSampler
	if !s.ShouldLog(1, 10) {
		t.Error("nil sampler should always log")
	}
	s.Reset() // must not panic
}
