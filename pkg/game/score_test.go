package game

import "testing"

func TestScoreAdd(t *testing.T) {
	s := NewScore()
	if err := s.Add(100); err != nil {
		t.Fatalf("Add(100) error = %v", err)
	}
	if err := s.Add(0); err != nil {
		t.Fatalf("Add(0) error = %v", err)
	}
	if s.Value() != 100 {
		t.Errorf("Value() = %d, want 100", s.Value())
	}

	if err := s.Add(-5); err == nil {
		t.Error("Add(-5) should fail")
	}
	if s.Value() != 100 {
		t.Errorf("Value() after rejected add = %d, want 100", s.Value())
	}
}

func TestScoreCheckpoint(t *testing.T) {
	s := NewScore()
	_ = s.Add(300)
	s.SaveCheckpoint()
	_ = s.Add(500)

	s.RestoreCheckpoint()
	if s.Value() != 300 {
		t.Errorf("Value() after restore = %d, want 300", s.Value())
	}
	if s.Checkpoint() != 300 {
		t.Errorf("Checkpoint() = %d, want 300", s.Checkpoint())
	}
}
