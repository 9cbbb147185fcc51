package session

import "testing"

func TestNewStartsAtDefaults(t *testing.T) {
	s := New(2)
	if s.Level != 1 || s.Lives != 3 {
		t.Fatalf("got level %d lives %d, want level 1 lives 3", s.Level, s.Lives)
	}
}

func TestLoseLife(t *testing.T) {
	s := New(2)

	if s.LoseLife() {
		t.Fatal("game over after first death")
	}
	if s.Lives != 2 {
		t.Fatalf("lives = %d, want 2", s.Lives)
	}
	if s.LoseLife() {
		t.Fatal("game over after second death")
	}
	if !s.LoseLife() {
		t.Fatal("expected game over after third death")
	}
	if s.Lives != 0 {
		t.Fatalf("lives = %d, want 0", s.Lives)
	}

	// Lives never go negative
	s.LoseLife()
	if s.Lives != 0 {
		t.Fatalf("lives = %d after extra death, want 0", s.Lives)
	}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name        string
		level       int
		lives       int
		wantLevel   int
		wantLives   int
		wantWrapped bool
	}{
		{name: "next level keeps lives", level: 1, lives: 2, wantLevel: 2, wantLives: 2},
		{name: "past final level resets", level: 2, lives: 1, wantLevel: 1, wantLives: 3, wantWrapped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(2)
			s.Level = tt.level
			s.Lives = tt.lives

			wrapped := s.Advance()
			if wrapped != tt.wantWrapped {
				t.Errorf("wrapped = %v, want %v", wrapped, tt.wantWrapped)
			}
			if s.Level != tt.wantLevel || s.Lives != tt.wantLives {
				t.Errorf("got level %d lives %d, want level %d lives %d", s.Level, s.Lives, tt.wantLevel, tt.wantLives)
			}
		})
	}
}

func TestSubscribe(t *testing.T) {
	s := New(2)

	var got []Snapshot
	cancel := s.Subscribe(func(snap Snapshot) {
		got = append(got, snap)
	})

	s.LoseLife()
	s.Advance()
	cancel()
	s.Reset()

	want := []Snapshot{
		{Level: 1, Lives: 3},
		{Level: 1, Lives: 2},
		{Level: 2, Lives: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d notifications, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notification %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSetLevelIgnoresOutOfRange(t *testing.T) {
	s := New(2)
	s.SetLevel(5)
	if s.Level != 1 {
		t.Fatalf("level = %d, want 1", s.Level)
	}
	s.SetLevel(2)
	if s.Level != 2 {
		t.Fatalf("level = %d, want 2", s.Level)
	}
}
