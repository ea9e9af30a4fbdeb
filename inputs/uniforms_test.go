package inputs

import "testing"

func TestResizeFeedsResolution(t *testing.T) {
	sizes := [][2]int{{800, 800}, {1, 1}, {1920, 1080}, {0, 0}, {-3, 7}}
	f := NewFrameState(800, 800)
	for _, s := range sizes {
		f.Resize(s[0], s[1])
		got := f.Uniforms(0).Resolution
		want := [2]float32{float32(s[0]), float32(s[1])}
		if got != want {
			t.Errorf("after Resize(%d, %d) resolution = %v, want %v", s[0], s[1], got, want)
		}
	}
}

func TestCursorTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		x, y         float64
		wantX, wantY float32
	}{
		{0, 0, 0, 0},
		{10.9, 20.1, 10, 20},
		{-0.7, -12.99, 0, -12},
		{799.999, 0.5, 799, 0},
	}
	f := NewFrameState(800, 800)
	for _, tt := range tests {
		f.CursorMoved(tt.x, tt.y)
		got := f.Uniforms(0).Mouse
		if got != [2]float32{tt.wantX, tt.wantY} {
			t.Errorf("CursorMoved(%v, %v) mouse = %v, want (%v, %v)", tt.x, tt.y, got, tt.wantX, tt.wantY)
		}
	}
}

func TestLastCursorWins(t *testing.T) {
	f := NewFrameState(800, 800)
	f.CursorMoved(1, 1)
	f.CursorMoved(300.4, 200.6)
	f.CursorMoved(42.9, 17.2)
	if got := f.Uniforms(1).Mouse; got != [2]float32{42, 17} {
		t.Errorf("mouse = %v, want [42 17]", got)
	}
}

func TestUniformsTextureUnit(t *testing.T) {
	u := NewFrameState(4, 4).Uniforms(2.5)
	if u.TexUnit != 0 {
		t.Errorf("TexUnit = %d, want 0", u.TexUnit)
	}
	if u.Time != 2.5 {
		t.Errorf("Time = %v, want 2.5", u.Time)
	}
}

func TestClockStartsAtZeroAndNeverDecreases(t *testing.T) {
	readings := []float64{100, 100.5, 101, 100.8, 102, 102}
	i := 0
	c := NewClock(func() float64 {
		v := readings[i]
		i++
		return v
	})

	prev := -1.0
	for n := range readings {
		e := c.Elapsed()
		if n == 0 && e != 0 {
			t.Fatalf("first Elapsed() = %v, want 0", e)
		}
		if e < prev {
			t.Errorf("Elapsed() went backwards: %v after %v", e, prev)
		}
		prev = e
	}
	if prev != 2 {
		t.Errorf("final Elapsed() = %v, want 2", prev)
	}
}
