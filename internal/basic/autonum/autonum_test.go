package autonum

import (
	"testing"

	"github.com/dshills/daricfmt/internal/basic/dialect"
	"github.com/dshills/daricfmt/internal/engine/buffer"
)

func TestNext(t *testing.T) {
	tests := []struct {
		cur, next, step int
		want            int
	}{
		{10, 0, 10, 20},  // no following line: plain step
		{10, 30, 10, 20}, // room for the step
		{10, 20, 10, 15}, // step collides: midpoint
		{10, 15, 10, 12}, // midpoint again
		{10, 12, 10, 11},
		{10, 11, 10, 11}, // no midpoint left: cur+1, collision accepted
		{5, 6, 1, 6},
	}
	for _, tt := range tests {
		if got := Next(tt.cur, tt.next, tt.step); got != tt.want {
			t.Errorf("Next(%d, %d, %d) = %d, want %d", tt.cur, tt.next, tt.step, got, tt.want)
		}
	}
}

func TestNumberAfter(t *testing.T) {
	svc := New(dialect.Default(), 10)
	buf := buffer.NewFromString("10 PRINT A\n20 END\n")

	n, ok := svc.NumberAfter(buf, 0)
	if !ok {
		t.Fatal("expected a number")
	}
	if n != 15 {
		t.Errorf("got %d, want midpoint 15", n)
	}
}

func TestNumberAfterLastLine(t *testing.T) {
	svc := New(dialect.Default(), 10)
	buf := buffer.NewFromString("10 PRINT A\n20 END\n")

	n, ok := svc.NumberAfter(buf, 1)
	if !ok {
		t.Fatal("expected a number")
	}
	if n != 30 {
		t.Errorf("got %d, want 30", n)
	}
}

func TestNumberAfterSkipsNonCode(t *testing.T) {
	svc := New(dialect.Default(), 10)
	buf := buffer.NewFromString("10 PRINT A\n\n' note\n20 END\n")

	n, ok := svc.NumberAfter(buf, 0)
	if !ok {
		t.Fatal("expected a number")
	}
	if n != 15 {
		t.Errorf("got %d, want 15 (blank and comment skipped)", n)
	}
}

func TestUnnumberedLineNeverFires(t *testing.T) {
	svc := New(dialect.Default(), 10)
	buf := buffer.NewFromString("PRINT A\n20 END\n")

	if _, ok := svc.NumberAfter(buf, 0); ok {
		t.Error("unnumbered line must not trigger auto-numbering")
	}
}
