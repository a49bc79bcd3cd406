package jumps

import (
	"testing"

	"github.com/dshills/daricfmt/internal/basic/dialect"
	"github.com/dshills/daricfmt/internal/engine/buffer"
)

func build(text string) Index {
	return Build(buffer.NewFromString(text), dialect.Default())
}

func TestGotoLike(t *testing.T) {
	idx := build("10 GOTO 100\n20 GOSUB 200\n")

	refs := idx[100]
	if len(refs) != 1 {
		t.Fatalf("expected 1 ref to 100, got %d", len(refs))
	}
	if refs[0].Line != 0 || refs[0].Col != 8 || refs[0].Len != 3 {
		t.Errorf("ref = %+v", refs[0])
	}
	if refs[0].Family != dialect.FamilyGotoLike {
		t.Errorf("family = %v", refs[0].Family)
	}
	if len(idx[200]) != 1 {
		t.Errorf("expected 1 ref to 200, got %d", len(idx[200]))
	}
}

func TestComputedGoto(t *testing.T) {
	idx := build("10 ON X GOTO 100,200, 300\n")

	for _, target := range []int{100, 200, 300} {
		if len(idx[target]) != 1 {
			t.Errorf("expected 1 ref to %d, got %d", target, len(idx[target]))
		}
	}
}

func TestThenAndElse(t *testing.T) {
	idx := build("10 IF A = 1 THEN 50 ELSE 60\n")

	if len(idx[50]) != 1 || len(idx[60]) != 1 {
		t.Errorf("THEN/ELSE targets missed: %v", idx)
	}
	// The comparison constant is not a jump target.
	if len(idx[1]) != 0 {
		t.Errorf("comparison operand indexed: %v", idx[1])
	}
}

func TestThenWithStatementIsSkipped(t *testing.T) {
	idx := build("10 IF A = 1 THEN PRINT A\n")

	if len(idx) != 0 {
		t.Errorf("non-numeric THEN argument indexed: %v", idx)
	}
}

func TestErlCompare(t *testing.T) {
	idx := build("10 IF ERL = 100 THEN 50\n20 IF ERL <> 200 THEN 50\n30 IF ERL >= 300 THEN 50\n")

	for _, target := range []int{100, 200, 300} {
		refs := idx[target]
		if len(refs) != 1 {
			t.Fatalf("expected 1 ref to %d, got %d", target, len(refs))
		}
		if refs[0].Family != dialect.FamilyErlCompare {
			t.Errorf("family for %d = %v", target, refs[0].Family)
		}
	}
	if len(idx[50]) != 3 {
		t.Errorf("expected 3 refs to 50, got %d", len(idx[50]))
	}
}

func TestListRange(t *testing.T) {
	idx := build("10 LIST 100-200\n20 DELETE 300\n30 LLIST -400\n40 LIST\n")

	for _, target := range []int{100, 200, 300, 400} {
		refs := idx[target]
		if len(refs) != 1 {
			t.Fatalf("expected 1 ref to %d, got %d", target, len(refs))
		}
		if refs[0].Family != dialect.FamilyDeleteListRange {
			t.Errorf("family for %d = %v", target, refs[0].Family)
		}
	}
}

func TestRenumKeyword(t *testing.T) {
	idx := build("10 RENUM 1000\n")

	refs := idx[1000]
	if len(refs) != 1 || refs[0].Family != dialect.FamilyRenum {
		t.Errorf("RENUM target: %v", refs)
	}
}

func TestStringsAndCommentsSkipped(t *testing.T) {
	idx := build("10 PRINT \"GOTO 99\"\n20 REM GOTO 98\n30 ' GOTO 97\n40 PRINT A ' GOTO 96\n")

	for _, target := range []int{99, 98, 97, 96} {
		if len(idx[target]) != 0 {
			t.Errorf("indexed reference inside string/comment to %d", target)
		}
	}
}

func TestLineNumberPrefixNotIndexed(t *testing.T) {
	idx := build("100 PRINT A\n")

	if len(idx[100]) != 0 {
		t.Error("a line's own number prefix must not be indexed")
	}
}

func TestDiscoveryOrder(t *testing.T) {
	idx := build("10 GOTO 50\n20 GOSUB 50\n30 GOTO 50\n")

	refs := idx[50]
	if len(refs) != 3 {
		t.Fatalf("expected 3 refs, got %d", len(refs))
	}
	for i, want := range []int{0, 1, 2} {
		if refs[i].Line != want {
			t.Errorf("ref %d on line %d, want %d", i, refs[i].Line, want)
		}
	}
}

func TestCaseInsensitiveKeywords(t *testing.T) {
	idx := build("10 goto 100\n")

	if len(idx[100]) != 1 {
		t.Error("lowercase keyword not recognized")
	}
}

func TestMalformedArgumentsSkipped(t *testing.T) {
	idx := build("10 GOTO X\n20 GOTO 1X2\n30 RESTORE\n")

	if len(idx) != 0 {
		t.Errorf("malformed arguments indexed: %v", idx)
	}
}
