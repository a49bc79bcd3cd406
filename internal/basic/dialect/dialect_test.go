package dialect

import "testing"

func TestDefaultKeywordSets(t *testing.T) {
	d := Default()

	if !d.IncreasesAtBOL("FOR") {
		t.Error("FOR should increase at BOL")
	}
	if !d.IncreasesAtBOL("for") {
		t.Error("keyword matching should be case-insensitive")
	}
	if !d.IncreasesAtEOL("THEN") {
		t.Error("THEN should increase at EOL")
	}
	if !d.DecreasesAtBOL("NEXT") {
		t.Error("NEXT should decrease at BOL")
	}
	if d.IncreasesAtBOL("PRINT") {
		t.Error("PRINT should not affect indent")
	}
}

func TestJumpFamily(t *testing.T) {
	d := Default()

	tests := []struct {
		word string
		want Family
	}{
		{"GOTO", FamilyGotoLike},
		{"gosub", FamilyGotoLike},
		{"ERL", FamilyErlCompare},
		{"LIST", FamilyDeleteListRange},
		{"RENUM", FamilyRenum},
	}
	for _, tt := range tests {
		fam, ok := d.JumpFamily(tt.word)
		if !ok {
			t.Errorf("JumpFamily(%q) not found", tt.word)
			continue
		}
		if fam != tt.want {
			t.Errorf("JumpFamily(%q) = %v, want %v", tt.word, fam, tt.want)
		}
	}

	if _, ok := d.JumpFamily("PRINT"); ok {
		t.Error("PRINT is not a jump keyword")
	}
}

func TestIsCommentLead(t *testing.T) {
	d := Default()

	tests := []struct {
		text string
		want bool
	}{
		{"' comment", true},
		{"REM comment", true},
		{"rem comment", true},
		{"REM", true},
		{"REMARK", false},
		{"PRINT", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := d.IsCommentLead(tt.text); got != tt.want {
			t.Errorf("IsCommentLead(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestMergeFallsBackToBase(t *testing.T) {
	base := Default()
	merged := Merge(base, Options{
		Name:          "custom",
		DecreaseAtBOL: []string{"FIN"},
	})

	if merged.Name() != "custom" {
		t.Errorf("name = %q", merged.Name())
	}
	if !merged.DecreasesAtBOL("FIN") {
		t.Error("override set not applied")
	}
	if merged.DecreasesAtBOL("NEXT") {
		t.Error("override should replace the base set")
	}
	if !merged.IncreasesAtBOL("FOR") {
		t.Error("untouched sets should fall back to base")
	}
	if _, ok := merged.JumpFamily("GOTO"); !ok {
		t.Error("jump table should fall back to base")
	}
}
