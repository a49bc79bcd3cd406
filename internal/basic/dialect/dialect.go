package dialect

import "strings"

// Family identifies the grammar family of a jump keyword.
type Family uint8

const (
	// FamilyGotoLike keywords take a comma/dash-separated list of line
	// numbers (GOTO, GOSUB, THEN, ON x GOTO a,b,c, ...).
	FamilyGotoLike Family = iota
	// FamilyErlCompare keywords are followed by a comparison operator and
	// a single line number (ERL = 100).
	FamilyErlCompare
	// FamilyDeleteListRange keywords take an optional dash-separated range
	// of one or two line numbers (LIST 10-50).
	FamilyDeleteListRange
	// FamilyRenum keywords take a single number naming the new starting
	// point of a renumber run.
	FamilyRenum
)

// String returns a string representation of the family.
func (f Family) String() string {
	switch f {
	case FamilyGotoLike:
		return "goto-like"
	case FamilyErlCompare:
		return "erl-compare"
	case FamilyDeleteListRange:
		return "delete-list-range"
	case FamilyRenum:
		return "renum"
	default:
		return "unknown"
	}
}

// JumpKeyword is one entry of the jump keyword table: a keyword plus the
// family tag that selects its argument grammar.
type JumpKeyword struct {
	Word   string
	Family Family
}

// Config is an immutable dialect description. Construct one with New or
// Default and pass it by pointer; it is never mutated after construction.
type Config struct {
	name string

	increaseAtEOL map[string]bool
	increaseAtBOL map[string]bool
	decreaseAtBOL map[string]bool

	commentLeads []string
	separator    byte

	jumpTable map[string]Family
}

// Options describes the keyword sets used to build a Config. Empty slices
// fall back to the stock dialect's sets.
type Options struct {
	Name          string
	IncreaseAtEOL []string
	IncreaseAtBOL []string
	DecreaseAtBOL []string
	CommentLeads  []string
	Separator     string
	JumpKeywords  []JumpKeyword
}

// New builds a Config from opts. Keyword matching is case-insensitive; all
// words are folded to upper case at construction time.
func New(opts Options) *Config {
	c := &Config{
		name:          opts.Name,
		increaseAtEOL: toSet(opts.IncreaseAtEOL),
		increaseAtBOL: toSet(opts.IncreaseAtBOL),
		decreaseAtBOL: toSet(opts.DecreaseAtBOL),
		commentLeads:  upperAll(opts.CommentLeads),
		separator:     ':',
		jumpTable:     make(map[string]Family, len(opts.JumpKeywords)),
	}
	if opts.Separator != "" {
		c.separator = opts.Separator[0]
	}
	for _, jk := range opts.JumpKeywords {
		c.jumpTable[strings.ToUpper(jk.Word)] = jk.Family
	}
	return c
}

// Default returns the stock dialect: classic line-numbered BASIC keyword
// sets tuned for the single-lookback indent heuristic.
func Default() *Config {
	return New(Options{
		Name:          "daric",
		IncreaseAtEOL: []string{"THEN", "ELSE", "DO"},
		IncreaseAtBOL: []string{"FOR", "WHILE", "REPEAT", "SUB", "DEF", "CASE", "FUNCTION"},
		DecreaseAtBOL: []string{"NEXT", "WEND", "UNTIL", "LOOP", "END", "ENDIF", "ENDCASE", "ENDWHILE", "ENDFUNC", "ENDSUB", "RETURN"},
		CommentLeads:  []string{"'", "REM"},
		Separator:     ":",
		JumpKeywords: []JumpKeyword{
			{"GOTO", FamilyGotoLike},
			{"GOSUB", FamilyGotoLike},
			{"RESTORE", FamilyGotoLike},
			{"RESUME", FamilyGotoLike},
			{"RETURN", FamilyGotoLike},
			{"RUN", FamilyGotoLike},
			{"THEN", FamilyGotoLike},
			{"EDIT", FamilyGotoLike},
			{"ELSE", FamilyGotoLike},
			{"ERL", FamilyErlCompare},
			{"DELETE", FamilyDeleteListRange},
			{"LIST", FamilyDeleteListRange},
			{"LLIST", FamilyDeleteListRange},
			{"RENUM", FamilyRenum},
		},
	})
}

// Merge builds a Config from opts, falling back to base for any field
// opts leaves empty. Neither input is mutated; configs are immutable, so
// shared keyword sets are safe.
func Merge(base *Config, opts Options) *Config {
	c := New(opts)
	if c.name == "" {
		c.name = base.name
	}
	if len(opts.IncreaseAtEOL) == 0 {
		c.increaseAtEOL = base.increaseAtEOL
	}
	if len(opts.IncreaseAtBOL) == 0 {
		c.increaseAtBOL = base.increaseAtBOL
	}
	if len(opts.DecreaseAtBOL) == 0 {
		c.decreaseAtBOL = base.decreaseAtBOL
	}
	if len(opts.CommentLeads) == 0 {
		c.commentLeads = base.commentLeads
	}
	if opts.Separator == "" {
		c.separator = base.separator
	}
	if len(opts.JumpKeywords) == 0 {
		c.jumpTable = base.jumpTable
	}
	return c
}

// Name returns the dialect name.
func (c *Config) Name() string { return c.name }

// Separator returns the statement separator byte (typically ':').
func (c *Config) Separator() byte { return c.separator }

// CommentLeads returns the comment lead tokens in declaration order.
// The returned slice must not be modified.
func (c *Config) CommentLeads() []string { return c.commentLeads }

// IncreasesAtEOL reports whether word, as the last token of a line, opens
// a block for the following line.
func (c *Config) IncreasesAtEOL(word string) bool {
	return c.increaseAtEOL[strings.ToUpper(word)]
}

// IncreasesAtBOL reports whether word, as the first token of a line, opens
// a block for the following line.
func (c *Config) IncreasesAtBOL(word string) bool {
	return c.increaseAtBOL[strings.ToUpper(word)]
}

// DecreasesAtBOL reports whether word closes a block when it appears as the
// first token of a line (or directly after a statement separator).
func (c *Config) DecreasesAtBOL(word string) bool {
	return c.decreaseAtBOL[strings.ToUpper(word)]
}

// JumpFamily looks up word in the jump keyword table.
func (c *Config) JumpFamily(word string) (Family, bool) {
	f, ok := c.jumpTable[strings.ToUpper(word)]
	return f, ok
}

// IsCommentLead reports whether the text beginning at s is a comment lead
// token. Symbolic leads (') match directly; word leads (REM) match
// case-insensitively and must be word-bounded.
func (c *Config) IsCommentLead(s string) bool {
	for _, lead := range c.commentLeads {
		if len(s) < len(lead) {
			continue
		}
		if !strings.EqualFold(s[:len(lead)], lead) {
			continue
		}
		if isWordStart(lead[0]) && len(s) > len(lead) && isWordByte(s[len(lead)]) {
			continue // REMARK is not a REM comment
		}
		return true
	}
	return false
}

func toSet(words []string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[strings.ToUpper(w)] = true
	}
	return m
}

func upperAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToUpper(w)
	}
	return out
}

func isWordStart(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b == '_'
}

func isWordByte(b byte) bool {
	return isWordStart(b) || b >= '0' && b <= '9'
}
