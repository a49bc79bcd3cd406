package config

// Settings holds every knob the core engine consumes. The core never owns
// configuration; a Settings value is built here and passed in.
type Settings struct {
	// Dialect names the keyword dialect to use.
	Dialect string `toml:"dialect" yaml:"dialect"`

	// IndentOffset is the indent unit in columns.
	IndentOffset int `toml:"indent_offset" yaml:"indent_offset"`

	// LineNumberColumns is the total width of the line-number field
	// including its separating space. 0 renders bare numbers.
	LineNumberColumns int `toml:"line_number_columns" yaml:"line_number_columns"`

	// DeleteTrailingWhitespace strips trailing spaces while formatting.
	DeleteTrailingWhitespace bool `toml:"delete_trailing_whitespace" yaml:"delete_trailing_whitespace"`

	// DeleteTrailingBlankLines removes blank lines at end of buffer on a
	// whole-buffer format.
	DeleteTrailingBlankLines bool `toml:"delete_trailing_blank_lines" yaml:"delete_trailing_blank_lines"`

	// AutoNumberIncrement enables auto-numbering of inserted lines when
	// greater than 0.
	AutoNumberIncrement int `toml:"auto_number_increment" yaml:"auto_number_increment"`

	// RenumberIncrement is the default step for renumber runs.
	RenumberIncrement int `toml:"renumber_increment" yaml:"renumber_increment"`

	// RenumberIncludeUnnumbered assigns numbers to unnumbered lines in a
	// renumber range.
	RenumberIncludeUnnumbered bool `toml:"renumber_include_unnumbered" yaml:"renumber_include_unnumbered"`

	// RequireSeparatorForHighlighting affects only tokenization
	// granularity in external highlighting; the core carries it through.
	RequireSeparatorForHighlighting bool `toml:"require_separator_for_highlighting" yaml:"require_separator_for_highlighting"`
}

// Default returns the stock settings.
func Default() Settings {
	return Settings{
		Dialect:                         "daric",
		IndentOffset:                    4,
		LineNumberColumns:               0,
		DeleteTrailingWhitespace:        true,
		DeleteTrailingBlankLines:        false,
		AutoNumberIncrement:             0,
		RenumberIncrement:               10,
		RenumberIncludeUnnumbered:       true,
		RequireSeparatorForHighlighting: true,
	}
}
