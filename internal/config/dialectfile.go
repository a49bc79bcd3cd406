package config

import (
	"fmt"
	"os"

	"github.com/dshills/daricfmt/internal/basic/dialect"
)

// dialectFile is the on-disk shape of a dialect description. Absent
// fields fall back to the stock dialect's sets, so a file only needs to
// name what it changes.
type dialectFile struct {
	Name          string   `toml:"name" yaml:"name"`
	IncreaseAtEOL []string `toml:"increase_at_eol" yaml:"increase_at_eol"`
	IncreaseAtBOL []string `toml:"increase_at_bol" yaml:"increase_at_bol"`
	DecreaseAtBOL []string `toml:"decrease_at_bol" yaml:"decrease_at_bol"`
	CommentLeads  []string `toml:"comment_leads" yaml:"comment_leads"`
	Separator     string   `toml:"separator" yaml:"separator"`
	Jumps         []struct {
		Word   string `toml:"word" yaml:"word"`
		Family string `toml:"family" yaml:"family"`
	} `toml:"jump" yaml:"jump"`
}

// LoadDialect builds a dialect from a TOML or YAML file. A missing file
// yields the stock dialect.
func LoadDialect(path string) (*dialect.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return dialect.Default(), nil
		}
		return nil, fmt.Errorf("reading dialect file %s: %w", path, err)
	}
	var df dialectFile
	if err := unmarshal(path, data, &df); err != nil {
		return nil, err
	}
	return buildDialect(df)
}

func buildDialect(df dialectFile) (*dialect.Config, error) {
	stock := dialect.Default()
	opts := dialect.Options{
		Name:          df.Name,
		IncreaseAtEOL: df.IncreaseAtEOL,
		IncreaseAtBOL: df.IncreaseAtBOL,
		DecreaseAtBOL: df.DecreaseAtBOL,
		CommentLeads:  df.CommentLeads,
		Separator:     df.Separator,
	}
	if opts.Name == "" {
		opts.Name = stock.Name()
	}

	for _, j := range df.Jumps {
		fam, err := parseFamily(j.Family)
		if err != nil {
			return nil, fmt.Errorf("jump keyword %q: %w", j.Word, err)
		}
		opts.JumpKeywords = append(opts.JumpKeywords, dialect.JumpKeyword{Word: j.Word, Family: fam})
	}

	merged := dialect.Merge(stock, opts)
	return merged, nil
}

func parseFamily(s string) (dialect.Family, error) {
	switch s {
	case "goto-like":
		return dialect.FamilyGotoLike, nil
	case "erl-compare":
		return dialect.FamilyErlCompare, nil
	case "delete-list-range":
		return dialect.FamilyDeleteListRange, nil
	case "renum":
		return dialect.FamilyRenum, nil
	default:
		return 0, fmt.Errorf("unknown jump family %q", s)
	}
}
