package source

// Token scanning helpers shared by the indent calculator and the jump
// scanner. These are deliberately not a lexer: they recognize word tokens
// outside string literals and nothing more.

// FirstWord returns the first alphabetic token of body, skipping leading
// whitespace and numeric tokens.
func FirstWord(body string) string {
	i := 0
	for i < len(body) {
		c := body[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c >= '0' && c <= '9':
			for i < len(body) && body[i] >= '0' && body[i] <= '9' {
				i++
			}
		case isWordByte(c):
			j := i
			for j < len(body) && isWordByte(body[j]) {
				j++
			}
			return body[i:j]
		default:
			return ""
		}
	}
	return ""
}

// LastWord returns the last word token of body that lies outside string
// literals.
func LastWord(body string) string {
	var last string
	inString := false
	i := 0
	for i < len(body) {
		c := body[i]
		switch {
		case c == '"':
			inString = !inString
			i++
		case inString:
			i++
		case isWordByte(c):
			j := i
			for j < len(body) && isWordByte(body[j]) {
				j++
			}
			last = body[i:j]
			i = j
		default:
			i++
		}
	}
	return last
}

// WordsAfterSeparator returns every word token that directly follows the
// statement separator (ignoring intervening spaces), outside string
// literals. It lets the indent calculator spot a block closer buried in
// the middle of the previous line, as in "PRINT I : NEXT".
func WordsAfterSeparator(body string, sep byte) []string {
	var out []string
	inString := false
	afterSep := false
	i := 0
	for i < len(body) {
		c := body[i]
		switch {
		case c == '"':
			inString = !inString
			afterSep = false
			i++
		case inString:
			i++
		case c == sep:
			afterSep = true
			i++
		case c == ' ' || c == '\t':
			i++
		case isWordByte(c):
			j := i
			for j < len(body) && isWordByte(body[j]) {
				j++
			}
			if afterSep {
				out = append(out, body[i:j])
			}
			afterSep = false
			i = j
		default:
			afterSep = false
			i++
		}
	}
	return out
}
