package grammarian

// Split tokenizes s the way a simple shell word-splitter would: runs of
// sep characters separate tokens, a backslash escapes the next rune
// (including a separator or quote), and a quote character (one of
// quotes) opens a run that is copied verbatim, escape included, up to
// and including its matching close quote. maxsplit caps the number of
// splits performed; -1 means unbounded.
func Split(s string, sep, esc, quotes string, maxsplit int) []string {
	sepSet := runeSet(sep)
	escSet := runeSet(esc)
	quoteSet := runeSet(quotes)

	rs := []rune(s)
	end := len(rs)
	var tokens []string
	start, pos, numsplit := 0, 0, 0
	inQuotes := false
	var q rune

	for pos < end && (maxsplit < 0 || numsplit < maxsplit) {
		c := rs[pos]
		switch {
		case escSet[c]:
			if pos == end-1 {
				panic(errRunawayEscape())
			}
			pos++
		case inQuotes:
			if c == q {
				tokens = append(tokens, string(rs[start:pos+1]))
				numsplit++
				start = pos + 1
				inQuotes = false
			}
		case quoteSet[c]:
			if start < pos {
				tokens = append(tokens, string(rs[start:pos]))
				numsplit++
			}
			start = pos
			q = c
			inQuotes = true
		case sepSet[c]:
			if start < pos {
				tokens = append(tokens, string(rs[start:pos]))
				numsplit++
			}
			start = pos + 1
		}
		pos++
	}
	if start < end {
		tokens = append(tokens, string(rs[start:end]))
	}
	return tokens
}

// DefaultSplit calls Split with the library's default separator,
// escape, and quote characters and no split limit.
func DefaultSplit(s string) []string {
	return Split(s, " \t\v\n\f\r", `\`, `"'`, -1)
}

func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}
