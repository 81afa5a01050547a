package backtrack

// MatchClass reports whether c is accepted by the contents of a bracket
// expression. Rules are tried in order and the first match wins:
//
//	x-y   inclusive range (x must not be '-')
//	\x    the literal byte x
//	-     a literal '-' when it is the first or last byte
//	x     the literal byte x
func MatchClass(class []byte, c byte) bool {
	for i := 0; i < len(class); i++ {
		b := class[i]
		switch {
		case b == '\\' && i+1 < len(class):
			i++
			if class[i] == c {
				return true
			}
		case b != '-' && i+2 < len(class) && class[i+1] == '-':
			if b <= c && c <= class[i+2] {
				return true
			}
			i += 2
		case b == '-':
			// A '-' between two non-range bytes matches nothing.
			if (i == 0 || i == len(class)-1) && c == '-' {
				return true
			}
		case b == c:
			return true
		}
	}
	return false
}
