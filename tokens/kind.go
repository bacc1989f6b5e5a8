package tokens

type Kind uint8

const (
	KindInvalid Kind = iota
	KindInteger
	KindNeg
	KindBitNot
	KindLogNot
	KindSemicolon
	KindEOF
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "INTEGER_LITERAL"
	case KindNeg:
		return "OPERATOR_NEG"
	case KindBitNot:
		return "OPERATOR_BIT_NOT"
	case KindLogNot:
		return "OPERATOR_LOG_NOT"
	case KindSemicolon:
		return "SEMICOLON"
	case KindEOF:
		return "END_OF_FILE"
	case KindUnknown:
		return "UNKNOWN"
	case KindInvalid:
	}
	return "INVALID_TOKEN_KIND"
}

// IsUnary reports whether tokens of this kind prefix an integer literal.
func (k Kind) IsUnary() bool {
	switch k {
	case KindNeg, KindBitNot, KindLogNot:
		return true
	case KindInvalid, KindInteger, KindSemicolon, KindEOF, KindUnknown:
	}
	return false
}

// ByRune maps single-character tokens to their kind.
func ByRune(r rune) (Kind, bool) {
	switch r {
	case '-':
		return KindNeg, true
	case '~':
		return KindBitNot, true
	case '!':
		return KindLogNot, true
	case ';':
		return KindSemicolon, true
	}
	return KindUnknown, false
}
