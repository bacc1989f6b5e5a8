package asms

type Op uint8

const (
	OpInvalid Op = iota
	OpPush
	OpNeg
	OpNot
	OpLNot
)

func (o Op) String() string {
	switch o {
	case OpPush:
		return "PUSH"
	case OpNeg:
		return "NEG"
	case OpNot:
		return "NOT"
	case OpLNot:
		return "LNOT"
	case OpInvalid:
	}
	return "INVALID"
}

type Instr struct {
	Op  Op
	Arg string
}

func Push(value string) Instr {
	return Instr{
		Op:  OpPush,
		Arg: value,
	}
}

func (i Instr) String() string {
	if i.Arg == "" {
		return i.Op.String()
	}
	return i.Op.String() + " " + i.Arg
}
