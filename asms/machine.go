package asms

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
)

var (
	ErrStackUnderflow = errors.New("stack underflow")
	ErrBadOperand     = errors.New("bad operand")
)

// Machine executes the body of a program on an operand stack of arbitrary-precision integers.
type Machine struct {
	Code  []Instr
	IP    int
	stack []*big.Int
}

func NewMachine(program Program) *Machine {
	return &Machine{
		Code: program.Body(),
	}
}

func (m *Machine) push(v *big.Int) {
	m.stack = append(m.stack, v)
}

func (m *Machine) pop() (*big.Int, error) {
	if len(m.stack) == 0 {
		return nil, ErrStackUnderflow
	}
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v, nil
}

// Run yields every executed instruction. Execution stops at the first error.
func (m *Machine) Run(yield func(Instr, error) bool) {
	for m.IP >= 0 && m.IP < len(m.Code) {
		inst := m.Code[m.IP]
		m.IP++
		if err := m.step(inst); err != nil {
			yield(inst, fmt.Errorf("%s at %d: %w", inst, m.IP-1, err))
			return
		}
		if !yield(inst, nil) {
			return
		}
	}
}

func (m *Machine) step(inst Instr) error {
	switch inst.Op {

	case OpPush:
		v, ok := new(big.Int).SetString(inst.Arg, 10)
		if !ok {
			return fmt.Errorf("%w: %q", ErrBadOperand, inst.Arg)
		}
		m.push(v)

	case OpNeg:
		v, err := m.pop()
		if err != nil {
			return err
		}
		m.push(new(big.Int).Neg(v))

	case OpNot:
		v, err := m.pop()
		if err != nil {
			return err
		}
		m.push(new(big.Int).Not(v))

	case OpLNot:
		v, err := m.pop()
		if err != nil {
			return err
		}
		if v.Sign() == 0 {
			m.push(big.NewInt(1))
		} else {
			m.push(big.NewInt(0))
		}

	default:
		return fmt.Errorf("unknown op: %v", inst.Op)
	}
	return nil
}

func (m *Machine) Stack() []*big.Int {
	return slices.Clone(m.stack)
}

// Exec runs program to completion and returns the final stack, bottom first.
func Exec(program Program) ([]*big.Int, error) {
	m := NewMachine(program)
	for _, err := range m.Run {
		if err != nil {
			return nil, err
		}
	}
	return m.Stack(), nil
}
