package parsers

import (
	"errors"
	"fmt"
	"slices"

	"github.com/reusee/unasm/asms"
	"github.com/reusee/unasm/diags"
	"github.com/reusee/unasm/tokens"
)

type Parser struct {
	tokens []tokens.Token
	index  int
	sink   diags.Sink
	indent string

	builder *asms.Builder
	parsed  bool
	program asms.Program
	err     error
	stats   Stats
}

type Stats struct {
	Accepted int
	Rejected int
}

type Option func(*Parser)

func WithIndent(indent string) Option {
	return func(p *Parser) {
		p.indent = indent
	}
}

var factorKinds = []tokens.Kind{
	tokens.KindInteger,
	tokens.KindNeg,
	tokens.KindBitNot,
	tokens.KindLogNot,
}

func New(toks []tokens.Token, sink diags.Sink, options ...Option) (*Parser, error) {
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty token sequence", ErrInitialization)
	}
	if !tokens.Terminated(toks) {
		return nil, fmt.Errorf("%w: token sequence must end with exactly one %v, last is %v",
			ErrInitialization, tokens.KindEOF, toks[len(toks)-1].Kind)
	}
	p := &Parser{
		tokens: slices.Clone(toks),
		sink:   diags.OrDiscard(sink),
		indent: asms.DefaultIndent,
	}
	for _, option := range options {
		option(p)
	}
	p.builder = asms.NewBuilder(p.indent)
	return p, nil
}

func (p *Parser) current() tokens.Token {
	if p.index >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.index]
}

func (p *Parser) consume() (tokens.Token, error) {
	if p.index >= len(p.tokens) {
		return tokens.Token{}, wrap(fmt.Errorf("%w: index %d, %d tokens", ErrConsumption, p.index, len(p.tokens)))
	}
	tok := p.tokens[p.index]
	p.index++
	return tok, nil
}

func (p *Parser) expect(kind tokens.Kind) (tokens.Token, error) {
	tok := p.current()
	if tok.Kind != kind {
		return tok, &SyntaxError{
			Expected: []tokens.Kind{kind},
			Got:      tok,
		}
	}
	return p.consume()
}

// Parse generates the program. Syntax errors are reported to the sink and skipped;
// the returned error is reserved for internal failures.
// Later calls return the outcome of the first one.
func (p *Parser) Parse() (asms.Program, error) {
	if !p.parsed {
		p.parsed = true
		p.program, p.err = p.parse()
	}
	return p.program, p.err
}

func (p *Parser) parse() (asms.Program, error) {
	p.builder.Prologue()

	for p.current().Kind != tokens.KindEOF {
		instrs, err := p.parseStatement()
		if err != nil {
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				return asms.Program{}, err
			}
			p.stats.Rejected++
			p.sink.Emit(syntaxErr.Diagnostic())
			if err := p.synchronize(); err != nil {
				return asms.Program{}, err
			}
			continue
		}
		p.stats.Accepted++
		p.builder.Emit(instrs...)
	}

	p.builder.Epilogue()

	return p.builder.Program(), nil
}

func (p *Parser) Stats() Stats {
	return p.stats
}

// synchronize discards tokens through the next SEMICOLON, or up to END_OF_FILE.
func (p *Parser) synchronize() error {
	for {
		switch p.current().Kind {
		case tokens.KindEOF:
			return nil
		case tokens.KindSemicolon:
			_, err := p.consume()
			return err
		}
		if _, err := p.consume(); err != nil {
			return err
		}
	}
}

func (p *Parser) parseStatement() ([]asms.Instr, error) {
	instrs, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokens.KindSemicolon); err != nil {
		return nil, err
	}
	return instrs, nil
}

func (p *Parser) parseFactor() ([]asms.Instr, error) {
	tok := p.current()

	switch tok.Kind {

	case tokens.KindInteger:
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		return []asms.Instr{
			asms.Push(tok.Text),
		}, nil

	case tokens.KindNeg, tokens.KindBitNot, tokens.KindLogNot:
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		operand, err := p.expect(tokens.KindInteger)
		if err != nil {
			return nil, err
		}
		return []asms.Instr{
			asms.Push(operand.Text),
			{Op: unaryOp(tok.Kind)},
		}, nil

	case tokens.KindSemicolon, tokens.KindEOF, tokens.KindUnknown, tokens.KindInvalid:
	}

	return nil, &SyntaxError{
		Expected: factorKinds,
		Got:      tok,
	}
}

func unaryOp(kind tokens.Kind) asms.Op {
	switch kind {
	case tokens.KindNeg:
		return asms.OpNeg
	case tokens.KindBitNot:
		return asms.OpNot
	case tokens.KindLogNot:
		return asms.OpLNot
	case tokens.KindInvalid, tokens.KindInteger, tokens.KindSemicolon, tokens.KindEOF, tokens.KindUnknown:
	}
	panic(fmt.Errorf("not a unary operator: %v", kind))
}

// Compile parses toks with a fresh parser.
func Compile(toks []tokens.Token, sink diags.Sink, options ...Option) (asms.Program, error) {
	p, err := New(toks, sink, options...)
	if err != nil {
		return asms.Program{}, err
	}
	return p.Parse()
}
