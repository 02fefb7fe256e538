package mython

import "io"

// parser wraps a lexer with a one-token-of-lookahead recursive-descent
// grammar, one function per grammar level, rather than a Pratt/precedence
// table — the grammar this language needs is small and fixed enough that
// spelling each level out reads more directly than a table would.
//
// classNames tracks every class declared so far, so a call site can decide
// at parse time whether a bare `ID(args)` constructs an instance or calls a
// method with no receiver — the language has no runtime notion of "not yet
// resolved", so this decision has to happen here.
type parser struct {
	lex        *lexer
	cur        Token
	classNames map[string]bool
}

// Parse lexes and parses a full program, returning its root Compound node.
func Parse(input io.Reader) (Node, error) {
	lx, err := newLexer(input)
	if err != nil {
		return nil, err
	}
	p := &parser{lex: lx, cur: lx.Current(), classNames: make(map[string]bool)}
	return p.parseProgram()
}

func (p *parser) advance() Token {
	p.cur = p.lex.Next()
	return p.cur
}

func (p *parser) at(t TokenType) bool {
	return p.cur.Type == t
}

func (p *parser) expect(t TokenType, what string) (Token, error) {
	if !p.at(t) {
		return Token{}, newParseError("Expect", "expected "+what+", found "+p.cur.String())
	}
	tok := p.cur
	p.advance()
	return tok, nil
}

// skipNewlines consumes zero or more blank NEWLINE tokens, the way top
// level and suite bodies allow blank lines between statements.
func (p *parser) skipNewlines() {
	for p.at(tokenNewline) {
		p.advance()
	}
}

// parseProgram: (NEWLINE* stmt)* EOF
func (p *parser) parseProgram() (Node, error) {
	var stmts []Node
	p.skipNewlines()
	for !p.at(tokenEOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		p.skipNewlines()
	}
	return &Compound{Stmts: stmts}, nil
}

// parseSuite: NEWLINE INDENT stmt+ DEDENT
func (p *parser) parseSuite() (Node, error) {
	if _, err := p.expect(tokenNewline, "newline before an indented block"); err != nil {
		return nil, err
	}
	p.skipNewlines()
	if _, err := p.expect(tokenIndent, "an indented block"); err != nil {
		return nil, err
	}
	var stmts []Node
	for !p.at(tokenDedent) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		p.skipNewlines()
	}
	if _, err := p.expect(tokenDedent, "end of the indented block"); err != nil {
		return nil, err
	}
	return &Compound{Stmts: stmts}, nil
}
