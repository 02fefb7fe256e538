package mython

// parseClassDef: CLASS ID ['(' ID ')'] ':' NEWLINE INDENT method_def+ DEDENT
func (p *parser) parseClassDef() (Node, error) {
	p.advance()
	nameTok, err := p.expect(tokenId, "a class name")
	if err != nil {
		return nil, err
	}
	p.classNames[nameTok.Str] = true

	var parent string
	if p.at(tokenChar) && p.cur.Ch == '(' {
		p.advance()
		parentTok, err := p.expect(tokenId, "a parent class name")
		if err != nil {
			return nil, err
		}
		parent = parentTok.Str
		if _, err := p.expectChar(')'); err != nil {
			return nil, err
		}
	}

	if _, err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenNewline, "newline before a class body"); err != nil {
		return nil, err
	}
	p.skipNewlines()
	if _, err := p.expect(tokenIndent, "an indented class body"); err != nil {
		return nil, err
	}

	var methods []*MethodDef
	for !p.at(tokenDedent) {
		m, err := p.parseMethodDef()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
		p.skipNewlines()
	}
	if _, err := p.expect(tokenDedent, "end of the class body"); err != nil {
		return nil, err
	}

	return &ClassDefinition{Name: nameTok.Str, Parent: parent, Methods: methods}, nil
}

// parseMethodDef: DEF ID '(' [ID (',' ID)*] ')' ':' suite
func (p *parser) parseMethodDef() (*MethodDef, error) {
	if _, err := p.expect(tokenDef, "'def'"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(tokenId, "a method name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectChar('('); err != nil {
		return nil, err
	}
	var params []string
	if !(p.at(tokenChar) && p.cur.Ch == ')') {
		paramTok, err := p.expect(tokenId, "a parameter name")
		if err != nil {
			return nil, err
		}
		params = append(params, paramTok.Str)
		for p.at(tokenChar) && p.cur.Ch == ',' {
			p.advance()
			paramTok, err := p.expect(tokenId, "a parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, paramTok.Str)
		}
	}
	if _, err := p.expectChar(')'); err != nil {
		return nil, err
	}
	if _, err := p.expectChar(':'); err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	return &MethodDef{Name: nameTok.Str, Params: params, Body: &MethodBody{Body: body}}, nil
}

// expectChar expects the current token to be a CHAR token carrying ch.
func (p *parser) expectChar(ch byte) (Token, error) {
	if !p.at(tokenChar) || p.cur.Ch != ch {
		return Token{}, newParseError("Expect", "expected '"+string(ch)+"', found "+p.cur.String())
	}
	tok := p.cur
	p.advance()
	return tok, nil
}
