package mython

func (p *parser) parseStatement() (Node, error) {
	switch p.cur.Type {
	case tokenClass:
		return p.parseClassDef()
	case tokenIf:
		return p.parseIfStmt()
	case tokenPrint:
		return p.parsePrintStmt()
	case tokenReturn:
		return p.parseReturnStmt()
	default:
		return p.parseAssignmentOrCall()
	}
}

// parsePrintStmt: PRINT [expr (',' expr)*] NEWLINE
func (p *parser) parsePrintStmt() (Node, error) {
	p.advance()
	var args []Node
	if !p.at(tokenNewline) && !p.at(tokenEOF) && !p.at(tokenDedent) {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		for p.at(tokenChar) && p.cur.Ch == ',' {
			p.advance()
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}
	return &Print{Args: args}, nil
}

// parseReturnStmt: RETURN [expr] NEWLINE
func (p *parser) parseReturnStmt() (Node, error) {
	p.advance()
	if p.at(tokenNewline) || p.at(tokenEOF) || p.at(tokenDedent) {
		return &Return{Arg: &NoneConst{}}, nil
	}
	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &Return{Arg: arg}, nil
}

// parseIfStmt: IF expr ':' suite [ELSE ':' suite]
func (p *parser) parseIfStmt() (Node, error) {
	p.advance()
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectChar(':'); err != nil {
		return nil, err
	}
	then, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	node := &IfElse{Cond: cond, Then: then}
	if p.at(tokenElse) {
		p.advance()
		if _, err := p.expectChar(':'); err != nil {
			return nil, err
		}
		elseBody, err := p.parseSuite()
		if err != nil {
			return nil, err
		}
		node.Else = elseBody
	}
	return node, nil
}

// parseAssignmentOrCall parses everything that starts with a dotted name:
// a plain assignment (x = expr, or x.f = expr), or an expression statement
// (a bare method call, most commonly).
func (p *parser) parseAssignmentOrCall() (Node, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.at(tokenChar) && p.cur.Ch == '=' {
		p.advance()
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		switch target := expr.(type) {
		case *VariableValue:
			if len(target.Names) == 1 {
				return &Assignment{Name: target.Names[0], RHS: rhs}, nil
			}
			return &FieldAssignment{
				Object: &VariableValue{Names: target.Names[:len(target.Names)-1]},
				Field:  target.Names[len(target.Names)-1],
				RHS:    rhs,
			}, nil
		default:
			return nil, newParseError("UnexpectedToken", "left-hand side of assignment must be a name or field")
		}
	}
	return expr, nil
}
