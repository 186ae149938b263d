package main

// ParseProgram parses a whole source file: a sequence of fn declarations.
func ParseProgram(l *Lexer) []*Declaration {
	var decls []*Declaration
	for l.CurrTokenType != EOF {
		if l.CurrTokenType != FN {
			l.Errors.Add("expected fn declaration but got %s", string(l.CurrTokenType))
			l.NextToken()
			continue
		}
		decls = append(decls, parseDeclaration(l))
	}
	return decls
}

// parseDeclaration parses: fn name(params) [-> (returns)] { body }
func parseDeclaration(l *Lexer) *Declaration {
	l.SkipToken(FN)

	decl := &Declaration{}
	if l.CurrTokenType == IDENT {
		decl.Name = l.CurrLiteral
	} else {
		l.Errors.Add("expected function name but got %s", string(l.CurrTokenType))
	}
	l.SkipToken(IDENT)

	l.SkipToken(LPAREN)
	decl.Params = parseNameList(l)
	l.SkipToken(RPAREN)

	if l.CurrTokenType == ARROW {
		l.SkipToken(ARROW)
		l.SkipToken(LPAREN)
		decl.Returns = parseNameList(l)
		l.SkipToken(RPAREN)
	}

	decl.Body = parseBraceBody(l)
	return decl
}

// parseNameList parses comma-separated identifiers up to a closing paren.
func parseNameList(l *Lexer) []string {
	var names []string
	for l.CurrTokenType == IDENT {
		names = append(names, l.CurrLiteral)
		l.SkipToken(IDENT)
		if l.CurrTokenType == COMMA {
			l.SkipToken(COMMA)
		}
	}
	return names
}

// parseBraceBody parses { stmt* } and returns the statements.
func parseBraceBody(l *Lexer) []*Expr {
	l.SkipToken(LBRACE)
	var stmts []*Expr
	for l.CurrTokenType != RBRACE && l.CurrTokenType != EOF {
		stmts = append(stmts, ParseStatement(l))
	}
	l.SkipToken(RBRACE)
	return stmts
}

// ParseStatement parses a single statement and returns its expression node
func ParseStatement(l *Lexer) *Expr {
	var stmt *Expr

	switch l.CurrTokenType {
	case IF:
		l.SkipToken(IF)
		cond := ParseExpression(l)
		body := parseBraceBody(l)
		if l.CurrTokenType == ELSE {
			l.SkipToken(ELSE)
			elseBody := parseBraceBody(l)
			stmt = &Expr{Kind: ExprIfElse, Cond: cond, Body: body, Else: elseBody}
		} else {
			stmt = &Expr{Kind: ExprIfThen, Cond: cond, Body: body}
		}

	case WHILE:
		l.SkipToken(WHILE)
		cond := ParseExpression(l)
		body := parseBraceBody(l)
		stmt = &Expr{Kind: ExprWhileLoop, Cond: cond, Body: body}

	case LBRACE:
		stmt = &Expr{Kind: ExprBlock, Body: parseBraceBody(l)}

	case IDENT:
		switch l.PeekToken() {
		case ASSIGN, COMMA:
			stmt = parseAssignment(l)
		case PLUS_ASSIGN, MINUS_ASSIGN, ASTERISK_ASSIGN, SLASH_ASSIGN:
			name := l.CurrLiteral
			l.SkipToken(IDENT)
			op := l.CurrLiteral
			l.NextToken()
			stmt = &Expr{Kind: ExprAssignOp, Op: op, Name: name, Inner: ParseExpression(l)}
		default:
			stmt = ParseExpression(l)
		}

	default:
		stmt = ParseExpression(l)
	}

	if l.CurrTokenType == SEMICOLON {
		l.SkipToken(SEMICOLON)
	}
	return stmt
}

// parseAssignment parses: name[, name...] = expr[, expr...]
func parseAssignment(l *Lexer) *Expr {
	targets := []string{l.CurrLiteral}
	l.SkipToken(IDENT)
	for l.CurrTokenType == COMMA {
		l.SkipToken(COMMA)
		if l.CurrTokenType != IDENT {
			l.Errors.Add("expected identifier in assignment target list but got %s", string(l.CurrTokenType))
			break
		}
		targets = append(targets, l.CurrLiteral)
		l.SkipToken(IDENT)
	}
	l.SkipToken(ASSIGN)

	values := []*Expr{ParseExpression(l)}
	for l.CurrTokenType == COMMA {
		l.SkipToken(COMMA)
		values = append(values, ParseExpression(l))
	}
	return &Expr{Kind: ExprAssign, Targets: targets, Values: values}
}

// ParseExpression parses an expression and returns its node
func ParseExpression(l *Lexer) *Expr {
	return parseExpressionWithPrecedence(l, 1)
}

// precedence returns the precedence level for a given token type
func precedence(tokenType TokenType) int {
	switch tokenType {
	case EQ, NOT_EQ, LT, GT, LE, GE:
		return 1
	case PLUS, MINUS:
		return 2
	case ASTERISK, SLASH, PERCENT:
		return 3
	default:
		return 0 // not an operator
	}
}

func isCompareToken(tokenType TokenType) bool {
	switch tokenType {
	case EQ, NOT_EQ, LT, GT, LE, GE:
		return true
	default:
		return false
	}
}

// parseExpressionWithPrecedence implements precedence climbing
func parseExpressionWithPrecedence(l *Lexer, minPrec int) *Expr {
	left := parsePrimary(l)

	for {
		prec := precedence(l.CurrTokenType)
		if prec == 0 || prec < minPrec {
			break
		}

		kind := ExprBinop
		if isCompareToken(l.CurrTokenType) {
			kind = ExprCompare
		}
		op := l.CurrLiteral
		l.NextToken()

		right := parseExpressionWithPrecedence(l, prec+1) // left-associative
		left = &Expr{Kind: kind, Op: op, Lhs: left, Rhs: right}
	}

	return left
}

// parsePrimary handles primary expressions: literals, identifiers, calls,
// global data addresses, and parenthesized expressions.
func parsePrimary(l *Lexer) *Expr {
	switch l.CurrTokenType {
	case FLOAT:
		node := &Expr{Kind: ExprLiteral, Float: l.CurrFloat}
		l.SkipToken(FLOAT)
		return node

	case TRUE:
		l.SkipToken(TRUE)
		return &Expr{Kind: ExprBool, Bool: true}

	case FALSE:
		l.SkipToken(FALSE)
		return &Expr{Kind: ExprBool, Bool: false}

	case IDENT:
		name := l.CurrLiteral
		l.SkipToken(IDENT)
		if l.CurrTokenType == LPAREN {
			return parseCallArguments(l, name)
		}
		return &Expr{Kind: ExprIdentifier, Name: name}

	case AMP:
		l.SkipToken(AMP)
		name := l.CurrLiteral
		l.SkipToken(IDENT)
		return &Expr{Kind: ExprGlobalDataAddr, Name: name}

	case LPAREN:
		l.SkipToken(LPAREN)
		inner := ParseExpression(l)
		l.SkipToken(RPAREN)
		// The grouping is kept as its own node; the checker dispatches on it.
		return &Expr{Kind: ExprParentheses, Inner: inner}

	default:
		l.Errors.Add("expected expression but got %s", string(l.CurrTokenType))
		if l.CurrTokenType != EOF {
			l.NextToken()
		}
		return &Expr{Kind: ExprLiteral}
	}
}

// parseCallArguments parses the (args...) part of a call to name.
func parseCallArguments(l *Lexer, name string) *Expr {
	l.SkipToken(LPAREN)
	var args []*Expr
	for l.CurrTokenType != RPAREN && l.CurrTokenType != EOF {
		args = append(args, ParseExpression(l))
		if l.CurrTokenType == COMMA {
			l.SkipToken(COMMA)
		} else if l.CurrTokenType != RPAREN {
			break
		}
	}
	l.SkipToken(RPAREN)
	return &Expr{Kind: ExprCall, Name: name, Values: args}
}
