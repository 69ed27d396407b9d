/*
 * Arbor
 *
 * Copyright 2026 The Arbor Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"fmt"

	"github.com/arbor-lang/arbor/util"
)

/*
Operator precedence levels, lowest to highest.
*/
const (
	Lowest = iota + 1
	Equals
	LessGreater
	Sum
	Product
	Prefix
	Call
	Index
)

var precedences = map[TokenID]int{
	TokenEQ:       Equals,
	TokenNOTEQ:    Equals,
	TokenLT:       LessGreater,
	TokenGT:       LessGreater,
	TokenPLUS:     Sum,
	TokenMINUS:    Sum,
	TokenSLASH:    Product,
	TokenASTERISK: Product,
	TokenLPAREN:   Call,
	TokenLBRACKET: Index,
}

func precedenceOf(id TokenID) int {
	if p, ok := precedences[id]; ok {
		return p
	}
	return Lowest
}

var infixNodeNames = map[TokenID]string{
	TokenPLUS:     NodeADD,
	TokenMINUS:    NodeSUB,
	TokenASTERISK: NodeMUL,
	TokenSLASH:    NodeDIV,
	TokenEQ:       NodeEQ,
	TokenNOTEQ:    NodeNOTEQ,
	TokenGT:       NodeGT,
	TokenLT:       NodeLT,
}

/*
Parser consumes a token stream and produces a Program node. It keeps a
two-token lookahead window (curr, peek).
*/
type Parser struct {
	name  string
	lexer *Lexer
	curr  Token
	peek  Token
}

/*
NewParser creates a Parser reading from source, identified by name for
error messages (typically a filename or "<repl>").
*/
func NewParser(name string, source string) *Parser {
	p := &Parser{name: name, lexer: NewLexer(name, source)}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.curr = p.peek
	p.peek = p.lexer.NextToken()
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return util.NewError(p.name, util.ErrParseError, fmt.Sprintf(format, args...), p.curr.Line, p.curr.Pos)
}

/*
ParseProgram parses the whole input and returns the Program node. The
first error encountered aborts parsing.
*/
func (p *Parser) ParseProgram() (*ASTNode, error) {
	prog := &ASTNode{Name: NodePROGRAM}

	for p.curr.ID != TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Children = append(prog.Children, stmt)
		p.advance()
	}

	return prog, nil
}

func (p *Parser) parseStatement() (*ASTNode, error) {
	switch p.curr.ID {
	case TokenLET:
		return p.parseLetStatement()
	case TokenRETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() (*ASTNode, error) {
	tok := p.curr

	if p.peek.ID != TokenIDENT {
		return nil, p.errorf("expected identifier after 'let', got %v", p.peek)
	}
	p.advance()
	name := p.curr.Val

	if p.peek.ID != TokenASSIGN {
		return nil, p.errorf("expected '=' after let name, got %v", p.peek)
	}
	p.advance()
	p.advance()

	val, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}

	if p.peek.ID == TokenSEMICOLON || p.peek.ID == TokenEOF {
		p.advance()
	} else {
		return nil, p.errorf("expected ';' to terminate let statement, got %v", p.peek)
	}

	return &ASTNode{Name: NodeLET, Token: tok, Value: name, Children: []*ASTNode{val}}, nil
}

func (p *Parser) parseReturnStatement() (*ASTNode, error) {
	tok := p.curr
	p.advance()

	val, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}

	if p.peek.ID != TokenSEMICOLON {
		return nil, p.errorf("expected ';' to terminate return statement, got %v", p.peek)
	}
	p.advance()

	return &ASTNode{Name: NodeRETURN, Token: tok, Children: []*ASTNode{val}}, nil
}

func (p *Parser) parseExpressionStatement() (*ASTNode, error) {
	tok := p.curr

	expr, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}

	if p.peek.ID == TokenSEMICOLON {
		p.advance()
	}

	return &ASTNode{Name: NodeEXPRSTMT, Token: tok, Children: []*ASTNode{expr}}, nil
}

/*
parseExpression is the Pratt core: compute a prefix production for curr,
then keep folding infix/call/index productions in while the next operator
binds tighter than minPrec.
*/
func (p *Parser) parseExpression(minPrec int) (*ASTNode, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for p.peek.ID != TokenSEMICOLON && minPrec < precedenceOf(p.peek.ID) {
		p.advance()

		switch p.curr.ID {
		case TokenLPAREN:
			left, err = p.parseCallExpression(left)
		case TokenLBRACKET:
			left, err = p.parseIndexExpression(left)
		default:
			left, err = p.parseInfixExpression(left)
		}
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *Parser) parsePrefix() (*ASTNode, error) {
	tok := p.curr

	switch tok.ID {
	case TokenBANG, TokenMINUS:
		return p.parsePrefixExpression()

	case TokenIDENT:
		return &ASTNode{Name: NodeIDENT, Token: tok, Value: tok.Val}, nil

	case TokenINT:
		return &ASTNode{Name: NodeINT, Token: tok, Value: tok.Val}, nil

	case TokenSTRING:
		return &ASTNode{Name: NodeSTRING, Token: tok, Value: tok.Val}, nil

	case TokenTRUE, TokenFALSE:
		return &ASTNode{Name: NodeBOOL, Token: tok, Value: tok.Val}, nil

	case TokenLPAREN:
		return p.parseGroupedExpression()

	case TokenIF:
		return p.parseIfExpression()

	case TokenFUNCTION:
		return p.parseFunctionLiteral()

	case TokenLBRACKET:
		return p.parseArrayLiteral()

	case TokenLBRACE:
		return p.parseHashLiteral()

	case TokenILLEGAL:
		// lexNumber emits a digit run that does not fit in int64 as ILLEGAL.
		if tok.Val != "" && isDigit(rune(tok.Val[0])) {
			return nil, util.NewError(p.name, util.ErrLexError,
				fmt.Sprintf("integer literal out of range: %s", tok.Val), tok.Line, tok.Pos)
		}
		return nil, p.errorf("unexpected token %v", tok)

	default:
		return nil, p.errorf("unexpected token %v", tok)
	}
}

func (p *Parser) parsePrefixExpression() (*ASTNode, error) {
	tok := p.curr
	name := NodeNOT
	if tok.ID == TokenMINUS {
		name = NodeNEG
	}

	p.advance()
	right, err := p.parseExpression(Prefix)
	if err != nil {
		return nil, err
	}

	return &ASTNode{Name: name, Token: tok, Children: []*ASTNode{right}}, nil
}

func (p *Parser) parseInfixExpression(left *ASTNode) (*ASTNode, error) {
	tok := p.curr
	name, ok := infixNodeNames[tok.ID]
	if !ok {
		return nil, p.errorf("unexpected infix operator %v", tok)
	}

	prec := precedenceOf(tok.ID)
	p.advance()
	right, err := p.parseExpression(prec)
	if err != nil {
		return nil, err
	}

	return &ASTNode{Name: name, Token: tok, Children: []*ASTNode{left, right}}, nil
}

/*
parseIndexExpression is the one genuine irregularity in the infix table:
the inner expression parses at Lowest regardless of the surrounding
precedence, and the closing ']' is required and consumed here.
*/
func (p *Parser) parseIndexExpression(left *ASTNode) (*ASTNode, error) {
	tok := p.curr
	p.advance()

	idx, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}

	if p.peek.ID != TokenRBRACKET {
		return nil, p.errorf("expected ']' after index expression, got %v", p.peek)
	}
	p.advance()

	return &ASTNode{Name: NodeINDEX, Token: tok, Children: []*ASTNode{left, idx}}, nil
}

func (p *Parser) parseCallExpression(left *ASTNode) (*ASTNode, error) {
	tok := p.curr

	args, err := p.parseExpressionList(TokenRPAREN)
	if err != nil {
		return nil, err
	}

	children := append([]*ASTNode{left}, args...)
	return &ASTNode{Name: NodeCALL, Token: tok, Children: children}, nil
}

/*
parseExpressionList parses a comma-separated list of expressions, starting
right after the opening delimiter (curr holds it), up to and including end.
*/
func (p *Parser) parseExpressionList(end TokenID) ([]*ASTNode, error) {
	var list []*ASTNode

	if p.peek.ID == end {
		p.advance()
		return list, nil
	}

	p.advance()
	first, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	list = append(list, first)

	for p.peek.ID == TokenCOMMA {
		p.advance()
		p.advance()
		e, err := p.parseExpression(Lowest)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}

	if p.peek.ID != end {
		return nil, p.errorf("expected %v, got %v", end, p.peek)
	}
	p.advance()

	return list, nil
}

func (p *Parser) parseGroupedExpression() (*ASTNode, error) {
	p.advance()

	exp, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}

	if p.peek.ID != TokenRPAREN {
		return nil, p.errorf("expected ')', got %v", p.peek)
	}
	p.advance()

	return exp, nil
}

func (p *Parser) parseIfExpression() (*ASTNode, error) {
	tok := p.curr

	if p.peek.ID != TokenLPAREN {
		return nil, p.errorf("expected '(' after 'if', got %v", p.peek)
	}
	p.advance()
	p.advance()

	cond, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}

	if p.peek.ID != TokenRPAREN {
		return nil, p.errorf("expected ')' after if condition, got %v", p.peek)
	}
	p.advance()

	if p.peek.ID != TokenLBRACE {
		return nil, p.errorf("expected '{' to start if body, got %v", p.peek)
	}
	p.advance()

	thenBlock, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}

	children := []*ASTNode{cond, thenBlock}

	if p.peek.ID == TokenELSE {
		p.advance()

		if p.peek.ID != TokenLBRACE {
			return nil, p.errorf("expected '{' to start else body, got %v", p.peek)
		}
		p.advance()

		elseBlock, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		children = append(children, elseBlock)
	}

	return &ASTNode{Name: NodeCOND, Token: tok, Children: children}, nil
}

/*
parseBlockStatement parses statements until curr is '}' (left unconsumed
for the caller) or Eof (an unterminated block, an error).
*/
func (p *Parser) parseBlockStatement() (*ASTNode, error) {
	tok := p.curr
	p.advance()

	block := &ASTNode{Name: NodeBLOCK, Token: tok}

	for p.curr.ID != TokenRBRACE {
		if p.curr.ID == TokenEOF {
			return nil, p.errorf("unterminated block, expected '}'")
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Children = append(block.Children, stmt)
		p.advance()
	}

	return block, nil
}

func (p *Parser) parseFunctionLiteral() (*ASTNode, error) {
	tok := p.curr

	if p.peek.ID != TokenLPAREN {
		return nil, p.errorf("expected '(' after 'fn', got %v", p.peek)
	}
	p.advance()

	params, err := p.parseFunctionParams()
	if err != nil {
		return nil, err
	}

	if p.peek.ID != TokenLBRACE {
		return nil, p.errorf("expected '{' to start function body, got %v", p.peek)
	}
	p.advance()

	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}

	return &ASTNode{Name: NodeFUNC, Token: tok, Params: params, Children: []*ASTNode{body}}, nil
}

func (p *Parser) parseFunctionParams() ([]string, error) {
	var params []string

	if p.peek.ID == TokenRPAREN {
		p.advance()
		return params, nil
	}

	p.advance()
	if p.curr.ID != TokenIDENT {
		return nil, p.errorf("expected parameter name, got %v", p.curr)
	}
	params = append(params, p.curr.Val)

	for p.peek.ID == TokenCOMMA {
		p.advance()
		p.advance()
		if p.curr.ID != TokenIDENT {
			return nil, p.errorf("expected parameter name, got %v", p.curr)
		}
		params = append(params, p.curr.Val)
	}

	if p.peek.ID != TokenRPAREN {
		return nil, p.errorf("expected ')' after parameter list, got %v", p.peek)
	}
	p.advance()

	return params, nil
}

func (p *Parser) parseArrayLiteral() (*ASTNode, error) {
	tok := p.curr

	elems, err := p.parseExpressionList(TokenRBRACKET)
	if err != nil {
		return nil, err
	}

	return &ASTNode{Name: NodeARRAY, Token: tok, Children: elems}, nil
}

/*
parseHashLiteral parses `{ k1: v1, k2: v2, ... }`, storing the flattened
key, value, key, value, ... sequence as Children in source order. The
evaluator, not the parser, is where duplicate-key overwrite and
hashability checks happen.
*/
func (p *Parser) parseHashLiteral() (*ASTNode, error) {
	tok := p.curr

	hash := &ASTNode{Name: NodeHASH, Token: tok}

	if p.peek.ID == TokenRBRACE {
		p.advance()
		return hash, nil
	}

	p.advance()

	for {
		key, err := p.parseExpression(Lowest)
		if err != nil {
			return nil, err
		}

		if p.peek.ID != TokenCOLON {
			return nil, p.errorf("expected ':' in hash literal, got %v", p.peek)
		}
		p.advance()
		p.advance()

		val, err := p.parseExpression(Lowest)
		if err != nil {
			return nil, err
		}

		hash.Children = append(hash.Children, key, val)

		if p.peek.ID != TokenCOMMA {
			break
		}
		p.advance()
		p.advance()
	}

	if p.peek.ID != TokenRBRACE {
		return nil, p.errorf("expected '}' to close hash literal, got %v", p.peek)
	}
	p.advance()

	return hash, nil
}
