/*
 * Arbor
 *
 * Copyright 2026 The Arbor Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package parser implements the lexer, the Pratt expression parser, and the
AST node model for the Arbor language.
*/
package parser

import "fmt"

/*
TokenID identifies the kind of a lexical token.
*/
type TokenID int

/*
Token kinds. Order groups literals, operators, delimiters and keywords; the
numeric values are not meaningful outside this package.
*/
const (
	TokenILLEGAL TokenID = iota
	TokenEOF

	TokenIDENT
	TokenINT
	TokenSTRING

	TokenASSIGN
	TokenPLUS
	TokenMINUS
	TokenBANG
	TokenASTERISK
	TokenSLASH
	TokenLT
	TokenGT
	TokenEQ
	TokenNOTEQ

	TokenCOMMA
	TokenSEMICOLON
	TokenCOLON
	TokenLPAREN
	TokenRPAREN
	TokenLBRACE
	TokenRBRACE
	TokenLBRACKET
	TokenRBRACKET

	TokenLET
	TokenFUNCTION
	TokenIF
	TokenELSE
	TokenRETURN
	TokenTRUE
	TokenFALSE
)

/*
tokenNames gives a human-readable name to each TokenID, used in error
messages.
*/
var tokenNames = map[TokenID]string{
	TokenILLEGAL:   "ILLEGAL",
	TokenEOF:       "EOF",
	TokenIDENT:     "IDENT",
	TokenINT:       "INT",
	TokenSTRING:    "STRING",
	TokenASSIGN:    "=",
	TokenPLUS:      "+",
	TokenMINUS:     "-",
	TokenBANG:      "!",
	TokenASTERISK:  "*",
	TokenSLASH:     "/",
	TokenLT:        "<",
	TokenGT:        ">",
	TokenEQ:        "==",
	TokenNOTEQ:     "!=",
	TokenCOMMA:     ",",
	TokenSEMICOLON: ";",
	TokenCOLON:     ":",
	TokenLPAREN:    "(",
	TokenRPAREN:    ")",
	TokenLBRACE:    "{",
	TokenRBRACE:    "}",
	TokenLBRACKET:  "[",
	TokenRBRACKET:  "]",
	TokenLET:       "let",
	TokenFUNCTION:  "fn",
	TokenIF:        "if",
	TokenELSE:      "else",
	TokenRETURN:    "return",
	TokenTRUE:      "true",
	TokenFALSE:     "false",
}

func (id TokenID) String() string {
	if n, ok := tokenNames[id]; ok {
		return n
	}
	return fmt.Sprintf("TokenID(%d)", int(id))
}

/*
Keywords maps a scanned identifier's text to its keyword TokenID. Anything
not found here is an ordinary identifier, including the bare word `null`:
it is not a keyword, it is resolved by the evaluator.
*/
var Keywords = map[string]TokenID{
	"let":    TokenLET,
	"fn":     TokenFUNCTION,
	"if":     TokenIF,
	"else":   TokenELSE,
	"return": TokenRETURN,
	"true":   TokenTRUE,
	"false":  TokenFALSE,
}

/*
Token is a single lexical token together with its source position.
*/
type Token struct {
	ID   TokenID
	Val  string // literal text: identifier name, int digits, string contents
	Line int    // 1-based line number
	Pos  int    // 1-based column within the line
}

func (t Token) String() string {
	if t.Val != "" {
		return fmt.Sprintf("%s(%q)", t.ID, t.Val)
	}
	return t.ID.String()
}
