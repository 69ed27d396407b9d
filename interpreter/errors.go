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
Package interpreter implements the evaluator: a recursive walk of a parsed
Program against an object.Environment, producing an object.Object.
*/
package interpreter

import (
	"fmt"

	"github.com/arbor-lang/arbor/parser"
	"github.com/arbor-lang/arbor/util"
)

/*
currentSource names the input currently being evaluated, for error
messages. Evaluate sets it before walking the tree. The evaluator is
single-threaded, so a package-level var is safe: there is never more
than one evaluation in flight.
*/
var currentSource = "eval"

func evalError(node *parser.ASTNode, kind error, format string, args ...interface{}) error {
	return util.NewError(currentSource, kind, fmt.Sprintf(format, args...), node.Token.Line, node.Token.Pos)
}

func typeError(node *parser.ASTNode, format string, args ...interface{}) error {
	return evalError(node, util.ErrTypeError, format, args...)
}

func arityError(node *parser.ASTNode, format string, args ...interface{}) error {
	return evalError(node, util.ErrArityError, format, args...)
}

func arithmeticError(node *parser.ASTNode, format string, args ...interface{}) error {
	return evalError(node, util.ErrArithmeticError, format, args...)
}

func nameError(node *parser.ASTNode, format string, args ...interface{}) error {
	return evalError(node, util.ErrNameError, format, args...)
}
