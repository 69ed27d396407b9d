/*
 * Arbor
 *
 * Copyright 2026 The Arbor Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interpreter

import (
	"strconv"

	"github.com/arbor-lang/arbor/object"
	"github.com/arbor-lang/arbor/parser"
)

func evalIntegerLiteral(node *parser.ASTNode) (object.Object, error) {
	// The lexer already validated this digit run fits in a signed 64-bit
	// integer (a LexError aborts parsing before evaluation is reached), so
	// the error here is unreachable in practice.
	n, _ := strconv.ParseInt(node.Value, 10, 64)
	return &object.Integer{Value: n}, nil
}

func evalPrefixExpression(node *parser.ASTNode, env *object.Environment) (object.Object, error) {
	right, err := Eval(node.Children[0], env)
	if err != nil {
		return nil, err
	}

	if node.Name == parser.NodeNOT {
		return nativeBoolToBooleanObject(!isTruthy(right)), nil
	}

	// Neg: unwrap a still-wrapped Return marker and operate on the value
	// it carries.
	if rv, ok := right.(*object.ReturnValue); ok {
		right = rv.Value
	}

	intObj, ok := right.(*object.Integer)
	if !ok {
		return nil, typeError(node, "unknown operator: -%s", right.Type())
	}

	if negOverflows(intObj.Value) {
		return nil, arithmeticError(node, "integer overflow negating %d", intObj.Value)
	}

	return &object.Integer{Value: -intObj.Value}, nil
}

func evalInfixExpression(node *parser.ASTNode, env *object.Environment) (object.Object, error) {
	left, err := Eval(node.Children[0], env)
	if err != nil {
		return nil, err
	}

	right, err := Eval(node.Children[1], env)
	if err != nil {
		return nil, err
	}

	if node.Name == parser.NodeINDEX {
		return evalIndexExpression(node, left, right)
	}

	switch {
	case isNull(left) && isNull(right):
		return arborNull, nil

	case isBoolean(left) && isBoolean(right) && (node.Name == parser.NodeEQ || node.Name == parser.NodeNOTEQ):
		lb, rb := left.(*object.Boolean), right.(*object.Boolean)
		eq := lb.Value == rb.Value
		if node.Name == parser.NodeNOTEQ {
			eq = !eq
		}
		return nativeBoolToBooleanObject(eq), nil

	case isInteger(left) && isInteger(right):
		return evalIntegerInfix(node, node.Name, left.(*object.Integer), right.(*object.Integer))

	case isString(left) && isString(right) && node.Name == parser.NodeADD:
		return &object.String{Value: left.(*object.String).Value + right.(*object.String).Value}, nil
	}

	return nil, typeError(node, "unknown operator: %s %s %s", left.Type(), node.Name, right.Type())
}

func isNull(o object.Object) bool    { _, ok := o.(*object.Null); return ok }
func isBoolean(o object.Object) bool { _, ok := o.(*object.Boolean); return ok }
func isInteger(o object.Object) bool { _, ok := o.(*object.Integer); return ok }
func isString(o object.Object) bool  { _, ok := o.(*object.String); return ok }

func evalConditional(node *parser.ASTNode, env *object.Environment) (object.Object, error) {
	cond, err := Eval(node.Children[0], env)
	if err != nil {
		return nil, err
	}

	if isTruthy(cond) {
		return Eval(node.Children[1], env)
	}

	if len(node.Children) == 3 {
		return Eval(node.Children[2], env)
	}

	return arborNull, nil
}
