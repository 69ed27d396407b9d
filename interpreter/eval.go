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
	"github.com/arbor-lang/arbor/config"
	"github.com/arbor-lang/arbor/object"
	"github.com/arbor-lang/arbor/parser"
)

var (
	arborTrue  = &object.Boolean{Value: true}
	arborFalse = &object.Boolean{Value: false}
	arborNull  = &object.Null{}
)

/*
Evaluate is the core's single logical entry point: parse(lex(sourceText))
followed by interpretation against env. name labels the input in error
messages (a filename, or "<repl>").
*/
func Evaluate(name string, sourceText string, env *object.Environment) (object.Object, error) {
	p := parser.NewParser(name, sourceText)

	program, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}

	currentSource = name

	return Eval(program, env)
}

/*
Eval reduces a single AST node to an Object against env, or returns an
error. It is the one recursive dispatch function the rest of this package
hangs off; per node kind, the work lives in a file grouped by concern:
rt_value.go (integer literals, prefix/infix dispatch, conditionals),
rt_arithmetic.go (checked integer math), rt_collections.go (arrays and
hashes), and rt_func.go (function literals and calls).
*/
func Eval(node *parser.ASTNode, env *object.Environment) (object.Object, error) {
	switch node.Name {

	case parser.NodePROGRAM:
		return evalProgram(node, env)

	case parser.NodeBLOCK:
		return evalBlock(node, env)

	case parser.NodeEXPRSTMT:
		return Eval(node.Children[0], env)

	case parser.NodeLET:
		return evalLetStatement(node, env)

	case parser.NodeRETURN:
		return evalReturnStatement(node, env)

	case parser.NodeINT:
		return evalIntegerLiteral(node)

	case parser.NodeBOOL:
		return nativeBoolToBooleanObject(node.Value == "true"), nil

	case parser.NodeSTRING:
		return &object.String{Value: node.Value}, nil

	case parser.NodeIDENT:
		return evalIdentifier(node, env)

	case parser.NodeNEG, parser.NodeNOT:
		return evalPrefixExpression(node, env)

	case parser.NodeADD, parser.NodeSUB, parser.NodeMUL, parser.NodeDIV,
		parser.NodeEQ, parser.NodeNOTEQ, parser.NodeGT, parser.NodeLT, parser.NodeINDEX:
		return evalInfixExpression(node, env)

	case parser.NodeCOND:
		return evalConditional(node, env)

	case parser.NodeFUNC:
		return evalFunctionLiteral(node, env), nil

	case parser.NodeCALL:
		return evalCallExpression(node, env)

	case parser.NodeARRAY:
		return evalArrayLiteral(node, env)

	case parser.NodeHASH:
		return evalHashLiteral(node, env)
	}

	return nil, typeError(node, "unknown AST node: %s", node.Name)
}

func evalProgram(node *parser.ASTNode, env *object.Environment) (object.Object, error) {
	var result object.Object = arborNull

	for _, stmt := range node.Children {
		res, err := Eval(stmt, env)
		if err != nil {
			return nil, err
		}

		if rv, ok := res.(*object.ReturnValue); ok {
			return rv.Value, nil
		}

		result = res
	}

	return result, nil
}

/*
evalBlock evaluates each statement of a block in turn. Unlike
evalProgram, a Return value stays wrapped here: only the top of a Program
and the top of a function call unwrap it. This lets `return` punch out
through arbitrarily nested `if` blocks.
*/
func evalBlock(node *parser.ASTNode, env *object.Environment) (object.Object, error) {
	var result object.Object = arborNull

	for _, stmt := range node.Children {
		res, err := Eval(stmt, env)
		if err != nil {
			return nil, err
		}

		result = res

		if _, ok := res.(*object.ReturnValue); ok {
			return result, nil
		}
	}

	return result, nil
}

func evalLetStatement(node *parser.ASTNode, env *object.Environment) (object.Object, error) {
	val, err := Eval(node.Children[0], env)
	if err != nil {
		return nil, err
	}
	return env.Set(node.Value, val), nil
}

func evalReturnStatement(node *parser.ASTNode, env *object.Environment) (object.Object, error) {
	val, err := Eval(node.Children[0], env)
	if err != nil {
		return nil, err
	}
	return &object.ReturnValue{Value: val}, nil
}

func evalIdentifier(node *parser.ASTNode, env *object.Environment) (object.Object, error) {
	if node.Value == "null" {
		return arborNull, nil
	}

	if b, ok := Builtins[node.Value]; ok {
		return b, nil
	}

	if val, ok := env.Get(node.Value); ok {
		return val, nil
	}

	if config.StrictNames() {
		return nil, nameError(node, "identifier not found: %s", node.Value)
	}

	// Default missing-name policy: an unbound identifier resolves to
	// Null rather than raising.
	return arborNull, nil
}

func nativeBoolToBooleanObject(b bool) *object.Boolean {
	if b {
		return arborTrue
	}
	return arborFalse
}

/*
isTruthy implements the truthiness table: Null, Bool(false), Int(0), and
the empty string/array/hash are false; a wrapped Return defers to the
value it carries; everything else is true.
*/
func isTruthy(obj object.Object) bool {
	switch v := obj.(type) {
	case *object.Null:
		return false
	case *object.Boolean:
		return v.Value
	case *object.Integer:
		return v.Value != 0
	case *object.String:
		return v.Value != ""
	case *object.Array:
		return len(v.Elements) != 0
	case *object.Hash:
		return v.Len() != 0
	case *object.ReturnValue:
		return isTruthy(v.Value)
	default:
		return true
	}
}
