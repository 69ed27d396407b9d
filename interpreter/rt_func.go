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
	"github.com/arbor-lang/arbor/object"
	"github.com/arbor-lang/arbor/parser"
)

/*
evalFunctionLiteral builds a closure capturing the current environment.
The closure gets a fresh frame of its own at definition time, whose outer
is the current env, so later calls never bind parameters directly into
the scope the `fn` literal was written in.
*/
func evalFunctionLiteral(node *parser.ASTNode, env *object.Environment) object.Object {
	closureEnv := object.NewEnclosedEnvironment(env)
	return &object.Function{
		Params: node.Params,
		Body:   node.Children[0],
		Env:    closureEnv,
	}
}

func evalCallExpression(node *parser.ASTNode, env *object.Environment) (object.Object, error) {
	callee, err := Eval(node.Children[0], env)
	if err != nil {
		return nil, err
	}

	args := make([]object.Object, 0, len(node.Children)-1)
	for _, a := range node.Children[1:] {
		v, err := Eval(a, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	switch fn := callee.(type) {
	case *object.Function:
		return applyFunction(node, fn, args)
	case *object.Builtin:
		return fn.Fn(args...)
	}

	return nil, typeError(node, "not a function: %s", callee.Type())
}

func applyFunction(node *parser.ASTNode, fn *object.Function, args []object.Object) (object.Object, error) {
	if len(fn.Params) != len(args) {
		return nil, arityError(node, "wrong number of arguments: want=%d got=%d", len(fn.Params), len(args))
	}

	callEnv := object.NewEnclosedEnvironment(fn.Env)
	for i, param := range fn.Params {
		callEnv.Set(param, args[i])
	}

	result, err := evalBlock(fn.Body, callEnv)
	if err != nil {
		return nil, err
	}

	// Unwrap here: the top of a function call is one of the two sites a
	// Return marker is allowed to disappear at.
	if rv, ok := result.(*object.ReturnValue); ok {
		return rv.Value, nil
	}

	return result, nil
}
