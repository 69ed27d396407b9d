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

func evalArrayLiteral(node *parser.ASTNode, env *object.Environment) (object.Object, error) {
	elements := make([]object.Object, len(node.Children))

	for i, c := range node.Children {
		v, err := Eval(c, env)
		if err != nil {
			return nil, err
		}
		elements[i] = v
	}

	return &object.Array{Elements: elements}, nil
}

/*
evalHashLiteral resolves each key expression before checking it for
hashability, rather than rejecting non-scalar keys at parse time:
`{1+1: 2}` is fine, `{fn(){}: 2}` fails only once evaluated.
*/
func evalHashLiteral(node *parser.ASTNode, env *object.Environment) (object.Object, error) {
	hash := object.NewHash()

	for i := 0; i < len(node.Children); i += 2 {
		keyNode, valNode := node.Children[i], node.Children[i+1]

		keyObj, err := Eval(keyNode, env)
		if err != nil {
			return nil, err
		}

		hashable, ok := keyObj.(object.Hashable)
		if !ok {
			return nil, typeError(keyNode, "unusable as hash key: %s", keyObj.Type())
		}

		val, err := Eval(valNode, env)
		if err != nil {
			return nil, err
		}

		hash.Set(hashable, keyObj, val)
	}

	return hash, nil
}

func evalIndexExpression(node *parser.ASTNode, left, index object.Object) (object.Object, error) {
	switch container := left.(type) {
	case *object.Array:
		idx, ok := index.(*object.Integer)
		if !ok {
			return nil, typeError(node, "array index must be an integer, got %s", index.Type())
		}
		if idx.Value < 0 || idx.Value >= int64(len(container.Elements)) {
			return arborNull, nil
		}
		return container.Elements[idx.Value], nil

	case *object.Hash:
		hashable, ok := index.(object.Hashable)
		if !ok {
			return nil, typeError(node, "unusable as hash key: %s", index.Type())
		}
		if val, ok := container.Get(hashable); ok {
			return val, nil
		}
		return arborNull, nil
	}

	return nil, typeError(node, "index operator not supported: %s", left.Type())
}
