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
	"math"

	"github.com/arbor-lang/arbor/object"
	"github.com/arbor-lang/arbor/parser"
)

/*
Arbor uses checked 64-bit arithmetic: overflow surfaces an ArithmeticError
rather than wrapping silently. The add/sub/mul helpers below compute the
wrapped result (Go's signed overflow is well-defined wraparound) and inspect
it to detect overflow, so the wrapped value itself is never observable.
*/

func addOverflows(a, b int64) bool {
	c := a + b
	return ((a ^ c) & (b ^ c)) < 0
}

func subOverflows(a, b int64) bool {
	c := a - b
	return ((a ^ b) & (a ^ c)) < 0
}

func mulOverflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	c := a * b
	return c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64)
}

func negOverflows(a int64) bool {
	return a == math.MinInt64
}

func evalIntegerInfix(node *parser.ASTNode, op string, left, right *object.Integer) (object.Object, error) {
	a, b := left.Value, right.Value

	switch op {
	case parser.NodeADD:
		if addOverflows(a, b) {
			return nil, arithmeticError(node, "integer overflow in %d + %d", a, b)
		}
		return &object.Integer{Value: a + b}, nil

	case parser.NodeSUB:
		if subOverflows(a, b) {
			return nil, arithmeticError(node, "integer overflow in %d - %d", a, b)
		}
		return &object.Integer{Value: a - b}, nil

	case parser.NodeMUL:
		if mulOverflows(a, b) {
			return nil, arithmeticError(node, "integer overflow in %d * %d", a, b)
		}
		return &object.Integer{Value: a * b}, nil

	case parser.NodeDIV:
		if b == 0 {
			return nil, arithmeticError(node, "division by zero")
		}
		if a == math.MinInt64 && b == -1 {
			return nil, arithmeticError(node, "integer overflow in %d / %d", a, b)
		}
		// Go's / already truncates toward zero for signed integers.
		return &object.Integer{Value: a / b}, nil

	case parser.NodeEQ:
		return nativeBoolToBooleanObject(a == b), nil

	case parser.NodeNOTEQ:
		return nativeBoolToBooleanObject(a != b), nil

	case parser.NodeGT:
		return nativeBoolToBooleanObject(a > b), nil

	case parser.NodeLT:
		return nativeBoolToBooleanObject(a < b), nil
	}

	return nil, typeError(node, "unknown operator: %s %s %s", left.Type(), op, right.Type())
}
