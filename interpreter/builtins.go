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
	"fmt"

	"github.com/arbor-lang/arbor/object"
	"github.com/arbor-lang/arbor/util"
)

/*
Builtins is the fixed registry of native functions resolved at identifier
lookup time, keyed by name. It holds the five functions this language
has: no event/cron/object-instantiation builtins, since those have no
home without sinks, modules or mutation.
*/
var Builtins = map[string]*object.Builtin{
	"len":   {Name: "len", Fn: builtinLen},
	"first": {Name: "first", Fn: builtinFirst},
	"last":  {Name: "last", Fn: builtinLast},
	"rest":  {Name: "rest", Fn: builtinRest},
	"push":  {Name: "push", Fn: builtinPush},
}

func builtinArityError(name string, want string, got int) error {
	return util.NewError(currentSource, util.ErrArityError,
		fmt.Sprintf("wrong number of arguments to `%s`: want=%s got=%d", name, want, got), 0, 0)
}

func builtinTypeError(name string, detail string) error {
	return util.NewError(currentSource, util.ErrTypeError, fmt.Sprintf("argument to `%s` %s", name, detail), 0, 0)
}

func builtinLen(args ...object.Object) (object.Object, error) {
	if len(args) != 1 {
		return nil, builtinArityError("len", "1", len(args))
	}

	switch arg := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int64(len(arg.Value))}, nil
	case *object.Array:
		return &object.Integer{Value: int64(len(arg.Elements))}, nil
	case *object.Hash:
		return &object.Integer{Value: int64(arg.Len())}, nil
	}

	return nil, builtinTypeError("len", fmt.Sprintf("not supported, got %s", args[0].Type()))
}

func builtinFirst(args ...object.Object) (object.Object, error) {
	if len(args) != 1 {
		return nil, builtinArityError("first", "1", len(args))
	}

	switch arg := args[0].(type) {
	case *object.String:
		if arg.Value == "" {
			return arborNull, nil
		}
		return &object.String{Value: arg.Value[:1]}, nil

	case *object.Array:
		if len(arg.Elements) == 0 {
			return arborNull, nil
		}
		return arg.Elements[0], nil
	}

	return nil, builtinTypeError("first", fmt.Sprintf("must be ARRAY or STRING, got %s", args[0].Type()))
}

func builtinLast(args ...object.Object) (object.Object, error) {
	if len(args) != 1 {
		return nil, builtinArityError("last", "1", len(args))
	}

	switch arg := args[0].(type) {
	case *object.String:
		if arg.Value == "" {
			return arborNull, nil
		}
		return &object.String{Value: arg.Value[len(arg.Value)-1:]}, nil

	case *object.Array:
		if len(arg.Elements) == 0 {
			return arborNull, nil
		}
		return arg.Elements[len(arg.Elements)-1], nil
	}

	return nil, builtinTypeError("last", fmt.Sprintf("must be ARRAY or STRING, got %s", args[0].Type()))
}

func builtinRest(args ...object.Object) (object.Object, error) {
	if len(args) != 1 {
		return nil, builtinArityError("rest", "1", len(args))
	}

	switch arg := args[0].(type) {
	case *object.String:
		if arg.Value == "" {
			return arborNull, nil
		}
		return &object.String{Value: arg.Value[1:]}, nil

	case *object.Array:
		n := len(arg.Elements)
		if n == 0 {
			return arborNull, nil
		}
		rest := make([]object.Object, n-1)
		copy(rest, arg.Elements[1:])
		return &object.Array{Elements: rest}, nil
	}

	return nil, builtinTypeError("rest", fmt.Sprintf("must be ARRAY or STRING, got %s", args[0].Type()))
}

func builtinPush(args ...object.Object) (object.Object, error) {
	if len(args) != 2 {
		return nil, builtinArityError("push", "2", len(args))
	}

	switch first := args[0].(type) {
	case *object.String:
		second, ok := args[1].(*object.String)
		if !ok {
			return nil, builtinTypeError("push", fmt.Sprintf("cannot concatenate STRING with %s", args[1].Type()))
		}
		return &object.String{Value: first.Value + second.Value}, nil

	case *object.Array:
		newElems := make([]object.Object, len(first.Elements), len(first.Elements)+1)
		copy(newElems, first.Elements)
		newElems = append(newElems, args[1])
		return &object.Array{Elements: newElems}, nil

	case *object.Hash:
		return pushIntoHash(first, args[1])
	}

	return nil, builtinTypeError("push", fmt.Sprintf("not supported, got %s", args[0].Type()))
}

/*
pushIntoHash implements the two Hash forms of `push`: merging another
Hash in (right wins on key conflicts), or inserting a single [key, value]
pair given as a two-element Array.
*/
func pushIntoHash(base *object.Hash, second object.Object) (object.Object, error) {
	merged := object.NewHash()
	for _, k := range base.Order() {
		pair := base.Pairs[k]
		hashable := pair.Key.(object.Hashable)
		merged.Set(hashable, pair.Key, pair.Value)
	}

	switch other := second.(type) {
	case *object.Hash:
		for _, k := range other.Order() {
			pair := other.Pairs[k]
			hashable := pair.Key.(object.Hashable)
			merged.Set(hashable, pair.Key, pair.Value)
		}
		return merged, nil

	case *object.Array:
		if len(other.Elements) != 2 {
			return nil, builtinTypeError("push", "HASH entry must be a [key, value] array of length 2")
		}
		hashable, ok := other.Elements[0].(object.Hashable)
		if !ok {
			return nil, builtinTypeError("push", fmt.Sprintf("unusable as hash key: %s", other.Elements[0].Type()))
		}
		merged.Set(hashable, other.Elements[0], other.Elements[1])
		return merged, nil
	}

	return nil, builtinTypeError("push", fmt.Sprintf("second argument to HASH push must be a HASH or [key, value] ARRAY, got %s", second.Type()))
}
