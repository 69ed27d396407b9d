/*
 * Arbor
 *
 * Copyright 2026 The Arbor Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package object

import (
	"bytes"
	"fmt"
	"sort"
)

/*
Environment is a lexically scoped variable store: a mapping from name to
Object plus an optional outer link. Lookup walks outward; Set always binds
in the innermost frame only (there is no assignment statement that could
reach through to an outer frame: every `let` shadows or overwrites locally).

A Function value holds a handle to the Environment active at its definition
site; calling it allocates a fresh inner Environment whose outer points at
that captured handle, so a recursive `let f = fn(...) { ... f(...) ... };`
closes a cycle between the environment and the function value. Go's garbage
collector reclaims such cycles without help, so no arena or refcounting is
needed here.
*/
type Environment struct {
	storage map[string]Object
	outer   *Environment
}

/*
NewEnvironment creates a fresh, parentless environment.
*/
func NewEnvironment() *Environment {
	return &Environment{storage: make(map[string]Object)}
}

/*
NewEnclosedEnvironment creates a new environment whose outer link is the
given environment.
*/
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

/*
Get looks up a name: innermost frame first, then each outer frame in turn.
The bool result is false on a total miss; callers decide what a miss means
(the evaluator's default policy is to resolve a miss to Null).
*/
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.storage[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return obj, ok
}

/*
Set binds name to value in this frame only and returns the bound value.
*/
func (e *Environment) Set(name string, val Object) Object {
	e.storage[name] = val
	return val
}

/*
Outer returns the enclosing environment, or nil at the root.
*/
func (e *Environment) Outer() *Environment {
	return e.outer
}

/*
String renders the environment chain, innermost first, one `name = value`
line per binding, names sorted within each frame.
*/
func (e *Environment) String() string {
	var out bytes.Buffer

	names := make([]string, 0, len(e.storage))
	for k := range e.storage {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, n := range names {
		fmt.Fprintf(&out, "%s = %s\n", n, e.storage[n].Inspect())
	}

	if e.outer != nil {
		out.WriteString(e.outer.String())
	}

	return out.String()
}
