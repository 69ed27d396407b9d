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
Package util contains utility definitions and functions for the Arbor
interpreter: the error taxonomy and the ambient logging stack.
*/
package util

import (
	"encoding/json"
	"errors"
	"fmt"
)

/*
ArborError is an error raised anywhere in the lex/parse/eval pipeline. Type
identifies the kind of failure (compare by identity against the Err*
sentinels below); Detail carries the human-readable specifics.
*/
type ArborError struct {
	Source string // Name of the source which was given to the lexer
	Type   error  // Error kind (use for equality checks, never string-match Error())
	Detail string // Details of this error
	Line   int    // Line of the error (1-based, 0 if unknown)
	Pos    int    // Column of the error (1-based, 0 if unknown)
}

/*
Error kind sentinels, compared by identity against ArborError.Type, never
by string-matching Error(). ErrNameError is only raised when
config.MissingNamePolicy is set to "strict"; by default a missing
identifier resolves to Null instead.
*/
var (
	ErrLexError        = errors.New("Lexical error")
	ErrParseError      = errors.New("Parse error")
	ErrTypeError       = errors.New("Type error")
	ErrArityError      = errors.New("Arity error")
	ErrArithmeticError = errors.New("Arithmetic error")
	ErrNameError       = errors.New("Name error")
)

/*
NewError creates a new ArborError.
*/
func NewError(source string, t error, detail string, line int, pos int) error {
	return &ArborError{source, t, detail, line, pos}
}

/*
Error returns a human-readable string representation of this error.
*/
func (e *ArborError) Error() string {
	ret := fmt.Sprintf("arbor error in %s: %v (%v)", e.Source, e.Type, e.Detail)

	if e.Line != 0 {
		ret = fmt.Sprintf("%s (Line:%d Pos:%d)", ret, e.Line, e.Pos)
	}

	return ret
}

/*
ToJSONObject returns this error as a JSON object.
*/
func (e *ArborError) ToJSONObject() map[string]interface{} {
	t := ""
	if e.Type != nil {
		t = e.Type.Error()
	}
	return map[string]interface{}{
		"Source": e.Source,
		"Type":   t,
		"Detail": e.Detail,
		"Line":   e.Line,
		"Pos":    e.Pos,
	}
}

/*
MarshalJSON serializes this error into a JSON string.
*/
func (e *ArborError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.ToJSONObject())
}
