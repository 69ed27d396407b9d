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
	"testing"

	"github.com/arbor-lang/arbor/object"
	"github.com/arbor-lang/arbor/util"
)

func testEval(t *testing.T, input string) (object.Object, error) {
	t.Helper()
	env := object.NewEnvironment()
	return Evaluate("test", input, env)
}

func mustEval(t *testing.T, input string) object.Object {
	t.Helper()
	result, err := testEval(t, input)
	if err != nil {
		t.Fatalf("unexpected error evaluating %q: %v", input, err)
	}
	return result
}

func testIntegerObject(t *testing.T, obj object.Object, want int64) {
	t.Helper()
	intObj, ok := obj.(*object.Integer)
	if !ok {
		t.Fatalf("expected Integer, got %T (%+v)", obj, obj)
	}
	if intObj.Value != want {
		t.Errorf("expected %d, got %d", want, intObj.Value)
	}
}

func testBooleanObject(t *testing.T, obj object.Object, want bool) {
	t.Helper()
	boolObj, ok := obj.(*object.Boolean)
	if !ok {
		t.Fatalf("expected Boolean, got %T (%+v)", obj, obj)
	}
	if boolObj.Value != want {
		t.Errorf("expected %t, got %t", want, boolObj.Value)
	}
}

func testNullObject(t *testing.T, obj object.Object) {
	t.Helper()
	if _, ok := obj.(*object.Null); !ok {
		t.Fatalf("expected Null, got %T (%+v)", obj, obj)
	}
}

func TestEvalIntegerExpression(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"5", 5},
		{"10", 10},
		{"-5", -5},
		{"-10", -10},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2 * 2", 32},
		{"-50 + 100 + -50", 0},
		{"5 * 2 + 10", 20},
		{"5 + 2 * 10", 25},
		{"20 + 2 * -10", 0},
		{"50 / 2 * 2 + 10", 60},
		{"2 * (5 + 10)", 30},
		{"3 * 3 * 3 + 10", 37},
		{"3 * (3 * 3) + 10", 37},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", 50},
		{"7 / 2", 3},
		{"-7 / 2", -3},
	}

	for _, tt := range tests {
		testIntegerObject(t, mustEval(t, tt.input), tt.want)
	}
}

func TestEvalBooleanExpression(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 < 1", false},
		{"1 > 1", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"1 == 2", false},
		{"1 != 2", true},
		{"true == true", true},
		{"false == false", true},
		{"true == false", false},
		{"true != false", true},
		{"(1 < 2) == true", true},
		{"(1 < 2) == false", false},
	}

	for _, tt := range tests {
		testBooleanObject(t, mustEval(t, tt.input), tt.want)
	}
}

func TestEvalBangOperator(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"!true", false},
		{"!false", true},
		{"!5", false},
		{"!!true", true},
		{"!!false", false},
		{"!!5", true},
		{"!0", true},
		{`!""`, true},
		{"![]", true},
		{"!{}", true},
	}

	for _, tt := range tests {
		testBooleanObject(t, mustEval(t, tt.input), tt.want)
	}
}

func TestEvalIfElseExpressions(t *testing.T) {
	tests := []struct {
		input string
		want  interface{}
	}{
		{"if (true) { 10 }", int64(10)},
		{"if (false) { 10 }", nil},
		{"if (1) { 10 }", int64(10)},
		{"if (1 < 2) { 10 }", int64(10)},
		{"if (1 > 2) { 10 }", nil},
		{"if (1 > 2) { 10 } else { 20 }", int64(20)},
		{"if (1 < 2) { 10 } else { 20 }", int64(10)},
	}

	for _, tt := range tests {
		result := mustEval(t, tt.input)
		if tt.want == nil {
			testNullObject(t, result)
			continue
		}
		testIntegerObject(t, result, tt.want.(int64))
	}
}

func TestEvalReturnStatements(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"return 10;", 10},
		{"return 10; 9;", 10},
		{"return 2 * 5; 9;", 10},
		{"9; return 2 * 5; 9;", 10},
		{
			`
if (10 > 1) {
  if (10 > 1) {
    return 10;
  }
  return 1;
}
`, 10,
		},
	}

	for _, tt := range tests {
		testIntegerObject(t, mustEval(t, tt.input), tt.want)
	}
}

func TestEvalLetStatements(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"let a = 5; a;", 5},
		{"let a = 5 * 5; a;", 25},
		{"let a = 5; let b = a; b;", 5},
		{"let a = 5; let b = a; let c = a + b + 5; c;", 15},
	}

	for _, tt := range tests {
		testIntegerObject(t, mustEval(t, tt.input), tt.want)
	}
}

func TestFunctionApplicationAndClosures(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"let identity = fn(x) { x; }; identity(5);", 5},
		{"let identity = fn(x) { return x; }; identity(5);", 5},
		{"let double = fn(x) { x * 2; }; double(5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5, 5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5 + 5, add(5, 5));", 20},
		{"fn(x) { x; }(5)", 5},
		{
			`
let newAdder = fn(x) {
  fn(y) { x + y };
};
let addTwo = newAdder(2);
addTwo(2);
`, 4,
		},
	}

	for _, tt := range tests {
		testIntegerObject(t, mustEval(t, tt.input), tt.want)
	}
}

func TestRecursiveFunction(t *testing.T) {
	input := `
let fact = fn(n) {
  if (n < 2) { return 1; }
  return n * fact(n - 1);
};
fact(5);
`
	testIntegerObject(t, mustEval(t, input), 120)
}

func TestClosuresDoNotLeakIntoDefiningScope(t *testing.T) {
	input := `
let f = fn() {
  let x = 1;
  x;
};
f();
x;
`
	result := mustEval(t, input)
	testNullObject(t, result)
}

func TestStringLiteralAndConcatenation(t *testing.T) {
	result := mustEval(t, `"Hello" + " " + "World!"`)
	str, ok := result.(*object.String)
	if !ok {
		t.Fatalf("expected String, got %T", result)
	}
	if str.Value != "Hello World!" {
		t.Errorf("expected %q, got %q", "Hello World!", str.Value)
	}
}

func TestArrayLiteralsAndIndexing(t *testing.T) {
	tests := []struct {
		input string
		want  interface{}
	}{
		{"[1, 2 * 2, 3 + 3][0]", int64(1)},
		{"[1, 2, 3][1]", int64(2)},
		{"[1, 2, 3][2]", int64(3)},
		{"let i = 0; [1][i];", int64(1)},
		{"[1, 2, 3][1 + 1];", int64(3)},
		{"let myArray = [1, 2, 3]; myArray[2];", int64(3)},
		{"let myArray = [1, 2, 3]; myArray[0] + myArray[1] + myArray[2];", int64(6)},
		{"[1, 2, 3][3]", nil},
		{"[1, 2, 3][-1]", nil},
	}

	for _, tt := range tests {
		result := mustEval(t, tt.input)
		if tt.want == nil {
			testNullObject(t, result)
			continue
		}
		testIntegerObject(t, result, tt.want.(int64))
	}
}

func TestHashLiteralsAndIndexing(t *testing.T) {
	input := `
let two = "two";
{
  "one": 10 - 9,
  two: 1 + 1,
  "thr" + "ee": 6 / 2,
  4: 4,
  true: 5,
  false: 6
}
`
	result := mustEval(t, input)
	hash, ok := result.(*object.Hash)
	if !ok {
		t.Fatalf("expected Hash, got %T", result)
	}

	expected := map[object.HashKey]int64{
		(&object.String{Value: "one"}).HashKey():   1,
		(&object.String{Value: "two"}).HashKey():   2,
		(&object.String{Value: "three"}).HashKey(): 3,
		(&object.Integer{Value: 4}).HashKey():      4,
		arborTrue.HashKey():                         5,
		arborFalse.HashKey():                        6,
	}

	if hash.Len() != len(expected) {
		t.Fatalf("expected %d pairs, got %d", len(expected), hash.Len())
	}

	for key, want := range expected {
		pair, ok := hash.Pairs[key]
		if !ok {
			t.Errorf("missing key %+v", key)
			continue
		}
		testIntegerObject(t, pair.Value, want)
	}
}

func TestHashIndexMissingKeyIsNull(t *testing.T) {
	testNullObject(t, mustEval(t, `{"foo": 5}["bar"]`))
}

func TestUnusableHashKeyFailsAtEvaluation(t *testing.T) {
	_, err := testEval(t, `{fn(x) { x }: "oops"}`)
	if err == nil {
		t.Fatal("expected a type error evaluating a function-keyed hash literal")
	}
	assertErrorKind(t, err, util.ErrTypeError)
}

func TestMissingIdentifierResolvesToNullByDefault(t *testing.T) {
	testNullObject(t, mustEval(t, "foobar"))
}

func TestDivisionByZeroIsArithmeticError(t *testing.T) {
	_, err := testEval(t, "1 / 0")
	if err == nil {
		t.Fatal("expected an arithmetic error for division by zero")
	}
	assertErrorKind(t, err, util.ErrArithmeticError)
}

func TestIntegerOverflowIsArithmeticError(t *testing.T) {
	_, err := testEval(t, "9223372036854775807 + 1")
	if err == nil {
		t.Fatal("expected an arithmetic error for integer overflow")
	}
	assertErrorKind(t, err, util.ErrArithmeticError)
}

func TestTypeErrorsOnIllegalOperandCombinations(t *testing.T) {
	tests := []string{
		"5 + true;",
		"5 + true; 5;",
		"-true",
		`"foo" - "bar"`,
		"true + false;",
		"5; true + false; 5",
		"if (10 > 1) { true + false; }",
		`"foo" == "foo"`,
	}

	for _, input := range tests {
		_, err := testEval(t, input)
		if err == nil {
			t.Fatalf("expected a type error for %q", input)
		}
		assertErrorKind(t, err, util.ErrTypeError)
	}
}

func TestBuiltinFunctions(t *testing.T) {
	tests := []struct {
		input string
		want  interface{}
	}{
		{`len("")`, int64(0)},
		{`len("four")`, int64(4)},
		{`len("hello world")`, int64(11)},
		{`len([1, 2, 3])`, int64(3)},
		{`len([])`, int64(0)},
		{`len({"a": 1})`, int64(1)},
		{`first([1, 2, 3])`, int64(1)},
		{`first([])`, nil},
		{`last([1, 2, 3])`, int64(3)},
		{`last([])`, nil},
	}

	for _, tt := range tests {
		result := mustEval(t, tt.input)
		if tt.want == nil {
			testNullObject(t, result)
			continue
		}
		testIntegerObject(t, result, tt.want.(int64))
	}
}

func TestBuiltinRestAndPush(t *testing.T) {
	result := mustEval(t, `rest([1, 2, 3])`)
	arr, ok := result.(*object.Array)
	if !ok || len(arr.Elements) != 2 {
		t.Fatalf("expected a 2-element array, got %T %+v", result, result)
	}
	testIntegerObject(t, arr.Elements[0], 2)
	testIntegerObject(t, arr.Elements[1], 3)

	result = mustEval(t, `push([1, 2], 3)`)
	arr, ok = result.(*object.Array)
	if !ok || len(arr.Elements) != 3 {
		t.Fatalf("expected a 3-element array, got %T %+v", result, result)
	}
	testIntegerObject(t, arr.Elements[2], 3)

	original, err := testEval(t, `let a = [1, 2]; push(a, 3); a;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	origArr, ok := original.(*object.Array)
	if !ok || len(origArr.Elements) != 2 {
		t.Fatalf("push must not mutate its argument, got %+v", original)
	}
}

func TestBuiltinLenWrongArgCountIsArityError(t *testing.T) {
	_, err := testEval(t, `len(1, 2)`)
	if err == nil {
		t.Fatal("expected an arity error")
	}
	assertErrorKind(t, err, util.ErrArityError)
}

func TestBuiltinLenUnsupportedTypeIsTypeError(t *testing.T) {
	_, err := testEval(t, `len(5)`)
	if err == nil {
		t.Fatal("expected a type error")
	}
	assertErrorKind(t, err, util.ErrTypeError)
}

func assertErrorKind(t *testing.T, err error, want error) {
	t.Helper()
	arborErr, ok := err.(*util.ArborError)
	if !ok {
		t.Fatalf("expected *util.ArborError, got %T (%v)", err, err)
	}
	if arborErr.Type != want {
		t.Errorf("expected error kind %v, got %v", want, arborErr.Type)
	}
}
