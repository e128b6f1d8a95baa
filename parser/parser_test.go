// Copyright 2026 The dalc authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dal-lang/dalc/ast"
	"github.com/dal-lang/dalc/source"
	"github.com/dal-lang/dalc/token"
)

func mustParse(t *testing.T, src string) *ast.Root {
	t.Helper()
	f := source.New("t.dal", "t.dal", []byte(src))
	stream, err := token.NewLexer(f).Tokenize()
	require.NoError(t, err)
	root, err := Parse(f, stream)
	require.NoError(t, err)
	return root
}

func TestS1HelloWorld(t *testing.T) {
	root := mustParse(t, `fn main() { println("Hello, world!") }`)
	want := `Root[FnDef[proto=FnProto(name="main", params=[], ret_ty=Prim("void"), vis=Private), body=Block[Expr(Call(Ident("println"), [Lit(Str("Hello, world!"))]))]]]`
	assert.Equal(t, want, ast.Dump(root))
}

func TestS2PublicMainBareReturn(t *testing.T) {
	root := mustParse(t, `pub fn main() { return }`)
	require.Len(t, root.Items, 1)
	def := root.Items[0].(*ast.FnDef)
	assert.Equal(t, ast.Public, def.Proto.Visibility)
	require.Len(t, def.Body.Stmts, 1)
	ret := def.Body.Stmts[0].(*ast.ReturnStmt)
	assert.Nil(t, ret.Value)
}

func TestS3ExternBlockWithPointerParam(t *testing.T) {
	src := `
import "std"
extern { pub fn x(t: *const u8) -> u8 }
pub fn main() { let x = 10 return }
`
	root := mustParse(t, src)
	require.Len(t, root.Items, 3)

	imp, ok := root.Items[0].(*ast.Import)
	require.True(t, ok)
	assert.Equal(t, "std", imp.Path)

	extern, ok := root.Items[1].(*ast.ExternBlock)
	require.True(t, ok)
	require.Len(t, extern.Protos, 1)
	proto := extern.Protos[0]
	assert.Equal(t, ast.Public, proto.Visibility)
	assert.Equal(t, "x", proto.Name)
	require.Len(t, proto.Params, 1)

	ptrTy, ok := proto.Params[0].Ty.(*ast.PointerTy)
	require.True(t, ok)
	assert.True(t, ptrTy.IsConst)
	prim, ok := ptrTy.Child.(*ast.PrimitiveTy)
	require.True(t, ok)
	assert.Equal(t, "u8", prim.Name)

	retTy, ok := proto.RetTy.(*ast.PrimitiveTy)
	require.True(t, ok)
	assert.Equal(t, "u8", retTy.Name)

	def, ok := root.Items[2].(*ast.FnDef)
	require.True(t, ok)
	assert.Equal(t, ast.Public, def.Proto.Visibility)
}

func TestS4Precedence(t *testing.T) {
	root := mustParse(t, `fn f() { 1 + 2 * 3 == 7 }`)
	def := root.Items[0].(*ast.FnDef)
	stmt := def.Body.Stmts[0].(*ast.ExprStmt)
	eq := stmt.X.(*ast.BinaryExpr)
	assert.Equal(t, ast.Eq, eq.Op)

	add := eq.L.(*ast.BinaryExpr)
	assert.Equal(t, ast.Add, add.Op)

	mul := add.R.(*ast.BinaryExpr)
	assert.Equal(t, ast.Mul, mul.Op)

	seven := eq.R.(*ast.LitExpr).Value.(*ast.IntLit)
	assert.Equal(t, "7", seven.Raw)
}

func TestS5ShadowedLet(t *testing.T) {
	root := mustParse(t, `fn f() { let x = 1 let mut x = 2 }`)
	def := root.Items[0].(*ast.FnDef)
	require.Len(t, def.Body.Stmts, 2)

	first := def.Body.Stmts[0].(*ast.Local)
	assert.Equal(t, "x", first.Name)
	assert.True(t, first.IsConst)
	assert.Equal(t, ast.Init, first.Kind)
	assert.Equal(t, "1", first.InitVal.(*ast.LitExpr).Value.(*ast.IntLit).Raw)

	second := def.Body.Stmts[1].(*ast.Local)
	assert.Equal(t, "x", second.Name)
	assert.False(t, second.IsConst)
	assert.Equal(t, "2", second.InitVal.(*ast.LitExpr).Value.(*ast.IntLit).Raw)
}

func TestS6UnknownPrimitiveStillParses(t *testing.T) {
	// sema, not the parser, is responsible for rejecting the unknown
	// primitive name; syntactically "u7" is an ordinary type identifier.
	root := mustParse(t, `fn f(x: u7) {}`)
	def := root.Items[0].(*ast.FnDef)
	ty := def.Proto.Params[0].Ty.(*ast.PrimitiveTy)
	assert.Equal(t, "u7", ty.Name)
}

func TestEmptyFileProducesEmptyRoot(t *testing.T) {
	root := mustParse(t, ``)
	assert.Empty(t, root.Items)
}

func TestUnaryBindsTighterThanCast(t *testing.T) {
	// SPEC_FULL.md §12.2: unary `-` against `as`-casts.
	root := mustParse(t, `fn f() { -x as i32 }`)
	def := root.Items[0].(*ast.FnDef)
	stmt := def.Body.Stmts[0].(*ast.ExprStmt)
	cast := stmt.X.(*ast.CastExpr)

	neg := cast.Value.(*ast.UnaryExpr)
	assert.Equal(t, ast.Neg, neg.Op)
	ident := neg.Operand.(*ast.IdentExpr)
	assert.Equal(t, "x", ident.Name)

	ty := cast.Ty.(*ast.PrimitiveTy)
	assert.Equal(t, "i32", ty.Name)
}

func TestChainedPostfixAccess(t *testing.T) {
	// SPEC_FULL.md §12.2: chained postfix access (an index, then a call).
	root := mustParse(t, `fn f() { a[0](1) }`)
	def := root.Items[0].(*ast.FnDef)
	stmt := def.Body.Stmts[0].(*ast.ExprStmt)

	call := stmt.X.(*ast.CallExpr)
	require.Len(t, call.Args, 1)
	assert.Equal(t, "1", call.Args[0].(*ast.LitExpr).Value.(*ast.IntLit).Raw)

	idx := call.Callee.(*ast.IndexExpr)
	ident := idx.Base.(*ast.IdentExpr)
	assert.Equal(t, "a", ident.Name)
	assert.Equal(t, "0", idx.Index.(*ast.LitExpr).Value.(*ast.IntLit).Raw)
}

func TestIfElseIfChain(t *testing.T) {
	root := mustParse(t, `fn f() { if a { return 1 } else if b { return 2 } else { return 3 } }`)
	def := root.Items[0].(*ast.FnDef)
	top := def.Body.Stmts[0].(*ast.If)

	elseIf, ok := top.Els.(*ast.If)
	require.True(t, ok)
	elseBlock, ok := elseIf.Els.(*ast.Block)
	require.True(t, ok)
	require.Len(t, elseBlock.Stmts, 1)
}

func TestArrayTypeGrammar(t *testing.T) {
	root := mustParse(t, `fn f(x: [i32; 4]) {}`)
	def := root.Items[0].(*ast.FnDef)
	arr := def.Proto.Params[0].Ty.(*ast.ArrayTy)
	child := arr.Child.(*ast.PrimitiveTy)
	assert.Equal(t, "i32", child.Name)
	size := arr.Size.(*ast.LitExpr).Value.(*ast.IntLit)
	assert.Equal(t, "4", size.Raw)
}

func TestStringEscapeDecoding(t *testing.T) {
	root := mustParse(t, `fn f() { "a\n\t\\\"b" }`)
	def := root.Items[0].(*ast.FnDef)
	stmt := def.Body.Stmts[0].(*ast.ExprStmt)
	str := stmt.X.(*ast.LitExpr).Value.(*ast.StrLit)
	assert.Equal(t, "a\n\t\\\"b", str.Value)
}

func TestUnknownEscapeIsHardError(t *testing.T) {
	f := source.New("t.dal", "t.dal", []byte(`fn f() { "a\qb" }`))
	stream, err := token.NewLexer(f).Tokenize()
	require.NoError(t, err)
	_, err = Parse(f, stream)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid escape sequence")
}

func TestUnexpectedTopLevelTokenIsError(t *testing.T) {
	f := source.New("t.dal", "t.dal", []byte(`123`))
	stream, err := token.NewLexer(f).Tokenize()
	require.NoError(t, err)
	_, err = Parse(f, stream)
	require.Error(t, err)
}

func TestMissingReturnTypeDefaultsToVoid(t *testing.T) {
	root := mustParse(t, `fn f() {}`)
	def := root.Items[0].(*ast.FnDef)
	ty := def.Proto.RetTy.(*ast.PrimitiveTy)
	assert.Equal(t, ast.Void, ty.Name)
}

func TestUninitializedLocalWithTypeAnnotation(t *testing.T) {
	root := mustParse(t, `fn f() { let x: i32 }`)
	def := root.Items[0].(*ast.FnDef)
	local := def.Body.Stmts[0].(*ast.Local)
	assert.Equal(t, ast.Decl, local.Kind)
	assert.Nil(t, local.InitVal)
	ty := local.Ty.(*ast.PrimitiveTy)
	assert.Equal(t, "i32", ty.Name)
}
