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

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders root to the bracketed textual form `--verbose` prints
// (spec.md §8, "Round-trip / idempotence laws": equal ASTs render to
// equal strings; the format itself need not be reversible).
func Dump(root *Root) string {
	var b strings.Builder
	b.WriteString("Root[")
	for i, item := range root.Items {
		if i != 0 {
			b.WriteString(", ")
		}
		dumpItem(&b, item)
	}
	b.WriteString("]")
	return b.String()
}

func dumpItem(b *strings.Builder, item Item) {
	switch it := item.(type) {
	case *FnDef:
		b.WriteString("FnDef[proto=")
		dumpProto(b, it.Proto)
		b.WriteString(", body=")
		dumpBlock(b, it.Body)
		b.WriteString("]")
	case *ExternBlock:
		b.WriteString("ExternBlock[")
		for i, p := range it.Protos {
			if i != 0 {
				b.WriteString(", ")
			}
			dumpProto(b, p)
		}
		b.WriteString("]")
	case *Import:
		fmt.Fprintf(b, "Import(%q)", it.Path)
	}
}

func dumpProto(b *strings.Builder, p *FnProto) {
	fmt.Fprintf(b, "FnProto(name=%q, params=[", p.Name)
	for i, param := range p.Params {
		if i != 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s: ", param.Name)
		dumpTy(b, param.Ty)
	}
	b.WriteString("], ret_ty=")
	dumpTy(b, p.RetTy)
	fmt.Fprintf(b, ", vis=%s)", visName(p.Visibility))
}

func visName(v Visibility) string {
	if v == Public {
		return "Public"
	}
	return "Private"
}

func dumpTy(b *strings.Builder, ty Ty) {
	switch t := ty.(type) {
	case nil:
		b.WriteString("<nil>")
	case *PrimitiveTy:
		fmt.Fprintf(b, "Prim(%q)", t.Name)
	case *PointerTy:
		mut := "const"
		if !t.IsConst {
			mut = "mut"
		}
		b.WriteString("Pointer{child=")
		dumpTy(b, t.Child)
		fmt.Fprintf(b, ", is_const=%v(%s)}", t.IsConst, mut)
	case *ArrayTy:
		b.WriteString("Array{child=")
		dumpTy(b, t.Child)
		b.WriteString(", size=")
		dumpExpr(b, t.Size)
		b.WriteString("}")
	}
}

func dumpBlock(b *strings.Builder, blk *Block) {
	b.WriteString("Block[")
	for i, s := range blk.Stmts {
		if i != 0 {
			b.WriteString(", ")
		}
		dumpStmt(b, s)
	}
	b.WriteString("]")
}

func dumpStmt(b *strings.Builder, s Stmt) {
	switch st := s.(type) {
	case *Block:
		dumpBlock(b, st)
	case *Local:
		b.WriteString("Local(name=")
		fmt.Fprintf(b, "%q", st.Name)
		b.WriteString(", ty=")
		dumpTy(b, st.Ty)
		fmt.Fprintf(b, ", is_const=%v", st.IsConst)
		if st.Kind == Init {
			b.WriteString(", init=")
			dumpExpr(b, st.InitVal)
		}
		b.WriteString(")")
	case *ExprStmt:
		b.WriteString("Expr(")
		dumpExpr(b, st.X)
		b.WriteString(")")
	case *ReturnStmt:
		b.WriteString("Return(")
		if st.Value != nil {
			dumpExpr(b, st.Value)
		}
		b.WriteString(")")
	case *If:
		b.WriteString("If(cond=")
		dumpExpr(b, st.Cond)
		b.WriteString(", then=")
		dumpBlock(b, st.Then)
		if st.Els != nil {
			b.WriteString(", else=")
			switch els := st.Els.(type) {
			case *Block:
				dumpBlock(b, els)
			case *If:
				dumpStmt(b, els)
			}
		}
		b.WriteString(")")
	}
}

func dumpExpr(b *strings.Builder, e Expr) {
	switch ex := e.(type) {
	case nil:
		b.WriteString("<nil>")
	case *LitExpr:
		b.WriteString("Lit(")
		dumpLit(b, ex.Value)
		b.WriteString(")")
	case *BinaryExpr:
		b.WriteString("Binary(")
		b.WriteString(ex.Op.String())
		b.WriteString(", ")
		dumpExpr(b, ex.L)
		b.WriteString(", ")
		dumpExpr(b, ex.R)
		b.WriteString(")")
	case *UnaryExpr:
		b.WriteString("Unary(")
		b.WriteString(ex.Op.String())
		b.WriteString(", ")
		dumpExpr(b, ex.Operand)
		b.WriteString(")")
	case *AssignExpr:
		b.WriteString("Assign(")
		dumpExpr(b, ex.Target)
		b.WriteString(", ")
		dumpExpr(b, ex.Value)
		b.WriteString(")")
	case *CallExpr:
		b.WriteString("Call(")
		dumpExpr(b, ex.Callee)
		b.WriteString(", [")
		for i, a := range ex.Args {
			if i != 0 {
				b.WriteString(", ")
			}
			dumpExpr(b, a)
		}
		b.WriteString("])")
	case *IndexExpr:
		b.WriteString("Index(")
		dumpExpr(b, ex.Base)
		b.WriteString(", ")
		dumpExpr(b, ex.Index)
		b.WriteString(")")
	case *IdentExpr:
		fmt.Fprintf(b, "Ident(%q)", ex.Name)
	case *CastExpr:
		b.WriteString("Cast(")
		dumpExpr(b, ex.Value)
		b.WriteString(", ")
		dumpTy(b, ex.Ty)
		b.WriteString(")")
	}
}

func dumpLit(b *strings.Builder, l Lit) {
	switch lit := l.(type) {
	case *IntLit:
		fmt.Fprintf(b, "Int(%s)", lit.Raw)
	case *StrLit:
		fmt.Fprintf(b, "Str(%s)", strconv.Quote(lit.Value))
	case *BoolLit:
		fmt.Fprintf(b, "Bool(%v)", lit.Value)
	}
}
