package main

import (
	"encoding/json"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
)

func main() {
	inputPath := os.Args[1]
	outputPath := os.Args[2]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		panic(err)
	}

	var input Input
	err = json.Unmarshal(data, &input)
	if err != nil {
		panic(err)
	}

	output, err := fileToString(fileFromInput(&input))
	if err != nil {
		panic(err)
	}

	if outputPath == "-" {
		fmt.Print(output)
	} else {
		err = os.WriteFile(outputPath, []byte(output), 0o666)
		if err != nil {
			panic(err)
		}
	}
}

func fileFromInput(input *Input) *ast.File {
	dynamic := slices.Sorted(slices.Values(input.Dynamic))
	fixedKeys := slices.Sorted(maps.Keys(input.Fixed))

	file := new(ast.File)
	file.Name = ast.NewIdent("token")

	file.Decls = append(file.Decls, &ast.GenDecl{
		Tok: token.TYPE,
		Specs: []ast.Spec{
			&ast.TypeSpec{
				Name: ast.NewIdent("Type"),
				Type: ast.NewIdent("int"),
			},
		},
	})

	tokenCount := len(dynamic) + len(fixedKeys) + 1

	specs := make([]ast.Spec, 0, tokenCount)
	values := make([]ast.Expr, 0, tokenCount)

	specs = append(specs, &ast.ValueSpec{
		Names:  []*ast.Ident{ast.NewIdent("Invalid")},
		Type:   ast.NewIdent("Type"),
		Values: []ast.Expr{ast.NewIdent("iota")},
	})

	values = append(values, &ast.BasicLit{
		Kind:  token.STRING,
		Value: "\"<invalid>\"",
	})

	for _, name := range dynamic {
		specs = append(specs, &ast.ValueSpec{
			Names: []*ast.Ident{ast.NewIdent(exportName(name))},
		})
		values = append(values, &ast.BasicLit{
			Kind:  token.STRING,
			Value: strconv.Quote("<" + strings.ToLower(name) + ">"),
		})
	}

	for _, name := range fixedKeys {
		specs = append(specs, &ast.ValueSpec{
			Names: []*ast.Ident{ast.NewIdent(exportName(name))},
		})
		values = append(values, &ast.BasicLit{
			Kind:  token.STRING,
			Value: strconv.Quote(input.Fixed[name]),
		})
	}

	file.Decls = append(file.Decls, &ast.GenDecl{
		Tok:    token.CONST,
		Lparen: 1,
		Specs:  specs,
		Rparen: 1,
	})

	file.Decls = append(file.Decls, &ast.FuncDecl{
		Recv: &ast.FieldList{
			List: []*ast.Field{{
				Names: []*ast.Ident{ast.NewIdent("t")},
				Type:  ast.NewIdent("Type"),
			}},
		},
		Name: ast.NewIdent("String"),
		Type: &ast.FuncType{
			Results: &ast.FieldList{List: []*ast.Field{{Type: ast.NewIdent("string")}}},
		},
		Body: &ast.BlockStmt{
			List: []ast.Stmt{
				&ast.IfStmt{
					Cond: &ast.BinaryExpr{
						X: &ast.BinaryExpr{
							X:  ast.NewIdent("t"),
							Op: token.LSS,
							Y:  &ast.BasicLit{Kind: token.INT, Value: "0"},
						},
						Op: token.LOR,
						Y: &ast.BinaryExpr{
							X:  ast.NewIdent("t"),
							Op: token.GTR,
							Y:  specs[len(specs)-1].(*ast.ValueSpec).Names[0],
						},
					},
					Body: &ast.BlockStmt{
						List: []ast.Stmt{
							&ast.AssignStmt{
								Lhs: []ast.Expr{ast.NewIdent("t")},
								Tok: token.ASSIGN,
								Rhs: []ast.Expr{ast.NewIdent("Invalid")},
							},
						},
					},
				},
				&ast.ReturnStmt{
					Results: []ast.Expr{
						&ast.IndexExpr{
							X:     ast.NewIdent("names"),
							Index: ast.NewIdent("t"),
						},
					},
				},
			},
		},
	})

	file.Decls = append(file.Decls, &ast.GenDecl{
		Tok: token.VAR,
		Specs: []ast.Spec{&ast.ValueSpec{
			Names: []*ast.Ident{ast.NewIdent("names")},
			Values: []ast.Expr{&ast.CompositeLit{
				Type: &ast.ArrayType{Elt: ast.NewIdent("string")},
				Elts: values,
			}},
		}},
	})

	symbols := make(map[string]string, len(input.Fixed))
	for key, value := range input.Fixed {
		symbols[value] = exportName(key)
	}
	file.Decls = append(file.Decls, lookupFunc("Lookup", "symbol", symbols))

	lowered := make(map[string]string, len(dynamic))
	for _, name := range dynamic {
		lowered[strings.ToLower(name)] = exportName(name)
	}
	file.Decls = append(file.Decls, lookupFunc("LookupName", "name", lowered))

	return file
}

// lookupFunc builds a func that switches over the sorted keys of cases and
// returns the matching Type, or Invalid.
func lookupFunc(name, param string, cases map[string]string) *ast.FuncDecl {
	var clauses []ast.Stmt
	for _, key := range slices.Sorted(maps.Keys(cases)) {
		clauses = append(clauses, &ast.CaseClause{
			List: []ast.Expr{&ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(key)}},
			Body: []ast.Stmt{&ast.ReturnStmt{Results: []ast.Expr{ast.NewIdent(cases[key])}}},
		})
	}

	return &ast.FuncDecl{
		Name: ast.NewIdent(name),
		Type: &ast.FuncType{
			Params: &ast.FieldList{List: []*ast.Field{{
				Names: []*ast.Ident{ast.NewIdent(param)},
				Type:  ast.NewIdent("string"),
			}}},
			Results: &ast.FieldList{List: []*ast.Field{{Type: ast.NewIdent("Type")}}},
		},
		Body: &ast.BlockStmt{
			List: []ast.Stmt{
				&ast.SwitchStmt{
					Tag:  ast.NewIdent(param),
					Body: &ast.BlockStmt{List: clauses},
				},
				&ast.ReturnStmt{Results: []ast.Expr{ast.NewIdent("Invalid")}},
			},
		},
	}
}

func exportName(name string) string {
	return strings.ToTitle(name[:1]) + name[1:]
}

func fileToString(f *ast.File) (string, error) {
	var b strings.Builder
	b.WriteString("// Code generated by generate_tokens.go\n\n")
	err := format.Node(&b, token.NewFileSet(), f)
	return b.String(), err
}

type Input struct {
	Dynamic []string          `json:"dynamic"`
	Fixed   map[string]string `json:"fixed"`
}
