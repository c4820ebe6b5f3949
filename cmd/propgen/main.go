// Propgen renders the built-in widget vocabulary of pkg/widget from the
// kind tables in this package. Run through go generate; see
// pkg/widget/kinds.go.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
)

var out = flag.String("out", "props_gen.go", "output file")

func main() {
	flag.Parse()

	f := jen.NewFile("widget")
	f.HeaderComment("Code generated by propgen; DO NOT EDIT.")

	f.Comment("standardKinds is the built-in widget vocabulary. Each kind's property\n" +
		"table includes the shared visual properties plus its own. Regenerate\n" +
		"with: go run ./cmd/propgen -out pkg/widget/props_gen.go")
	f.Var().Id("standardKinds").Op("=").Index().Op("*").Id("Kind").ValuesFunc(func(g *jen.Group) {
		for _, k := range kinds {
			g.Line().Values(jen.Dict{
				jen.Id("Name"):  jen.Lit(strcase.ToCamel(k.alias)),
				jen.Id("Caps"):  capsExpr(k.caps),
				jen.Id("Props"): propsExpr(k.props()),
			})
		}
		g.Line()
	})

	if err := f.Save(*out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// capsExpr renders Visual|Container|... as an ored capability expression.
func capsExpr(caps []string) *jen.Statement {
	expr := jen.Id("Cap" + caps[0])
	for _, c := range caps[1:] {
		expr = expr.Op("|").Id("Cap" + c)
	}
	return expr
}

// propsExpr renders a kind's property table literal.
func propsExpr(ps []propSpec) *jen.Statement {
	d := jen.Dict{}
	for _, p := range ps {
		entry := jen.Dict{
			jen.Id("Name"):     jen.Lit(p.name),
			jen.Id("Type"):     jen.Id(p.typ),
			jen.Id("Writable"): jen.True(),
		}
		if p.def != nil {
			entry[jen.Id("Default")] = jen.Lit(p.def)
		}
		d[jen.Lit(p.name)] = jen.Values(entry)
	}
	return jen.Map(jen.String()).Id("PropDef").Values(d)
}
