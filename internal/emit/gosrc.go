package emit

import (
	"fmt"
	"strings"
)

func goValue(k valueKind) func(uint64) string {
	switch k {
	case kindBool:
		return func(v uint64) string { return fmt.Sprint(v != 0) }
	case kindInt:
		return func(v uint64) string { return fmt.Sprint(v) }
	default:
		return func(v uint64) string { return fmt.Sprintf("0x%016x", v) }
	}
}

func goType(t table) string {
	switch {
	case t.name == "NUM_BIT16_TABLE":
		return "uint8"
	case t.kind == kindInt:
		return "int"
	case t.kind == kindBool:
		return "bool"
	}
	return "uint64"
}

// writeGo emits one package-level array per table.
func writeGo(e *emitter, selected []table, opts Options) {
	pkg := opts.Package
	if pkg == "" {
		pkg = "tables"
	}

	e.str("// Code generated by gentables. DO NOT EDIT.\n\n")
	e.printf("package %s\n", pkg)
	for _, t := range selected {
		var dims strings.Builder
		for _, d := range t.dims {
			fmt.Fprintf(&dims, "[%d]", d)
		}
		e.printf("\nvar %s = %s%s{\n", t.goName, dims.String(), goType(t))
		e.body(t, "\t", goValue(t.kind))
		e.str("}\n")
	}
}
