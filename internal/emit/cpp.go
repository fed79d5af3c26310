package emit

import (
	"fmt"
	"strings"
)

func cppValue(k valueKind) func(uint64) string {
	switch k {
	case kindBool:
		return func(v uint64) string {
			if v != 0 {
				return "true"
			}
			return "false"
		}
	case kindInt:
		return func(v uint64) string { return fmt.Sprint(v) }
	default:
		return func(v uint64) string { return fmt.Sprintf("0x%xULL", v) }
	}
}

func cppType(t table) string {
	switch {
	case t.name == "NUM_BIT16_TABLE":
		return "char"
	case t.kind == kindInt:
		return "int"
	case t.kind == kindBool:
		return "bool"
	}
	return "Bitboard"
}

func cppGuard(selected []table) string {
	if len(selected) == 1 && selected[0].evaluator {
		return "EVALUATOR_EXTRA_H"
	}
	return "CHESS_UTIL_EXTRA_H"
}

// writeCPP emits constexpr arrays grouped by the namespace the consumer
// expects: MetaUtil for the move tables, MetaEvaluator for the pin table.
func writeCPP(e *emitter, selected []table, opts Options) {
	guard := opts.Guard
	if guard == "" {
		guard = cppGuard(selected)
	}

	e.str("// Code generated by gentables. DO NOT EDIT.\n\n")
	e.printf("#ifndef %s\n#define %s\n\n", guard, guard)
	e.str("namespace Sayuri {\n")
	for _, ns := range []struct {
		name      string
		evaluator bool
	}{{"MetaUtil", false}, {"MetaEvaluator", true}} {
		var group []table
		for _, t := range selected {
			if t.evaluator == ns.evaluator {
				group = append(group, t)
			}
		}
		if len(group) == 0 {
			continue
		}
		e.printf("  namespace %s {\n", ns.name)
		for _, t := range group {
			e.printf("    constexpr %s %s[%s] {\n", cppType(t), t.name, strings.Join(t.cppDims, "]["))
			e.body(t, "      ", cppValue(t.kind))
			e.str("    };\n\n")
		}
		e.str("  }\n")
	}
	e.str("}  // namespace Sayuri\n\n")
	e.printf("#endif  // %s\n", guard)
}
