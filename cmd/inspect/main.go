// Command inspect loads a WebAssembly binary and prints its import and
// export descriptors.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wasmbridge/wasmbridge/engine"
	"github.com/wasmbridge/wasmbridge/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

func main() {
	wasmFile := flag.String("wasm", "", "Path to wasm binary")
	flag.Parse()

	if *wasmFile == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect -wasm <file.wasm>")
		os.Exit(2)
	}

	bin, err := os.ReadFile(*wasmFile)
	if err != nil {
		fail(err)
	}

	ctx := context.Background()
	eng := engine.NewEngine(ctx)
	defer eng.Close(ctx)

	store := engine.NewStore(eng)
	defer store.Close(ctx)

	mod, err := store.Load(ctx, bin)
	if err != nil {
		fail(err)
	}

	imports := mod.Imports()
	defer imports.Delete()

	fmt.Println(titleStyle.Render(fmt.Sprintf("Imports (%d)", imports.Size())))
	for _, imp := range imports.Data() {
		fmt.Printf("  %s.%s : %s\n",
			nameStyle.Render(imp.Module().String()),
			nameStyle.Render(imp.Name().String()),
			typeStyle.Render(formatExternType(imp.Type())))
	}

	exports := mod.Exports()
	defer exports.Delete()

	fmt.Println(titleStyle.Render(fmt.Sprintf("Exports (%d)", exports.Size())))
	for _, exp := range exports.Data() {
		fmt.Printf("  %s : %s\n",
			nameStyle.Render(exp.Name().String()),
			typeStyle.Render(formatExternType(exp.Type())))
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
	os.Exit(1)
}

func formatExternType(t *types.ExternType) string {
	switch t.Kind() {
	case types.ExternFunc:
		ft := t.AsFuncType()
		return fmt.Sprintf("func(%s) -> (%s)",
			formatValTypes(ft.Params().Data()),
			formatValTypes(ft.Results().Data()))
	case types.ExternGlobal:
		gt := t.AsGlobalType()
		return fmt.Sprintf("global %s %s", gt.Mutability(), gt.Content().Kind())
	case types.ExternTable:
		tt := t.AsTableType()
		return fmt.Sprintf("table %s %s", tt.Element().Kind(), formatLimits(tt.Limits()))
	case types.ExternMemory:
		mt := t.AsMemoryType()
		return fmt.Sprintf("memory %s", formatLimits(mt.Limits()))
	}
	return "unknown"
}

func formatValTypes(ts []*types.ValType) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.Kind().String()
	}
	return strings.Join(parts, ", ")
}

func formatLimits(l *types.Limits) string {
	if l == nil {
		return "{}"
	}
	if l.Max == types.LimitsMaxDefault {
		return fmt.Sprintf("{min %d}", l.Min)
	}
	return fmt.Sprintf("{min %d, max %d}", l.Min, l.Max)
}
