package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wippyai/fastcall"
	"github.com/wippyai/fastcall/descriptor"
	"github.com/wippyai/fastcall/internal/dispatch"
	"github.com/wippyai/fastcall/manifest"
)

func main() {
	var (
		manifestFile = flag.String("manifest", "", "Path to signature manifest (TOML)")
		interactive  = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *manifestFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -manifest <fastcall.toml>")
		fmt.Fprintln(os.Stderr, "       inspect -manifest <fastcall.toml> -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*manifestFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*manifestFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}

	fmt.Printf("Manifest: %s\n", path)
	fmt.Printf("Functions: %d\n\n", len(m.Functions))

	b := descriptor.NewBuilder(dispatch.New())
	for _, decl := range m.Functions {
		printDeclaration(b, decl)
	}
	return nil
}

func printDeclaration(b *descriptor.Builder, decl manifest.Declaration) {
	args := make([]fastcall.TypeDescriptor, len(decl.Args))
	for i, t := range decl.Args {
		args[i] = b.Type(t)
	}
	sig := b.Signature(b.Scalar(decl.Return), args)

	fmt.Println(decl.Key())
	fmt.Printf("  arity  %d\n", dispatch.Arity(sig))
	fmt.Printf("  return %-20s tag=%-3d\n", decl.Return, uint8(decl.Return))
	for i, t := range decl.Args {
		pair := t.Pair()
		fmt.Printf("  arg %-2d %-20s tag=%-3d shape=%d\n", i, t, uint8(pair.Scalar), uint8(pair.Shape))
	}
	fmt.Println()
}
