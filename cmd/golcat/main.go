// Command golcat reads a Macrocell file, advances it a number of
// generations, and writes the result back out as Macrocell.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/jyane/gol/node"
)

func main() {
	steps := flag.Uint64("steps", 1, "number of generations to advance")
	out := flag.String("out", "", "output path (default: stdout)")
	flag.Parse()

	if flag.NArg() != 1 {
		glog.Fatalf("usage: golcat [-steps N] [-out PATH] FILE.mc")
	}
	path := flag.Arg(0)

	src, err := os.ReadFile(path)
	if err != nil {
		glog.Fatalf("reading %s: %v", path, err)
	}
	start, err := node.ReadFromBytes(src)
	if err != nil {
		glog.Fatalf("parsing %s: %v", path, err)
	}

	result := start.Step(*steps)

	dest := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			glog.Fatalf("creating %s: %v", *out, err)
		}
		defer f.Close()
		dest = f
	}
	if err := node.WriteTo(dest, result); err != nil {
		glog.Fatalf("writing result: %v", err)
	}
}
