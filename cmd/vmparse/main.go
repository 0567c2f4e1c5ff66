// vmparse - front end of a Hack VM translator
// Parses stack-machine VM source and emits the validated command
// sequence as JSON for a downstream code generator.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"vmparser/pkg/parser"
)

var (
	count   = flag.Bool("count", false, "print only the number of parsed commands")
	version = flag.Bool("version", false, "print version and exit")
)

const versionStr = "1.0.0"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "vmparse - Hack VM front end\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  vmparse [options] Program.vm\n")
		fmt.Fprintf(os.Stderr, "  vmparse [options] < Program.vm > commands.json\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("vmparse version %s\n", versionStr)
		os.Exit(0)
	}

	in := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	cmds, err := parser.Parse(in)
	if err != nil {
		if errors.Is(err, parser.ErrRead) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "%v\n\nFailed to compile\n", err)
		}
		os.Exit(1)
	}

	if *count {
		fmt.Println(len(cmds))
		return
	}

	out, err := json.MarshalIndent(cmds, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding commands: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
