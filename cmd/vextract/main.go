package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"vplot-go/pkg/cheader"
	cmdUtils "vplot-go/pkg/cmd-utils"
)

var (
	listMode = flag.Bool("l", false, "list float array names in the header and exit")
	outFile  = flag.String("o", "", "write the number list to this file instead of stdout")
)

func main() {
	flag.Parse()

	if len(flag.Args()) < 1 {
		cmdUtils.LogFatalError("Usage: vextract [-l] [-o out.txt] {header.h} {array-name}", errors.New(""))
	}

	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		cmdUtils.LogFatalError("failed to read header: ", err)
	}

	if *listMode {
		for _, name := range cheader.Names(src) {
			fmt.Println(name)
		}
		return
	}

	if len(flag.Args()) != 2 {
		cmdUtils.LogFatalError("Usage: vextract {header.h} {array-name}", errors.New(""))
	}

	seq, err := cheader.Extract(src, flag.Arg(1))
	if err != nil {
		cmdUtils.LogFatalError("failed to extract array: ", err)
	}

	out := os.Stdout
	if *outFile != "" {
		out, err = os.Create(*outFile)
		if err != nil {
			cmdUtils.LogFatalError("failed to create output file: ", err)
		}
		defer out.Close()
	}

	for i, pt := range seq {
		if i < len(seq)-1 {
			fmt.Fprintf(out, "%g, %g,\n", pt.X, pt.Y)
		} else {
			fmt.Fprintf(out, "%g, %g\n", pt.X, pt.Y)
		}
	}
}
