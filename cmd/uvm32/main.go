// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ezrec/uvm32/toolchain"
)

type option struct {
	name  string
	value string
}

// requested reports whether any flag of a group was given, and which
// flags of the group are still unset.
func requested(options []option) (wanted bool, missing []string) {
	for _, opt := range options {
		if len(opt.value) != 0 {
			wanted = true
		} else {
			missing = append(missing, "-"+opt.name)
		}
	}

	return
}

func main() {
	var listing string
	var binary string
	var logfile string
	var execute string
	var start string
	var end string
	var result string
	var verbose bool

	flag.StringVar(&listing, "i", "", "listing to assemble")
	flag.StringVar(&binary, "b", "", "binary image to write")
	flag.StringVar(&logfile, "l", "", "assembly log to write")
	flag.StringVar(&execute, "x", "", "binary image to execute")
	flag.StringVar(&start, "s", "", "first memory cell to dump (expression)")
	flag.StringVar(&end, "e", "", "memory cell to dump up to (expression)")
	flag.StringVar(&result, "r", "", "machine state to write")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	assemble, assembleMissing := requested([]option{
		{"i", listing},
		{"b", binary},
		{"l", logfile},
	})
	run, runMissing := requested([]option{
		{"x", execute},
		{"s", start},
		{"e", end},
		{"r", result},
	})

	if !assemble && !run {
		fmt.Fprintf(flag.CommandLine.Output(), "%v: no operation requested\n", os.Args[0])
		flag.Usage()
		os.Exit(2)
	}

	if assemble && len(assembleMissing) != 0 {
		log.Fatalf("%v: assembly needs %v", os.Args[0], strings.Join(assembleMissing, " "))
	}

	if run && len(runMissing) != 0 {
		log.Fatalf("%v: execution needs %v", os.Args[0], strings.Join(runMissing, " "))
	}

	tc := &toolchain.Toolchain{}
	if verbose {
		tc.Tracef = log.Printf
	}

	if assemble {
		err := tc.Assemble(listing, binary, logfile)
		if err != nil {
			log.Fatal(err)
		}
	}

	if run {
		startAddress, err := evalAddress(start)
		if err != nil {
			log.Fatalf("%v: -s: %v", os.Args[0], err)
		}

		endAddress, err := evalAddress(end)
		if err != nil {
			log.Fatalf("%v: -e: %v", os.Args[0], err)
		}

		err = tc.Execute(execute, startAddress, endAddress, result)
		if err != nil {
			log.Fatal(err)
		}
	}
}
