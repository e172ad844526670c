// Command huffman builds a Huffman code for a text file and uses it to
// compress and decompress that file.
//
// Given foo.txt, it writes the code table to foo.code, the compressed stream
// to foo.short, and the decompressed result to foo.new (or standard output).
//
//     huffman -mode make foo.txt
//     huffman -mode compress [-debug] foo.txt
//     huffman -mode decompress [-stdout] foo.txt
//     huffman -mode roundtrip [-stdout] foo.txt
//
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

const (
	modeMake       = "make"
	modeCompress   = "compress"
	modeDecompress = "decompress"
	modeRoundTrip  = "roundtrip"
)

func main() {
	var (
		mode     = flag.String("mode", modeRoundTrip, "one of: make, compress, decompress, roundtrip")
		debug    = flag.Bool("debug", false, "echo compressed bits to stderr as 0s and 1s")
		toStdout = flag.Bool("stdout", false, "write decompressed output to stdout instead of <name>.new")
		tree     = flag.Bool("tree", false, "print the Huffman tree to stderr")
		quiet    = flag.Bool("q", false, "suppress progress messages")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <file>.txt\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("huffman: ")

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	s, err := newSession(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	if *quiet {
		s.logger.SetOutput(io.Discard)
	}
	if *tree {
		s.treeOut = os.Stderr
	}
	if *toStdout {
		s.stdout = os.Stdout
	}

	var debugOut io.Writer
	if *debug {
		debugOut = os.Stderr
	}

	switch *mode {
	case modeMake:
		_, err = s.makeCode()
	case modeCompress:
		err = s.compress(debugOut)
	case modeDecompress:
		err = s.decompress()
	case modeRoundTrip:
		err = s.compress(nil)
		if err == nil {
			err = s.decompress()
		}
	default:
		log.Printf("unknown mode %q", *mode)
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}
