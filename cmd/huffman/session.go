package main

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/chronos-tachyon/huffcode"
)

const sourceExt = ".txt"

// session names the files belonging to one source file and runs the
// make-code, compress and decompress steps on them.
type session struct {
	base    string
	logger  *log.Logger
	treeOut io.Writer
	stdout  io.Writer
}

func newSession(path string) (*session, error) {
	if !strings.HasSuffix(path, sourceExt) || len(path) == len(sourceExt) {
		return nil, errors.Errorf("%s: only %s files can be compressed", path, sourceExt)
	}
	return &session{
		base:   strings.TrimSuffix(path, sourceExt),
		logger: log.New(os.Stderr, "huffman: ", 0),
	}, nil
}

func (s *session) sourcePath() string     { return s.base + sourceExt }
func (s *session) codePath() string       { return s.base + ".code" }
func (s *session) compressedPath() string { return s.base + ".short" }
func (s *session) outputPath() string     { return s.base + ".new" }

func (s *session) makeCode() (*huffcode.Tree, error) {
	s.logger.Printf("making the Huffman code for %s", s.sourcePath())

	src, err := os.Open(s.sourcePath())
	if err != nil {
		return nil, err
	}
	defer src.Close()

	var t *huffcode.Tree
	err = createFile(s.codePath(), func(w io.Writer) error {
		var err error
		t, err = huffcode.WriteCodeTable(w, src)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.printTree(t)

	s.logger.Printf("saved the code to %s (longest code: %d bits)", s.codePath(), t.MaxDepth())
	return t, nil
}

// compress makes the code, then compresses the source using the code as
// loaded back from the saved table.
func (s *session) compress(debug io.Writer) error {
	if _, err := s.makeCode(); err != nil {
		return err
	}

	t, err := s.loadCode()
	if err != nil {
		return err
	}

	s.logger.Printf("compressing %s into %s", s.sourcePath(), s.compressedPath())
	src, err := os.Open(s.sourcePath())
	if err != nil {
		return err
	}
	defer src.Close()

	err = createFile(s.compressedPath(), func(w io.Writer) error {
		return huffcode.Compress(w, src, t, debug)
	})
	if debug != nil {
		_, _ = io.WriteString(debug, "\n")
	}
	return err
}

func (s *session) decompress() error {
	t, err := s.loadCode()
	if err != nil {
		return err
	}
	s.printTree(t)

	src, err := os.Open(s.compressedPath())
	if err != nil {
		return err
	}
	defer src.Close()

	if s.stdout != nil {
		s.logger.Printf("decompressing %s to standard output", s.compressedPath())
		return huffcode.Decompress(s.stdout, src, t)
	}

	s.logger.Printf("decompressing %s into %s", s.compressedPath(), s.outputPath())
	return createFile(s.outputPath(), func(w io.Writer) error {
		return huffcode.Decompress(w, src, t)
	})
}

func (s *session) loadCode() (*huffcode.Tree, error) {
	f, err := os.Open(s.codePath())
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := huffcode.LoadTree(f)
	if err != nil {
		return nil, errors.Wrap(err, s.codePath())
	}
	return t, nil
}

func (s *session) printTree(t *huffcode.Tree) {
	if s.treeOut != nil {
		_, _ = t.Print(s.treeOut)
	}
}

// createFile creates path, passes it to fn, and closes it.  The file is
// removed if fn or Close fails.
func createFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = fn(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return errors.Wrap(err, path)
	}
	return nil
}
