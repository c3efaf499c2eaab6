// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lzw compresses and decompresses files with the LZW algorithm.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ogier/pflag"

	"github.com/filiphrenic/compression/internal/xlog"
	"github.com/filiphrenic/compression/lzw"
	"github.com/filiphrenic/compression/trie"
	"github.com/filiphrenic/compression/xio"
)

const usageStr = `Usage: lzw [OPTION]... encode|decode INPUT OUTPUT
Compress or uncompress INPUT into OUTPUT using fixed-width LZW codes.

  -c, --capacity N  dictionary capacity; default 65535
  -F, --framed      write the .lzw format with header and trailer
  -h, --help        give this help
  -s, --sparse      use the sparse dictionary
  -v, --verbose     verbose mode

INPUT or OUTPUT may be - for standard input or standard output. The
decoder detects the .lzw format automatically.
`

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

type options struct {
	capacity int
	framed   bool
	sparse   bool
	verbose  bool
}

func (o *options) config() lzw.Config {
	cfg := lzw.Config{Capacity: o.capacity}
	if o.capacity > 1<<lzw.DefaultCodeWidth-1 {
		cfg.CodeWidth = 24
	}
	if o.sparse {
		cfg.Backend = trie.Sparse
	}
	return cfg
}

// userPathError represents a path error presentable to a user. In
// difference to os.PathError it removes the information of the
// operation returning the error.
type userPathError struct {
	Path string
	Err  error
}

func (e *userPathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *userPathError) Unwrap() error { return e.Err }

// userError converts a path error into an error without the operation.
func userError(err error) error {
	var pe *os.PathError
	if !errors.As(err, &pe) {
		return err
	}
	return &userPathError{Path: pe.Path, Err: pe.Err}
}

var errNoRegular = errors.New("no regular file")

func openInput(path string, stdin io.Reader) (r io.ReadCloser, err error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, userError(err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, userError(err)
	}
	if !fi.Mode().IsRegular() {
		f.Close()
		return nil, &userPathError{Path: path, Err: errNoRegular}
	}
	return f, nil
}

func createOutput(path string, stdout io.Writer) (w io.WriteCloser, err error) {
	if path == "-" {
		return xio.NopCloser(stdout), nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, userError(err)
	}
	return f, nil
}

// encode compresses r into w, which must be the top of out. The
// compressor is pushed onto out.
func encode(r io.Reader, w io.Writer, out *xio.WriteCloserStack, opts *options) (stats lzw.Stats, err error) {
	z, err := lzw.NewWriterConfig(w, lzw.WriterConfig{
		Config: opts.config(),
		Framed: opts.framed,
	})
	if err != nil {
		return stats, err
	}
	out.Push(z)
	if _, err = io.Copy(out, r); err != nil {
		return stats, err
	}
	if err = z.Close(); err != nil {
		return stats, err
	}
	return z.Stats(), nil
}

func decode(r io.Reader, w io.Writer, opts *options) (stats lzw.Stats, err error) {
	br := bufio.NewReader(r)
	cfg := lzw.ReaderConfig{Config: opts.config()}
	// short or empty input is a raw stream
	if p, err := br.Peek(lzw.MagicLen); err == nil && lzw.IsFramed(p) {
		cfg.Framed = true
	}
	z, err := lzw.NewReaderConfig(br, cfg)
	if err != nil {
		return stats, err
	}
	if _, err = io.Copy(w, z); err != nil {
		return stats, err
	}
	return z.Stats(), nil
}

// run executes the command and returns the exit status.
func run(cmdName string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	xlog.SetOutput(log.New(stderr, cmdName+": ", 0))
	defer xlog.SetOutput(nil)

	flags := pflag.NewFlagSet(cmdName, pflag.ContinueOnError)
	flags.SetInterspersed(true)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}
	var (
		opts options
		help = flags.BoolP("help", "h", false, "")
	)
	flags.IntVarP(&opts.capacity, "capacity", "c", 0, "")
	flags.BoolVarP(&opts.framed, "framed", "F", false, "")
	flags.BoolVarP(&opts.sparse, "sparse", "s", false, "")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "")

	if err := flags.Parse(args); err != nil {
		xlog.Warn(err)
		usage(stderr)
		return 1
	}
	if *help {
		usage(stdout)
		return 0
	}
	if flags.NArg() != 3 {
		usage(stderr)
		return 1
	}
	cmd, inPath, outPath := flags.Arg(0), flags.Arg(1), flags.Arg(2)
	if cmd != "encode" && cmd != "decode" {
		xlog.Warnf("unknown command %q", cmd)
		usage(stderr)
		return 1
	}
	if opts.verbose {
		xlog.SetLevel(xlog.InfoLevel)
		defer xlog.SetLevel(xlog.WarnLevel)
	}
	cfg := opts.config()
	cfg.SetDefaults()
	if err := cfg.Verify(); err != nil {
		xlog.Warn(err)
		return 1
	}

	in, err := openInput(inPath, stdin)
	if err != nil {
		xlog.Warn(err)
		return 1
	}
	defer in.Close()
	f, err := createOutput(outPath, stdout)
	if err != nil {
		xlog.Warn(err)
		return 1
	}
	out := xio.NewWriteCloserStack()
	out.Push(f)
	bw := xio.NewBufferedWriteCloser(f)
	out.Push(bw)

	var stats lzw.Stats
	if cmd == "encode" {
		fmt.Fprintln(stderr, "Encoding...")
		stats, err = encode(in, bw, out, &opts)
	} else {
		fmt.Fprintln(stderr, "Decoding...")
		stats, err = decode(in, out, &opts)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		xlog.Warn(userError(err))
		return 1
	}
	xlog.Infof("%d bytes, %d codes, %d entries, frozen %t",
		stats.Bytes, stats.Codes, stats.Entries, stats.Frozen)
	fmt.Fprintln(stderr, "Done!")
	return 0
}

func main() {
	// setup logger
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)

	os.Exit(run(cmdName, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
