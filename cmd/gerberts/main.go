package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"gerberts/document"
	"gerberts/render"
)

var debug bool

func atExit(err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "gerberts: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "gerberts: %+v\n", err)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: gerberts [-debug] <command> [args]\n\ncommands:\n")
	fmt.Fprintf(os.Stderr, "  render    [-o out.svg] <file.gbr>   render a Gerber file to SVG\n")
	fmt.Fprintf(os.Stderr, "  inspect   <file.gbr>                summarize a Gerber file's contents\n")
	fmt.Fprintf(os.Stderr, "  roundtrip <file.gbr>                parse and re-serialize, to stdout\n")
}

func main() {
	flag.BoolVar(&debug, "debug", false, "print full error stack traces")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "render":
		err = runRender(args[1:])
	case "inspect":
		err = runInspect(args[1:])
	case "roundtrip":
		err = runRoundtrip(args[1:])
	default:
		usage()
		os.Exit(2)
	}
	atExit(err)
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	out := fs.String("o", "", "output SVG `filename` (default: stdout)")
	scale := fs.Float64("scale", 1, "output scale factor")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "render: parsing flags")
	}
	if fs.NArg() != 1 {
		return errors.New("render: expected exactly one input file")
	}

	src, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return errors.Wrap(err, "render: reading input")
	}

	doc := document.Parse(string(src))
	opts := render.DefaultOptions()
	opts.Scale = *scale
	svg := render.GerberToSVG(doc, opts)

	if *out == "" {
		_, err = fmt.Println(svg)
		return errors.Wrap(err, "render: writing output")
	}
	if err := os.WriteFile(*out, []byte(svg), 0o644); err != nil {
		return errors.Wrap(err, "render: writing output")
	}
	return nil
}

func runInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "inspect: parsing flags")
	}
	if fs.NArg() != 1 {
		return errors.New("inspect: expected exactly one input file")
	}

	src, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return errors.Wrap(err, "inspect: reading input")
	}

	doc := document.Parse(string(src))
	fmt.Printf("nodes: %d\n", len(doc.Nodes))
	if fs, ok := doc.FormatSpecification(); ok {
		fmt.Printf("format: X%d.%d Y%d.%d\n", fs.XInteger, fs.XDecimal, fs.YInteger, fs.YDecimal)
	}
	if u, ok := doc.UnitMode(); ok {
		fmt.Printf("unit: %s\n", u.Serialize())
	}
	fmt.Printf("apertures: %d\n", len(doc.ApertureDefinitions()))
	fmt.Printf("operations: %d\n", len(doc.Operations()))
	fmt.Printf("file attributes: %d\n", len(doc.FileAttributes()))
	return nil
}

func runRoundtrip(args []string) error {
	fs := flag.NewFlagSet("roundtrip", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "roundtrip: parsing flags")
	}
	if fs.NArg() != 1 {
		return errors.New("roundtrip: expected exactly one input file")
	}

	src, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return errors.Wrap(err, "roundtrip: reading input")
	}

	doc := document.Parse(string(src))
	_, err = fmt.Print(doc.GetString())
	return errors.Wrap(err, "roundtrip: writing output")
}
