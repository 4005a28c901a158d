package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	ngff "github.com/zarrtools/ngff"
	"github.com/zarrtools/ngff/codec"
	"github.com/zarrtools/ngff/v04"
)

func main() {
	fs := flag.NewFlagSet("ngff-validate", flag.ExitOnError)
	var asYAML bool
	fs.BoolVar(&asYAML, "yaml", false, "treat input as YAML instead of JSON")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:\n  ngff-validate [-yaml] [file ...]\n\nValidates OME-NGFF v0.4 metadata documents. Reads stdin when no file is given.")
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	files := fs.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}
	failed := false
	for _, name := range files {
		if err := validateFile(name, asYAML); err != nil {
			failed = true
			if iss, ok := ngff.AsIssues(err); ok {
				for _, it := range iss {
					fmt.Fprintf(os.Stderr, "%s: %s at %s: %s\n", displayName(name), it.Code, it.Path, it.Message)
				}
			} else {
				fmt.Fprintf(os.Stderr, "%s: %v\n", displayName(name), err)
			}
			continue
		}
		fmt.Printf("%s: ok\n", displayName(name))
	}
	if failed {
		os.Exit(1)
	}
}

func displayName(name string) string {
	if name == "-" {
		return "stdin"
	}
	return name
}

func validateFile(name string, asYAML bool) error {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return err
	}
	var meta *v04.Metadata
	if asYAML {
		meta, err = codec.DecodeYAML(data)
	} else {
		meta, err = codec.DecodeJSON(data)
	}
	if err != nil {
		return err
	}
	return meta.Validate()
}
