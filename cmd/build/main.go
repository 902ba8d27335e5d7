package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/midbel/radar/decode"
)

func main() {
	flag.Parse()

	r, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer r.Close()

	cfg, err := decode.NewDecoder(r).Decode()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cfg.Render(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
