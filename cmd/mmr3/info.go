package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/mmr3/codec"
	"github.com/hupe1980/mmr3/internal/cpuinfo"
)

func runInfo(_ context.Context, e *env, args []string) error {
	fs := newFlagSet("info", e)
	format := fs.String("format", "text", "output format: text or json")
	codecName := fs.String("codec", codec.Default.Name(), "JSON codec: json or go-json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	info := cpuinfo.Detect()
	switch *format {
	case "json":
		c, ok := codec.ByName(*codecName)
		if !ok {
			return fmt.Errorf("unknown codec %q", *codecName)
		}
		b, err := c.Marshal(info)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(e.stdout, "%s\n", b)
		return err
	case "text":
		fmt.Fprintf(e.stdout, "os:         %s\n", info.OS)
		fmt.Fprintf(e.stdout, "arch:       %s\n", info.Arch)
		fmt.Fprintf(e.stdout, "go:         %s\n", info.GoVersion)
		fmt.Fprintf(e.stdout, "cpus:       %d\n", info.NumCPU)
		fmt.Fprintf(e.stdout, "model:      %s\n", orUnknown(info.Model))
		fmt.Fprintf(e.stdout, "endianness: %s\n", info.Endianness())
		fmt.Fprintf(e.stdout, "features:   %s\n", strings.Join(info.Features, " "))
		return nil
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}
