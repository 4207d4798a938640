// Command dioctl replays a captured gap trace through the same decoder the
// firmware runs, for bench debugging without flashing. A trace is one
// microsecond gap width per line, in the order rising edges arrived.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sparques/ookrx"
	"github.com/sparques/ookrx/chacon"
)

func main() {
	var (
		path    = flag.String("trace", "-", "file containing one gap width (µs) per line, or - for stdin")
		verbose = flag.Bool("v", false, "dump every decoded buffer's gap widths")
	)
	flag.Parse()

	in := os.Stdin
	if *path != "-" {
		f, err := os.Open(*path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "dioctl:", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	if err := replay(in, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "dioctl:", err)
		os.Exit(1)
	}
}

func replay(r io.Reader, verbose bool) error {
	var ring ookrx.Ring
	ring.Setup()

	sink := &chacon.SliceSink{}
	recv := chacon.NewReceiver(&ring, sink)
	recv.Setup(0)
	if verbose {
		recv.Dump = func(s string) { fmt.Fprintln(os.Stderr, s) }
	}

	now := ookrx.Micros(0)
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		line := scan.Text()
		if line == "" {
			continue
		}
		width, err := strconv.ParseUint(line, 10, 32)
		if err != nil {
			return fmt.Errorf("parsing gap width %q: %w", line, err)
		}
		now += ookrx.Micros(width)
		ring.HandleRise(now)

		if payload, ok := recv.Receive(now); ok {
			fmt.Printf("%#08x id=%d multicast=%v on=%v page=%d row=%d\n",
				uint32(payload), payload.TransmitterID(), payload.IsMulticast(), payload.IsOn(), payload.Page(), payload.Row())
		}
	}
	if err := scan.Err(); err != nil {
		return err
	}

	for _, rec := range sink.Records {
		fmt.Fprintf(os.Stderr, "notice tag=%d count=%d: %s\n", rec.Tag, rec.Count, rec.Detail)
	}
	return nil
}
