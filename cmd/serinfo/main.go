// Diagnostic tool for inspecting SER video files
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/robert-malhotra/go-ser/ser"
)

func main() {
	frames := flag.Bool("frames", false, "list per-frame sizes and timestamps")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: serinfo [-frames] <file.ser>")
		os.Exit(1)
	}

	filename := flag.Arg(0)
	f, err := ser.Open(filename)
	if err != nil {
		fmt.Printf("ERROR: Failed to open file: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(f)

	if !*frames {
		return
	}
	fmt.Println()

	sess, err := f.NewSession()
	if err != nil {
		fmt.Printf("ERROR: Failed to start session: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()

	stamps := f.Timestamps()
	for i := 0; i < f.FrameCount(); i++ {
		fr, err := sess.Frame(i)
		if err != nil {
			// Per-frame errors are recoverable; report and move on.
			fmt.Printf("frame %4d: ERROR: %v\n", i, err)
			continue
		}
		if i < len(stamps) {
			fmt.Printf("frame %4d: %d bytes  %s\n", i, len(fr.Bytes()), stamps[i].Format("2006-01-02T15:04:05.000000Z"))
			continue
		}
		fmt.Printf("frame %4d: %d bytes\n", i, len(fr.Bytes()))
	}
}
