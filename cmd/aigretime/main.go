package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang/glog"

	"github.com/avidale-eda/aigretime/internal/aiger"
	"github.com/avidale-eda/aigretime/internal/progress"
	"github.com/avidale-eda/aigretime/internal/retime"
)

func main() {
	aigPath := flag.String("aig", "", "path to an AIGER file (standard or modified)")
	steps := flag.Int("steps", 1, "number of retiming steps to run")
	forward := flag.Bool("forward", true, "forward retiming (false runs backward)")
	check := flag.Bool("check", false, "run the post-decode consistency check")
	// -v is glog's own verbosity flag; -v=1 or higher logs progress.
	flag.Parse()
	verbose := bool(glog.V(1))

	if *aigPath == "" {
		log.Fatal("-aig is required")
	}
	data, err := os.ReadFile(*aigPath)
	if err != nil {
		log.Fatalf("read aig: %v", err)
	}

	opts := aiger.Options{Config: aiger.Config{Check: *check}}
	if verbose {
		opts.Sink = progress.NewGlog()
	}

	res, err := aiger.Decode(data, opts)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}

	before := res.Network.NumRegs()
	if verbose {
		glog.V(1).Infof("aigretime: %d registers before retiming", before)
	}

	retime.RetimeSteps(res.Network, retime.Config{
		Forward:        *forward,
		Steps:          *steps,
		AssertFwdPhase: true,
	})

	after := res.Network.NumRegs()
	fmt.Printf("direction:      %s\n", direction(*forward))
	fmt.Printf("steps:          %d\n", *steps)
	fmt.Printf("registers before: %d\n", before)
	fmt.Printf("registers after:  %d\n", after)
}

func direction(forward bool) string {
	if forward {
		return "forward"
	}
	return "backward"
}
