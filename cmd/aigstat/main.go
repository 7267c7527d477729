package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang/glog"

	"github.com/avidale-eda/aigretime/internal/aig"
	"github.com/avidale-eda/aigretime/internal/aiger"
	"github.com/avidale-eda/aigretime/internal/progress"
)

func main() {
	aigPath := flag.String("aig", "", "path to an AIGER file (standard or modified)")
	check := flag.Bool("check", false, "run the post-decode consistency check")
	// -v is glog's own verbosity flag; -v=1 or higher logs decode progress.
	flag.Parse()

	if *aigPath == "" {
		log.Fatal("-aig is required")
	}
	data, err := os.ReadFile(*aigPath)
	if err != nil {
		log.Fatalf("read aig: %v", err)
	}

	opts := aiger.Options{Config: aiger.Config{Check: *check}}
	if glog.V(1) {
		opts.Sink = progress.NewGlog()
		glog.V(1).Infof("aigstat: decoding %s", *aigPath)
	}

	res, err := aiger.Decode(data, opts)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}

	h := res.Header
	name := h.ModelName
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Printf("model:    %s\n", name)
	fmt.Printf("variant:  %s\n", variantName(h.Modified))
	fmt.Printf("inputs:   %d\n", h.I)
	fmt.Printf("latches:  %d\n", h.L)
	fmt.Printf("outputs:  %d\n", h.O)
	fmt.Printf("ands:     %d\n", countAnds(res.Network))
}

func variantName(modified bool) string {
	if modified {
		return "modified (aig2)"
	}
	return "standard"
}

func countAnds(n *aig.Network) int {
	count := 0
	n.ForEachAnd(func(*aig.Object) bool {
		count++
		return true
	})
	return count
}
