package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	log "github.com/sirupsen/logrus"

	"vplot-go/pkg/chart"
	"vplot-go/pkg/fingerprint"
	"vplot-go/pkg/vertex"
	"vplot-go/pkg/viewer"
)

var once sync.Once

var (
	verbose     = flag.Bool("v", false, "Turn on verbose output")
	veryVerbose = flag.Bool("vv", false, "Turn on very verbose output")
	outFile     = flag.String("o", "", "Output image (default vplot-<haiku>.png)")
	title       = flag.String("t", "Vertex Plot", "Plot title")
	noView      = flag.Bool("n", false, "Don't open the image in a viewer")
)

func init() {
	flag.Parse()

	log.SetLevel(log.InfoLevel)

	if *verbose {
		log.SetLevel(log.DebugLevel)
		log.Debug("Set log level to debug")
	}

	if *veryVerbose {
		log.SetLevel(log.TraceLevel)
		log.Debug("Set log level to trace")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		fmt.Fprint(os.Stderr, "\b\b")
		log.Infof("Received signal: %s, stopping...", sig)
		once.Do(epilogue)
		os.Exit(0) // Exit after cleanup
	}()
}

func epilogue() {
	log.Infoln("Done!")
}

func handle_err(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}

func main() {
	defer once.Do(epilogue)

	if len(flag.Args()) != 1 {
		fmt.Println("Usage: vplot [-o out.png] [-t title] [-n] {vertices.txt}")
		flag.Usage()
		os.Exit(-1)
	}

	seq, err := vertex.Load(flag.Arg(0))
	handle_err(err)

	log.Debugf("Loaded %d vertices", len(seq))

	out := *outFile
	if out == "" {
		// default name is derived from the data, so re-running on the
		// same file overwrites the same image
		out = fmt.Sprintf("vplot-%s.png", fingerprint.Of(seq))
	}

	p, err := chart.New(seq, *title)
	handle_err(err)

	handle_err(chart.Save(p, out))
	log.Infof("Wrote %s (%d vertices)", out, len(seq))

	if !*noView {
		log.Debugln("Opening viewer...")
		handle_err(viewer.Open(out))
	}
}
