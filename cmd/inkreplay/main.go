// Command inkreplay replays a recorded input trace through an ink session
// and renders the result.
//
// Usage:
//
//	inkreplay -trace scribble.yaml -out strokes.png -preview preview.png -dump strokes.yaml
//
// -zoom renders the canvas magnified; trace coordinates are image pixels.
//
// With -watch the replay runs again whenever the trace or config file
// changes.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/ink"
)

func main() {
	var (
		tracePath   = flag.String("trace", "", "input trace (YAML)")
		configPath  = flag.String("config", "", "tuning file (TOML)")
		out         = flag.String("out", "strokes.png", "committed strokes image")
		previewOut  = flag.String("preview", "", "live preview image")
		dump        = flag.String("dump", "", "write committed strokes (YAML)")
		width       = flag.Int("width", 0, "image width (default from trace, else 800)")
		height      = flag.Int("height", 0, "image height (default from trace, else 600)")
		zoom        = flag.Float64("zoom", 1, "view zoom: image pixels per canvas unit")
		watch       = flag.Bool("watch", false, "replay again when the trace or config changes")
		printConfig = flag.Bool("print-config", false, "print the effective config and exit")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	ink.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	opts := options{
		trace:   *tracePath,
		config:  *configPath,
		out:     *out,
		preview: *previewOut,
		dump:    *dump,
		width:   *width,
		height:  *height,
		zoom:    *zoom,
	}

	if *printConfig {
		cfg, err := opts.loadConfig()
		if err != nil {
			log.Fatal(err)
		}
		if err := cfg.Encode(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	if opts.trace == "" {
		flag.Usage()
		os.Exit(2)
	}

	if !*watch {
		sum, err := replay(opts)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("replayed %d events: %d strokes, %d erased, %d rejected\n",
			sum.events, sum.strokes, sum.erased, sum.rejected)
		return
	}

	if err := watchAndReplay(opts); err != nil {
		log.Fatal(err)
	}
}
