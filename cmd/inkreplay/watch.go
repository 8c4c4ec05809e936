package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watchAndReplay replays once, then again after every change to the trace
// or config file, until interrupted. Directories are watched rather than
// the files so editors that save by rename keep triggering replays.
func watchAndReplay(o options) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	watched := map[string]bool{}
	for _, p := range []string{o.trace, o.config} {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		watched[abs] = true
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watch: %w", err)
		}
	}

	run := func() {
		sum, err := replay(o)
		if err != nil {
			log.Printf("replay failed: %v\n", err)
			return
		}
		log.Printf("replayed %d events: %d strokes, %d erased, %d rejected\n",
			sum.events, sum.strokes, sum.erased, sum.rejected)
	}
	run()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	for {
		select {
		case <-interrupt:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if relevant(event, watched) {
				run()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v\n", err)
		}
	}
}

func relevant(event fsnotify.Event, watched map[string]bool) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return watched[abs]
}
