// Command gesturereplay runs a recorded or scripted pointer sequence through a
// gesture Recognizer on a virtual clock and prints one JSON report per line.
//
//	gesturereplay -script pinch.json
//	gesturereplay -events session.jsonl -interval 500ms
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/phanxgames/gesture"
)

func main() {
	scriptPath := flag.String("script", "", "gesture script (JSON)")
	eventsPath := flag.String("events", "", "recorded events (JSON lines)")
	interval := flag.Duration("interval", gesture.DefaultReportInterval, "report interval")
	ttl := flag.Duration("ttl", gesture.DefaultCacheTTL, "contact time-to-live")
	capacity := flag.Int("capacity", gesture.DefaultCacheCapacity, "maximum tracked contacts")
	swipe := flag.Float64("swipe", gesture.DefaultSwipeThreshold, "swipe magnitude threshold")
	emitEmpty := flag.Bool("empty", false, "print reports for empty intervals")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	log := gesture.NewConsoleLogger(os.Stderr, *level)

	evs, err := loadInput(*scriptPath, *eventsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load input")
	}

	cfg := gesture.DefaultConfig()
	cfg.ReportInterval = *interval
	cfg.CacheTTL = *ttl
	cfg.CacheCapacity = *capacity
	cfg.SwipeThreshold = *swipe
	cfg.EmitEmpty = *emitEmpty
	cfg.Debug = *level == "debug" || *level == "trace"
	cfg.Logger = &log

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	enc := json.NewEncoder(out)

	n, err := replay(cfg, evs, func(r gesture.Report) {
		if err := enc.Encode(r); err != nil {
			log.Error().Err(err).Uint64("seq", r.Seq).Msg("encode report")
		}
	})
	if err != nil {
		log.Fatal().Err(err).Msg("replay")
	}
	log.Info().Int("events", len(evs)).Int("reports", n).Msg("replay done")
}

func loadInput(scriptPath, eventsPath string) ([]gesture.PointerEvent, error) {
	switch {
	case scriptPath != "" && eventsPath != "":
		return nil, fmt.Errorf("use either -script or -events, not both")
	case scriptPath != "":
		data, err := os.ReadFile(scriptPath)
		if err != nil {
			return nil, err
		}
		script, err := gesture.LoadScript(data)
		if err != nil {
			return nil, err
		}
		return script.Events(), nil
	case eventsPath != "":
		f, err := os.Open(eventsPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readEvents(f)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		script, err := gesture.LoadScript(data)
		if err != nil {
			return nil, err
		}
		return script.Events(), nil
	}
}
