// rhythmd - Typing rhythm capture and analysis daemon
//
// rhythmd reads live keystroke events from stdin, one JSON object per line,
// timestamps them on arrival, and emits a behavioral typing profile when the
// stream ends:
//
//	rhythmd capture              Capture events from stdin, print the profile
//	rhythmd capture -save        Capture and store the session
//	rhythmd version              Print version
//
// Input lines carry only the event kind and the produced character, e.g.
// {"type":"type","char":"a"} or {"type":"backspace"}. Timing comes from the
// daemon clock, so the stream must be fed in real time; for recorded
// trajectories use rhythmctl instead.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"rhythmd/internal/config"
	"rhythmd/internal/logging"
	"rhythmd/internal/rhythm"
	"rhythmd/internal/store"
)

const version = "1.0.0"

var (
	configPath = flag.String("config", "", "path to config file")
	save       = flag.Bool("save", false, "store the captured session")
	label      = flag.String("label", "", "label for the stored session")
	report     = flag.Bool("report", false, "print a rendered report instead of JSON")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "capture":
		cmdCapture()
	case "version":
		fmt.Printf("rhythmd %s\n", version)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", flag.Arg(0))
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `rhythmd - Typing rhythm capture daemon

Usage: rhythmd [options] <command>

Commands:
  capture         Capture keystroke events from stdin and print the profile
  version         Print version
  help            Show this help message

Options:
  -config <path>  Path to config file (default: <data-dir>/config.toml)
  -save           Store the captured session
  -label <name>   Label for the stored session
  -report         Print a rendered report instead of JSON

Input format: one JSON object per line, {"type":"type","char":"a"}.
Events are timestamped on arrival. The profile describes only timing and
rhythm; the typed text never appears in logs.`)
}

// inputEvent is one line of the stdin stream.
type inputEvent struct {
	Type string `json:"type"`
	Char string `json:"char"`
}

func cmdCapture() {
	cfg, loader := setup()
	if loader != nil {
		defer loader.Close()
	}

	log, err := logging.New(loggingConfig(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()
	logging.SetDefault(log)

	detector := rhythm.NewDetector(rhythm.WithThresholds(cfg.RhythmThresholds()))
	if loader != nil {
		loader.OnChange(func(newCfg *config.Config) {
			// Threshold changes apply to the next session; the live event
			// log is analyzed with the thresholds it started under.
			log.Info("configuration reloaded")
		})
	}

	detector.StartMonitoring()
	startedAt := time.Now()
	log.Info("capture started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	lines := make(chan string)
	errCh := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		errCh <- scanner.Err()
		close(lines)
	}()

	var text []rune
	dropped := 0

loop:
	for {
		select {
		case sig := <-sigCh:
			log.Info("received signal, finishing capture", "signal", sig.String())
			break loop

		case line, ok := <-lines:
			if !ok {
				if err := <-errCh; err != nil {
					log.Error("stdin read failed", "error", err.Error())
				}
				break loop
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			var ev inputEvent
			if err := json.Unmarshal([]byte(line), &ev); err != nil || ev.Type == "" {
				dropped++
				continue
			}

			detector.RecordKeystroke(ev.Char, rhythm.EventType(ev.Type))
			text = applyToText(text, ev)
		}
	}

	if dropped > 0 {
		log.Warn("dropped malformed input lines", "count", dropped)
	}

	profile := detector.FinishMonitoring(string(text))
	endedAt := time.Now()
	log.Info("capture finished",
		"keystrokes", profile.TotalKeystrokes,
		"duration", profile.DurationSeconds,
		"rhythm_type", string(profile.RhythmType),
		"fluency_level", string(profile.FluencyLevel),
	)

	if *report {
		rhythm.Report(os.Stdout, profile)
	} else {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(profile); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding profile: %v\n", err)
			os.Exit(1)
		}
	}

	if *save {
		s, err := store.Open(cfg.Storage.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening session store: %v\n", err)
			os.Exit(1)
		}
		defer s.Close()

		id, err := s.SaveProfile(profile, startedAt, endedAt, *label)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error storing session: %v\n", err)
			os.Exit(1)
		}
		log.Info("session stored", "session_id", id)
		fmt.Fprintf(os.Stderr, "Stored session %s\n", id)
	}
}

// setup loads configuration and, when a config file exists, starts watching
// it for changes.
func setup() (*config.Config, *config.Loader) {
	path := *configPath
	if path == "" {
		path = config.ConfigPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		return cfg, nil
	}

	loader := config.NewLoader(path)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := loader.Watch(); err != nil {
		fmt.Fprintf(os.Stderr, "Error watching config: %v\n", err)
		os.Exit(1)
	}
	return cfg, loader
}

func loggingConfig(cfg *config.Config) *logging.Config {
	lc := logging.DefaultConfig()

	if lvl, err := logging.ParseLevel(cfg.Logging.Level); err == nil {
		lc.Level = lvl
	}
	if f, err := logging.ParseFormat(cfg.Logging.Format); err == nil {
		lc.Format = f
	}
	if cfg.Logging.Output != "" {
		lc.Output = cfg.Logging.Output
	}
	if cfg.Logging.FilePath != "" {
		lc.FilePath = cfg.Logging.FilePath
	}
	if cfg.Logging.MaxSizeMB > 0 {
		lc.MaxSizeMB = int64(cfg.Logging.MaxSizeMB)
	}
	if cfg.Logging.MaxBackups > 0 {
		lc.MaxBackups = cfg.Logging.MaxBackups
	}
	return lc
}

// applyToText reconstructs the produced text from the event stream so the
// final profile can include text rhythm analysis.
func applyToText(text []rune, ev inputEvent) []rune {
	switch rhythm.EventType(ev.Type) {
	case rhythm.EventTypeChar, rhythm.EventCompositionDone:
		return append(text, []rune(ev.Char)...)
	case rhythm.EventBackspace, rhythm.EventDelete:
		if len(text) > 0 {
			return text[:len(text)-1]
		}
	}
	return text
}
