// rhythmctl is the control CLI for rhythmd.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"rhythmd/internal/config"
	"rhythmd/internal/logging"
	"rhythmd/internal/replay"
	"rhythmd/internal/rhythm"
	"rhythmd/internal/store"
)

var (
	configPath = flag.String("config", "", "path to config file")
	textPath   = flag.String("text", "", "path to the final text of the session")
	asJSON     = flag.Bool("json", false, "emit JSON instead of a rendered report")
	save       = flag.Bool("save", false, "store the analyzed session")
	label      = flag.String("label", "", "label for a stored session")
	limit      = flag.Int("limit", 20, "maximum sessions to list")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)

	switch cmd {
	case "analyze":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Usage: rhythmctl analyze <trajectory.jsonl>")
			os.Exit(1)
		}
		cmdAnalyze(flag.Arg(1))
	case "report":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Usage: rhythmctl report <trajectory.jsonl>")
			os.Exit(1)
		}
		cmdReport(flag.Arg(1))
	case "history":
		cmdHistory()
	case "show":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Usage: rhythmctl show <session-id>")
			os.Exit(1)
		}
		cmdShow(flag.Arg(1))
	case "prune":
		cmdPrune()
	case "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `rhythmctl - Typing rhythm analysis utility for rhythmd

Usage: rhythmctl [options] <command> [args]

Commands:
  analyze <file>  Analyze a recorded trajectory and print the profile as JSON
  report <file>   Analyze a recorded trajectory and print a readable report
  history         List stored sessions
  show <id>       Show a stored session
  prune           Delete stored sessions past the retention period
  help            Show this help message

Options:
  -config <path>  Path to config file (default: <data-dir>/config.toml)
  -text <path>    Path to the final text of the session
  -json           Emit JSON instead of a rendered report
  -save           Store the analyzed session
  -label <name>   Label for a stored session
  -limit <n>      Maximum sessions to list (default 20)`)
}

func loadConfig() *config.Config {
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func openStore(cfg *config.Config) *store.Store {
	s, err := store.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session store: %v\n", err)
		os.Exit(1)
	}
	return s
}

// analyzeTrajectory runs the full pipeline over a recorded trajectory file.
func analyzeTrajectory(cfg *config.Config, path string) (*rhythm.Profile, time.Time, time.Time) {
	events, err := replay.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading trajectory: %v\n", err)
		os.Exit(1)
	}

	finalText := ""
	if *textPath != "" {
		data, err := os.ReadFile(*textPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading text file: %v\n", err)
			os.Exit(1)
		}
		finalText = string(data)
	}

	start, end, ok := replay.Bounds(events)
	if !ok {
		now := time.Now()
		start, end = now, now
	}

	profile := rhythm.Analyze(events, start, end, finalText, cfg.RhythmThresholds())

	logging.Debug("analyzed trajectory",
		"events", len(events),
		"duration", profile.DurationSeconds,
		"rhythm_type", string(profile.RhythmType),
	)

	return profile, start, end
}

func saveProfile(cfg *config.Config, p *rhythm.Profile, start, end time.Time) {
	s := openStore(cfg)
	defer s.Close()

	id, err := s.SaveProfile(p, start, end, *label)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error storing session: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Stored session %s\n", id)
}

func cmdAnalyze(path string) {
	cfg := loadConfig()
	profile, start, end := analyzeTrajectory(cfg, path)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(profile); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding profile: %v\n", err)
		os.Exit(1)
	}

	if *save {
		saveProfile(cfg, profile, start, end)
	}
}

func cmdReport(path string) {
	cfg := loadConfig()
	profile, start, end := analyzeTrajectory(cfg, path)

	rhythm.Report(os.Stdout, profile)

	if *save {
		saveProfile(cfg, profile, start, end)
	}
}

func cmdHistory() {
	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	sessions, err := s.ListSessions(*limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing sessions: %v\n", err)
		os.Exit(1)
	}

	if len(sessions) == 0 {
		fmt.Println("No stored sessions.")
		return
	}

	fmt.Printf("%-36s  %-19s  %-11s  %-11s  %7s  %s\n",
		"ID", "STORED", "RHYTHM", "FLUENCY", "SCORE", "LABEL")
	for _, sess := range sessions {
		fmt.Printf("%-36s  %-19s  %-11s  %-11s  %7.3f  %s\n",
			sess.ID,
			sess.CreatedAt.Format("2006-01-02 15:04:05"),
			sess.RhythmType,
			sess.FluencyLevel,
			sess.FluencyScore,
			sess.Label,
		)
	}
}

func cmdShow(id string) {
	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	sess, err := s.GetProfile(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading session: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(sess.Profile); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding profile: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("Session:  %s\n", sess.ID)
	if sess.Label != "" {
		fmt.Printf("Label:    %s\n", sess.Label)
	}
	fmt.Printf("Stored:   %s\n", sess.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Window:   %s to %s\n",
		sess.StartedAt.Format(time.RFC3339), sess.EndedAt.Format(time.RFC3339))
	fmt.Println()

	rhythm.Report(os.Stdout, sess.Profile)
}

func cmdPrune() {
	cfg := loadConfig()
	if cfg.Storage.RetainDays <= 0 {
		fmt.Println("Retention disabled; nothing to prune.")
		return
	}

	s := openStore(cfg)
	defer s.Close()

	retention := time.Duration(cfg.Storage.RetainDays) * 24 * time.Hour
	n, err := s.Prune(retention)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error pruning sessions: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Pruned %d session(s) older than %d days.\n", n, cfg.Storage.RetainDays)
}
