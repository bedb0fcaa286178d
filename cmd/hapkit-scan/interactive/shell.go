// Package interactive provides the interactive command-line interface
// for hapkit-scan.
package interactive

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/chzyer/readline"
	"github.com/hapkit/hapkit-go/pkg/discovery"
	"github.com/hapkit/hapkit-go/pkg/ipdiscovery"
)

// Scanner is the part of the discovery controller the shell drives.
type Scanner interface {
	Start(allowDuplicates bool)
	Stop()
	List() []*discovery.ServiceRecord
	State() discovery.State
	SessionID() string
}

// Shell handles interactive mode for hapkit-scan.
type Shell struct {
	scanner    Scanner
	ipServices func() []*ipdiscovery.IPService
	rl         *readline.Instance
	out        io.Writer
}

// New creates a new interactive shell. Attach must be called before Run.
func New() (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "hap> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Shell{rl: rl, out: rl.Stdout()}, nil
}

// Attach sets the scanner and the optional IP service source.
func (s *Shell) Attach(scanner Scanner, ipServices func() []*ipdiscovery.IPService) {
	s.scanner = scanner
	s.ipServices = ipServices
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Stderr returns a writer that properly coordinates with the readline input.
func (s *Shell) Stderr() io.Writer {
	return s.rl.Stderr()
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if quit := s.execute(line); quit {
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}
	}
}

// execute runs one command line and reports whether the shell should exit.
func (s *Shell) execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "list", "ls", "l":
		s.cmdList()

	case "ip":
		s.cmdIP()

	case "start":
		s.cmdStart(args)

	case "stop":
		s.cmdStop()

	case "status":
		s.cmdStatus()

	case "find", "f":
		s.cmdFind(args)

	case "quit", "exit", "q":
		return true

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
HAP Scanner Commands:
  list          - List discovered accessories
  ip            - List accessories found over IP
  start [dup]   - Start scanning (dup: report every advertisement)
  stop          - Stop scanning
  status        - Show scanner status
  find <uri>    - Find the accessory for an X-HM:// setup URI
  help          - Show this help
  quit          - Exit`)
}

func (s *Shell) cmdList() {
	records := s.scanner.List()
	if len(records) == 0 {
		fmt.Fprintln(s.out, "No accessories discovered")
		return
	}
	sort.Slice(records, func(i, j int) bool { return records[i].DeviceID < records[j].DeviceID })

	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DEVICE ID\tNAME\tCATEGORY\tGSN\tCN\tPAIRED")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%t\n",
			rec.DeviceID,
			rec.Name,
			rec.Category(),
			rec.GlobalStateNumber,
			rec.ConfigurationNumber,
			rec.Flags().Paired())
	}
	w.Flush()
}

func (s *Shell) cmdIP() {
	if s.ipServices == nil {
		fmt.Fprintln(s.out, "IP browsing is not enabled (use -ip)")
		return
	}
	services := s.ipServices()
	if len(services) == 0 {
		fmt.Fprintln(s.out, "No IP accessories discovered")
		return
	}

	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DEVICE ID\tMODEL\tCATEGORY\tS#\tC#\tADDRESS")
	for _, svc := range services {
		addr := svc.Host
		if len(svc.Addresses) > 0 {
			addr = svc.Addresses[0]
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s:%d\n",
			svc.DeviceID,
			svc.Model,
			svc.Category,
			svc.StateNumber,
			svc.ConfigurationNumber,
			addr, svc.Port)
	}
	w.Flush()
}

func (s *Shell) cmdStart(args []string) {
	dup := false
	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "dup", "duplicates", "-d":
			dup = true
		default:
			fmt.Fprintln(s.out, "Usage: start [dup]")
			return
		}
	}
	s.scanner.Start(dup)
	fmt.Fprintf(s.out, "Scanning started (session %s, duplicates: %t)\n", s.scanner.SessionID(), dup)
}

func (s *Shell) cmdStop() {
	s.scanner.Stop()
	fmt.Fprintln(s.out, "Scanning stopped")
}

func (s *Shell) cmdStatus() {
	state := s.scanner.State()
	fmt.Fprintf(s.out, "Scan:        %s\n", state.Scan)
	fmt.Fprintf(s.out, "Adapter:     %s\n", state.Power)
	fmt.Fprintf(s.out, "Session:     %s\n", s.scanner.SessionID())
	fmt.Fprintf(s.out, "Accessories: %d\n", len(s.scanner.List()))
}

func (s *Shell) cmdFind(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: find <X-HM://...>")
		return
	}
	payload, err := discovery.ParseSetupURI(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid setup URI: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Setup ID %s, category %s, code %s\n", payload.SetupID, payload.Category, payload.SetupCode)

	found := 0
	for _, rec := range s.scanner.List() {
		if rec.MatchesSetupID(payload.SetupID) {
			fmt.Fprintf(s.out, "  BLE: %s\n", rec)
			found++
		}
	}
	if s.ipServices != nil {
		for _, svc := range s.ipServices() {
			if svc.MatchesSetupID(payload.SetupID) {
				fmt.Fprintf(s.out, "  IP:  %s\n", svc)
				found++
			}
		}
	}
	if found == 0 {
		fmt.Fprintln(s.out, "No matching accessory (it may not advertise a setup hash)")
	}
}
