// Package cli hosts the interactive command loop over a file transfer session.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/danmuck/eftp/internal/linecode"
	"github.com/danmuck/eftp/internal/logging"
	"github.com/danmuck/eftp/internal/medium"
	"github.com/danmuck/eftp/internal/observability"
	"github.com/danmuck/eftp/internal/protocol/session"
	"github.com/rs/zerolog"
)

// ErrQuit signals caller-intent to leave the command loop.
var ErrQuit = errors.New("quit")

// Options tune the shell's presentation.
type Options struct {
	Prompt string
	// Echo repeats each command before executing it, useful with piped input.
	Echo bool
}

func DefaultOptions() Options {
	return Options{Prompt: "eftp> "}
}

// Shell reads commands line by line and dispatches them to the session.
type Shell struct {
	reader  *bufio.Reader
	out     io.Writer
	session *session.Session
	line    Queue
	opts    Options
	logger  zerolog.Logger
}

// Queue is the view of the line the shell needs for status and reset.
type Queue interface {
	HasData() bool
	Drain() int
}

func NewShell(in io.Reader, out io.Writer, s *session.Session, line Queue, opts Options) *Shell {
	return &Shell{
		reader:  bufio.NewReader(in),
		out:     out,
		session: s,
		line:    line,
		opts:    opts,
		logger:  logging.Component("cli"),
	}
}

// Run executes the command loop until quit or end of input.
func (sh *Shell) Run() error {
	for {
		raw, err := sh.promptLine(sh.opts.Prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if strings.TrimSpace(raw) == "" {
			continue
		}
		if sh.opts.Echo {
			fmt.Fprintln(sh.out, raw)
		}
		if err := sh.Execute(raw); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			sh.logger.Debug().Err(err).Str("command", firstWord(raw)).Msg("command failed")
			fmt.Fprintf(sh.out, "error: %v\n", err)
		}
	}
}

// Execute runs one command line.
func (sh *Shell) Execute(raw string) error {
	cmd, arg := splitCommand(raw)
	switch cmd {
	case "encode":
		return sh.encode(arg)
	case "decode":
		return sh.decode()
	case "transmit":
		if _, err := sh.session.TransmitBytes([]byte(arg)); err != nil {
			return err
		}
		fmt.Fprintln(sh.out, "transmitted")
		return nil
	case "receive":
		return sh.receive()
	case "transmitFile":
		return sh.transmitFile(strings.TrimSpace(arg))
	case "receiveFile":
		return sh.receiveFile()
	case "status":
		fmt.Fprintf(sh.out, "line has data: %t\n", sh.line.HasData())
		return nil
	case "reset":
		n := sh.line.Drain()
		sh.logger.Info().Int("dropped", n).Msg("line reset")
		fmt.Fprintf(sh.out, "dropped %d frames\n", n)
		return nil
	case "help":
		sh.printHelp()
		return nil
	case "quit", "exit":
		return ErrQuit
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
}

func (sh *Shell) encode(text string) error {
	streams := linecode.Encode([]byte(text))
	observability.RecordFrame("encode", "ok")
	for _, s := range streams {
		fmt.Fprintln(sh.out, s)
	}
	return nil
}

func (sh *Shell) decode() error {
	lines := make([]string, 0, linecode.NumStreams)
	for i := 1; i <= linecode.NumStreams; i++ {
		line, err := sh.promptLine(fmt.Sprintf("stream %d: ", i))
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}
	streams, err := linecode.ParseStreams(lines)
	if err != nil {
		return err
	}
	data, err := linecode.Decode(streams)
	if err != nil {
		observability.RecordFrame("decode", linecode.Kind(err))
		return err
	}
	observability.RecordFrame("decode", "ok")
	fmt.Fprintln(sh.out, string(data))
	return nil
}

func (sh *Shell) receive() error {
	data, err := sh.session.ReceiveBytes()
	if errors.Is(err, medium.ErrNoData) {
		fmt.Fprintln(sh.out, "no data")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(sh.out, string(data))
	return nil
}

func (sh *Shell) transmitFile(path string) error {
	if path == "" {
		return errors.New("transmitFile needs a path")
	}
	report, err := sh.session.TransmitFile(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "transmitted %s (%d bytes, %d segments)\n", report.Name, report.Bytes, report.Segments)
	return nil
}

func (sh *Shell) receiveFile() error {
	_, report, err := sh.session.ReceiveFile()
	if errors.Is(err, medium.ErrNoData) && report.Name == "" {
		fmt.Fprintln(sh.out, "no data")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "received %s (%d bytes, %d segments)\n", report.StoredAs, report.Bytes, report.Segments)
	return nil
}

func (sh *Shell) printHelp() {
	fmt.Fprintln(sh.out, "commands:")
	fmt.Fprintln(sh.out, "  encode <text>        print the three 8B/6T streams for text")
	fmt.Fprintln(sh.out, "  decode               read three streams and print the decoded text")
	fmt.Fprintln(sh.out, "  transmit <text>      encode text and put it on the line")
	fmt.Fprintln(sh.out, "  receive              take one frame off the line and decode it")
	fmt.Fprintln(sh.out, "  transmitFile <path>  send a file over the line")
	fmt.Fprintln(sh.out, "  receiveFile          receive a file from the line and store it")
	fmt.Fprintln(sh.out, "  status               report whether the line holds frames")
	fmt.Fprintln(sh.out, "  reset                drop every frame on the line")
	fmt.Fprintln(sh.out, "  quit")
}

func (sh *Shell) promptLine(label string) (string, error) {
	if label != "" {
		fmt.Fprint(sh.out, label)
	}
	line, err := sh.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// splitCommand cuts raw at the first space after the command word. The
// argument is returned byte for byte so text payloads keep their spacing.
func splitCommand(raw string) (string, string) {
	raw = strings.TrimLeft(raw, " \t")
	cmd, arg, _ := strings.Cut(raw, " ")
	return strings.TrimRight(cmd, " \t"), arg
}

func firstWord(raw string) string {
	cmd, _ := splitCommand(raw)
	return cmd
}
