package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/xorbreak/codec"
	"github.com/opd-ai/xorbreak/crack"
	"github.com/opd-ai/xorbreak/xor"
)

var commands = []string{"hex2b64", "fixedxor", "encrypt", "single", "detect", "keysize", "break"}

// errNoSolution is returned when a search finds no key producing text.
var errNoSolution = errors.New("no key produced valid text")

// CLIConfig holds the parsed command line.
type CLIConfig struct {
	command           string
	args              []string
	key               string
	raw               bool
	logLevel          string
	workers           int
	minKeysize        int
	maxKeysize        int
	keysizeCandidates int
	skipMalformed     bool
	help              bool
}

// parseCLIFlags parses a subcommand and its flags.
func parseCLIFlags(args []string, output io.Writer) (*CLIConfig, error) {
	if len(args) == 0 {
		return &CLIConfig{help: true}, nil
	}
	switch args[0] {
	case "help", "-h", "-help", "--help":
		return &CLIConfig{help: true}, nil
	}

	config := &CLIConfig{command: args[0]}
	fs := flag.NewFlagSet(config.command, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: %s %s [options] [arguments]\n\nOptions:\n", os.Args[0], config.command)
		fs.PrintDefaults()
	}

	// Input configuration
	fs.StringVar(&config.key, "key", "", "Repeating key for encrypt")
	fs.BoolVar(&config.raw, "raw", false, "Treat ciphertext input as raw bytes instead of hex")

	// Search configuration
	fs.IntVar(&config.workers, "workers", runtime.NumCPU(), "Concurrent scoring workers")
	fs.IntVar(&config.minKeysize, "min-keysize", crack.DefaultMinKeysize, "Smallest repeating key length tried")
	fs.IntVar(&config.maxKeysize, "max-keysize", crack.DefaultMaxKeysize, "Largest repeating key length tried")
	fs.IntVar(&config.keysizeCandidates, "keysize-candidates", 1, "Number of best keysizes tried by break")
	fs.BoolVar(&config.skipMalformed, "skip-malformed", false, "Skip malformed corpus lines instead of failing")

	// Logging configuration
	fs.StringVar(&config.logLevel, "log-level", "WARN", "Log level (DEBUG, INFO, WARN, ERROR)")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	config.args = fs.Args()
	return config, nil
}

// printUsage prints the usage information.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "xorbreak: XOR cipher analysis")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s <command> [options] [arguments]\n", os.Args[0])
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  hex2b64 [hex...]        hex to base64")
	fmt.Fprintln(w, "  fixedxor <hexA> <hexB>  XOR two equal-length hex buffers")
	fmt.Fprintln(w, "  encrypt -key K [file]   repeating-key XOR, hex output")
	fmt.Fprintln(w, "  single [hex]            recover a single-byte XOR key")
	fmt.Fprintln(w, "  detect [file]           find the single-byte XOR line in a hex corpus")
	fmt.Fprintln(w, "  keysize [file]          estimate a repeating key length")
	fmt.Fprintln(w, "  break [file]            recover a repeating XOR key")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run '<command> -help' for the options of a command.")
}

// validateCLIConfig validates the CLI configuration.
func validateCLIConfig(config *CLIConfig) error {
	known := false
	for _, c := range commands {
		if config.command == c {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown command %q", config.command)
	}

	if config.workers < 1 {
		return fmt.Errorf("workers must be positive")
	}

	if config.minKeysize < 1 || config.maxKeysize < config.minKeysize {
		return fmt.Errorf("invalid keysize range %d-%d", config.minKeysize, config.maxKeysize)
	}

	if config.keysizeCandidates < 1 {
		return fmt.Errorf("keysize candidates must be positive")
	}

	if _, err := logrus.ParseLevel(config.logLevel); err != nil {
		return fmt.Errorf("invalid log level %q", config.logLevel)
	}

	switch config.command {
	case "fixedxor":
		if len(config.args) != 2 {
			return fmt.Errorf("fixedxor needs exactly two hex arguments")
		}
	case "encrypt":
		if config.key == "" {
			return fmt.Errorf("encrypt needs a non-empty -key")
		}
	}
	return nil
}

// createOptions maps the CLI configuration onto analyzer options.
func createOptions(config *CLIConfig) *crack.Options {
	opts := crack.DefaultOptions()
	opts.Workers = config.workers
	opts.MinKeysize = config.minKeysize
	opts.MaxKeysize = config.maxKeysize
	opts.KeysizeCandidates = config.keysizeCandidates
	opts.SkipMalformed = config.skipMalformed
	return opts
}

// configureLogging sets the logrus level and format for the tool.
func configureLogging(level string, output io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetOutput(output)
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return nil
}

// readInput reads the first argument as a file, or stdin when there is none.
func readInput(args []string, stdin io.Reader) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

// decodeCiphertext returns raw input unchanged, or hex decodes it with all
// whitespace removed.
func decodeCiphertext(data []byte, raw bool) ([]byte, error) {
	if raw {
		return data, nil
	}
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, string(data))
	return codec.DecodeHex(compact)
}

// run executes one command.
func run(ctx context.Context, config *CLIConfig, stdin io.Reader, stdout io.Writer) error {
	switch config.command {
	case "hex2b64":
		return runHexToBase64(config, stdin, stdout)
	case "fixedxor":
		a, err := codec.DecodeHex(config.args[0])
		if err != nil {
			return err
		}
		b, err := codec.DecodeHex(config.args[1])
		if err != nil {
			return err
		}
		out, err := xor.Fixed(a, b)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, codec.EncodeHex(out))
		return nil
	case "encrypt":
		return runEncrypt(config, stdin, stdout)
	}

	analyzer, err := crack.NewAnalyzer(createOptions(config))
	if err != nil {
		return err
	}

	switch config.command {
	case "single":
		return runSingle(ctx, analyzer, config, stdin, stdout)
	case "detect":
		return runDetect(ctx, analyzer, config, stdin, stdout)
	case "keysize":
		data, err := readInput(config.args, stdin)
		if err != nil {
			return err
		}
		ct, err := decodeCiphertext(data, config.raw)
		if err != nil {
			return err
		}
		res, err := analyzer.EstimateKeysize(ct)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "keysize: %d\ndistance: %.4f\n", res.Keysize, res.Distance)
		return nil
	case "break":
		return runBreak(ctx, analyzer, config, stdin, stdout)
	}
	return fmt.Errorf("unknown command %q", config.command)
}

func runHexToBase64(config *CLIConfig, stdin io.Reader, stdout io.Writer) error {
	inputs := config.args
	if len(inputs) == 0 {
		lines, err := codec.ReadHexLines(stdin)
		if err != nil {
			return err
		}
		inputs = lines
	}
	for _, in := range inputs {
		out, err := codec.HexToBase64(in)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, out)
	}
	return nil
}

func runEncrypt(config *CLIConfig, stdin io.Reader, stdout io.Writer) error {
	data, err := readInput(config.args, stdin)
	if err != nil {
		return err
	}

	stream, err := xor.NewCipher([]byte(config.key))
	if err != nil {
		return err
	}
	defer stream.Wipe()

	out := make([]byte, len(data))
	stream.XORKeyStream(out, data)
	fmt.Fprintln(stdout, codec.EncodeHex(out))
	return nil
}

func runSingle(ctx context.Context, analyzer *crack.Analyzer, config *CLIConfig, stdin io.Reader, stdout io.Writer) error {
	var data []byte
	if len(config.args) > 0 {
		data = []byte(config.args[0])
	} else {
		var err error
		if data, err = io.ReadAll(stdin); err != nil {
			return err
		}
	}
	ct, err := decodeCiphertext(data, config.raw)
	if err != nil {
		return err
	}

	c, err := analyzer.BreakSingleByte(ctx, ct)
	if err != nil {
		return err
	}
	if !c.Valid {
		return errNoSolution
	}
	fmt.Fprintf(stdout, "key: %q (%#02x)\nscore: %.4f\nplaintext: %s\n", c.Key, c.Key, c.Score, c.Plaintext)
	return nil
}

func runDetect(ctx context.Context, analyzer *crack.Analyzer, config *CLIConfig, stdin io.Reader, stdout io.Writer) error {
	data, err := readInput(config.args, stdin)
	if err != nil {
		return err
	}
	lines, err := codec.ReadHexLines(bytes.NewReader(data))
	if err != nil {
		return err
	}

	res, err := analyzer.DetectLine(ctx, lines)
	if err != nil {
		return err
	}
	if res.Index < 0 {
		return errNoSolution
	}
	fmt.Fprintf(stdout, "line: %d\nkey: %q (%#02x)\nscore: %.4f\nplaintext: %s\n",
		res.Index, res.Key, res.Key, res.Score, res.Plaintext)
	return nil
}

func runBreak(ctx context.Context, analyzer *crack.Analyzer, config *CLIConfig, stdin io.Reader, stdout io.Writer) error {
	data, err := readInput(config.args, stdin)
	if err != nil {
		return err
	}
	ct, err := decodeCiphertext(data, config.raw)
	if err != nil {
		return err
	}

	res, err := analyzer.BreakRepeatingKey(ctx, ct)
	if err != nil {
		return err
	}
	defer xor.SecureWipe(res.Key)

	fmt.Fprintf(stdout, "keysize: %d\nkey: %q\nscore: %.4f\n\n%s\n", res.Keysize, res.Key, res.Score, res.Plaintext)
	return nil
}

// setupSignalHandling cancels ctx on interrupt.
func setupSignalHandling(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	go func() {
		sig := <-sigChan
		logrus.WithField("signal", sig.String()).Warn("Interrupted, cancelling search")
		cancel()
	}()
}

func main() {
	config, err := parseCLIFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if config.help {
		printUsage(os.Stdout)
		os.Exit(0)
	}

	if err := validateCLIConfig(config); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Use -help for usage information.\n")
		os.Exit(1)
	}

	if err := configureLogging(config.logLevel, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandling(cancel)

	if err := run(ctx, config, os.Stdin, os.Stdout); err != nil {
		logrus.WithFields(logrus.Fields{
			"command": config.command,
			"error":   err.Error(),
		}).Error("Command failed")
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.command, err)
		os.Exit(1)
	}
}
