// Command sha3sum prints the SHA3-256/384/512 (or Keccak) digest of a
// file, in the spirit of the reference sha3sum utility:
//
//	sha3sum 256|384|512 [-k] <path>
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	keccak "github.com/brainhub/go-sha3iuf"
)

// exitUsage and exitFilesystem distinguish a bad invocation (missing or
// invalid digest size, unrecognized flag) from a failure reading or
// hashing the target file: 0 success, 1 usage error, 2 filesystem
// failure.
const (
	exitUsage      = 1
	exitFilesystem = 2
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).With().Timestamp().Logger()

	app := &cli.App{
		Name:      "sha3sum",
		Usage:     "print the SHA3 (or Keccak) digest of a file",
		UsageText: "sha3sum 256|384|512 [-k] <path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "keccak",
				Aliases: []string{"k"},
				Usage:   "use the original Keccak padding instead of FIPS 202 SHA-3",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, log)
		},
		// urfave/cli's own flag-parsing failures (e.g. an unrecognized
		// flag) reach this hook as a plain error rather than an
		// ExitCoder; without it they'd fall through to the generic
		// exitFilesystem handling below and be misreported as a
		// filesystem failure instead of a usage error.
		OnUsageError: func(c *cli.Context, err error, isSubcommand bool) error {
			return cli.Exit(err, exitUsage)
		},
	}

	if err := app.Run(os.Args); err != nil {
		if code, ok := err.(cli.ExitCoder); ok {
			os.Exit(code.ExitCode())
		}
		log.Error().Err(err).Msg("sha3sum failed")
		os.Exit(exitFilesystem)
	}
}

func run(c *cli.Context, log zerolog.Logger) error {
	args := c.Args().Slice()
	useKeccak := c.Bool("keccak")
	// Flag parsing stops at the first positional argument, so a -k written
	// after the digest size arrives here as a plain argument.
	if len(args) == 3 && (args[1] == "-k" || args[1] == "--keccak") {
		useKeccak = true
		args = []string{args[0], args[2]}
	}
	if len(args) != 2 {
		cli.ShowAppHelp(c)
		return cli.Exit("expected exactly 2 arguments: 256|384|512 <path>", exitUsage)
	}

	bitSize, err := parseBitSize(args[0])
	if err != nil {
		log.Error().Str("arg", args[0]).Msg("invalid digest size")
		return cli.Exit(err, exitUsage)
	}

	path := args[1]
	mode := keccak.ModeSHA3
	if useKeccak {
		mode = keccak.ModeKeccak
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("cannot read file")
		return cli.Exit(fmt.Sprintf("cannot read file %q: %v", path, err), exitFilesystem)
	}

	digest := make([]byte, bitSize/8)
	if _, err := keccak.HashBuffer(bitSize, mode, data, digest); err != nil {
		log.Error().Err(err).Msg("hashing failed")
		return cli.Exit(err, exitFilesystem)
	}

	fmt.Printf("%s  %s\n", hex.EncodeToString(digest), path)
	return nil
}

func parseBitSize(s string) (int, error) {
	switch s {
	case "256", "384", "512":
	default:
		return 0, fmt.Errorf("digest size must be 256, 384, or 512, got %q", s)
	}
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n, nil
}
