// Package main provides mipsdecode, a command-line front end for the
// MIPS32 field decoder.
//
// Examples:
//
//	mipsdecode decode 0x00641820 0x2128FFFF
//	mipsdecode decode --profile ori 0x35288000
//	mipsdecode scan --width 64 program.elf
//	mipsdecode -v scan --profiles table.json program.elf
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/sarchlab/mipsdecode/loader"
)

var (
	profileFlag = &cli.StringFlag{
		Name:    "profile",
		Aliases: []string{"p"},
		Usage:   "Resolve every word with the named profile instead of matching by opcode",
	}
	profilesFlag = &cli.PathFlag{
		Name:  "profiles",
		Usage: "Path to a JSON profile table merged over the built-in one",
	}
	widthFlag = &cli.IntFlag{
		Name:  "width",
		Usage: "Immediate width in bits (32 or 64)",
		Value: 32,
	}
	dumpFlag = &cli.BoolFlag{
		Name:  "dump",
		Usage: "Dump the decoded fields of every word",
	}
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Verbose output",
	}
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	app := newApp(os.Stdout, log)
	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("mipsdecode failed")
	}
}

func newApp(out io.Writer, log *logrus.Logger) *cli.App {
	return &cli.App{
		Name:   "mipsdecode",
		Usage:  "Decode MIPS32 instruction words into fields, registers and immediates",
		Writer: out,
		Flags:  []cli.Flag{verboseFlag},
		Before: func(ctx *cli.Context) error {
			if ctx.Bool(verboseFlag.Name) {
				log.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "decode",
				Usage:     "Decode instruction words given on the command line",
				ArgsUsage: "WORD...",
				Flags:     []cli.Flag{profileFlag, profilesFlag, widthFlag, dumpFlag},
				Action: func(ctx *cli.Context) error {
					return runDecode(ctx, log)
				},
			},
			{
				Name:      "scan",
				Usage:     "Decode every instruction word of a MIPS32 ELF executable",
				ArgsUsage: "PROGRAM.elf",
				Flags:     []cli.Flag{profilesFlag, widthFlag, dumpFlag},
				Action: func(ctx *cli.Context) error {
					return runScan(ctx, log)
				},
			},
		},
	}
}

func newReporter(ctx *cli.Context, log *logrus.Logger) (*reporter, error) {
	width := ctx.Int(widthFlag.Name)
	if width != 32 && width != 64 {
		return nil, fmt.Errorf("width must be 32 or 64, got %d", width)
	}

	profiles := DefaultProfiles()
	if path := ctx.Path(profilesFlag.Name); path != "" {
		var err error
		profiles, err = LoadProfiles(path)
		if err != nil {
			return nil, err
		}
		log.WithField("path", path).Debug("loaded profiles")
	}
	log.WithField("count", len(profiles.Profiles)).Debug("profile table ready")

	r := &reporter{
		out:      ctx.App.Writer,
		profiles: profiles,
		width:    width,
		dump:     ctx.Bool(dumpFlag.Name),
	}

	if name := ctx.String(profileFlag.Name); name != "" {
		p, ok := profiles.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown profile %q", name)
		}
		r.forced = p
	}

	return r, nil
}

func runDecode(ctx *cli.Context, log *logrus.Logger) error {
	if ctx.NArg() == 0 {
		return fmt.Errorf("no instruction words given")
	}

	r, err := newReporter(ctx, log)
	if err != nil {
		return err
	}

	for _, arg := range ctx.Args().Slice() {
		word, err := parseWord(arg)
		if err != nil {
			return err
		}
		log.WithField("word", fmt.Sprintf("0x%08X", word)).Debug("decoding")
		if _, err := r.report(word, 0, false); err != nil {
			return err
		}
	}
	return nil
}

func runScan(ctx *cli.Context, log *logrus.Logger) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expected one program path, got %d arguments", ctx.NArg())
	}
	path := ctx.Args().First()

	prog, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("error loading program: %w", err)
	}

	code := prog.Code()
	log.WithFields(logrus.Fields{
		"path":     path,
		"entry":    fmt.Sprintf("0x%08X", prog.EntryPoint),
		"segments": len(prog.Segments),
		"words":    len(code),
	}).Debug("loaded program")

	r, err := newReporter(ctx, log)
	if err != nil {
		return err
	}

	unmatched := 0
	for _, w := range code {
		matched, err := r.report(w.Value, w.Addr, true)
		if err != nil {
			return err
		}
		if !matched {
			unmatched++
		}
	}
	if unmatched > 0 {
		log.WithField("count", unmatched).Warn("words without a matching profile")
	}
	return nil
}
