// Command tickseq builds a movement sequence from a YAML scenario and writes
// its text serialization.
//
//	tickseq [-config path] [-out file] [-print] [-inputs] script.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/comalice/tickseq"
	"github.com/comalice/tickseq/internal/config"
	"github.com/comalice/tickseq/internal/script"
	"github.com/comalice/tickseq/move"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	flags := flag.NewFlagSet("tickseq", flag.ContinueOnError)
	flags.SetOutput(errOut)
	configPath := flags.String("config", "", "path to the config file (default $TICKSEQ_CONFIG or ~/.config/tickseq/config.toml)")
	outPath := flags.String("out", "", "output file (default: the script's output, or <name>.txt in output.dir)")
	printSeq := flags.Bool("print", false, "print the sequence to stdout")
	printInputs := flags.Bool("inputs", false, "print the key state of every tick instead of the move")
	flags.Usage = func() {
		fmt.Fprintln(errOut, "usage: tickseq [flags] script.yaml")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	logger, err := cfg.Log.Logger(errOut)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	s, err := script.Load(flags.Arg(0))
	if err != nil {
		logger.Error().Err(err).Msg("load script")
		return 1
	}
	if s.Default == "" {
		s.Default = cfg.Sequence.Default
	}

	counts := &tickseq.CountingSink{}
	sink := tickseq.MultiSink(tickseq.LogSink(logger), counts)
	seq, err := script.Build(s, move.Parse, tickseq.WithSink(sink))
	if err != nil {
		logger.Error().Err(err).Str("script", s.Name).Msg("build sequence")
		return 1
	}

	if *printSeq {
		if *printInputs {
			_, err = move.Inputs(seq, tickseq.WithSink(sink)).WriteTo(out)
		} else {
			_, err = seq.WriteTo(out)
		}
		if err != nil {
			logger.Error().Err(err).Msg("print sequence")
			return 1
		}
	}

	path := outputPath(*outPath, s, cfg.Output.Dir)
	written, err := seq.Write(path)
	if err != nil {
		return 1
	}

	logger.Info().
		Str("script", s.Name).
		Int("ticks", seq.Len()).
		Int("distinct", len(seq.AsSet())).
		Int("diagnostics", counts.Total()).
		Str("path", written).
		Msg("sequence written")
	return 0
}

// outputPath resolves where the sequence is written. An explicit -out is
// used as is; otherwise the script's output or "<name>.txt" is placed in dir.
func outputPath(flagValue string, s *script.Script, dir string) string {
	if flagValue != "" {
		return flagValue
	}
	name := s.Output
	if name == "" {
		name = s.Name + ".txt"
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
