// cairnctl is the control CLI for a cairn accumulator log.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"hash"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/cairnlog/cairn/codec"
	"github.com/cairnlog/cairn/config"
	"github.com/cairnlog/cairn/hashing"
	"github.com/cairnlog/cairn/mmr"
	"github.com/cairnlog/cairn/sqlitestore"
)

var (
	configPath = flag.String("config", "", "path to config file")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("load config", err)
	}
	setupLogging(cfg)

	switch cmd := flag.Arg(0); cmd {
	case "init":
		cmdInit(cfg)
	case "append":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Usage: cairnctl append <data>... (use @file to read a leaf from a file)")
			os.Exit(1)
		}
		cmdAppend(cfg, flag.Args()[1:])
	case "info":
		cmdInfo(cfg)
	case "prove":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Usage: cairnctl prove <position> [output-file]")
			os.Exit(1)
		}
		output := ""
		if flag.NArg() >= 3 {
			output = flag.Arg(2)
		}
		cmdProve(cfg, flag.Arg(1), output)
	case "verify":
		if flag.NArg() < 3 {
			fmt.Fprintln(os.Stderr, "Usage: cairnctl verify <proof-file> <data>")
			os.Exit(1)
		}
		cmdVerify(cfg, flag.Arg(1), flag.Arg(2))
	case "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `cairnctl - append only accumulator control

Usage: cairnctl [-config path] <command> [args]

Commands:
  init                       create the configured store
  append <data>...           append leaves (@file reads leaf data from a file)
  info                       print size, peak count and root
  prove <position> [file]    write the CBOR proof envelope (hex to stdout by default)
  verify <proof-file> <data> verify a proof envelope against data
  help                       show this help`)
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}

func setupLogging(cfg *config.Config) {
	var level slog.Level
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func newHasher(cfg *config.Config) hash.Hash {
	constructor, err := hashing.New(cfg.Hash.Algorithm)
	if err != nil {
		fatal("select hash", err)
	}
	return constructor()
}

func openEngine(cfg *config.Config) (*mmr.MMR, *mmr.Authority, *sqlitestore.Store) {
	store, err := sqlitestore.Open(cfg.Storage.Path)
	if err != nil {
		fatal("open store", err)
	}
	m, auth, err := mmr.New(store, newHasher(cfg))
	if err != nil {
		store.Close()
		fatal("restore accumulator", err)
	}
	return m, auth, store
}

func cmdInit(cfg *config.Config) {
	m, _, store := openEngine(cfg)
	defer store.Close()
	slog.Info("store ready", "path", cfg.Storage.Path, "size", m.Size(), "hash", cfg.Hash.Algorithm)
	fmt.Println(cfg.Storage.Path)
}

func cmdAppend(cfg *config.Config, args []string) {
	m, auth, store := openEngine(cfg)
	defer store.Close()

	data := make([][]byte, 0, len(args))
	for _, arg := range args {
		if strings.HasPrefix(arg, "@") {
			content, err := os.ReadFile(arg[1:])
			if err != nil {
				fatal("read leaf file", err)
			}
			data = append(data, content)
			continue
		}
		data = append(data, []byte(arg))
	}

	before := m.Size()
	if err := m.AppendLeaves(auth, data...); err != nil {
		fatal("append", err)
	}
	slog.Info("appended", "leaves", len(data), "nodes", m.Size()-before, "size", m.Size())
	fmt.Printf("size: %d\nroot: %s\n", m.Size(), hex.EncodeToString(m.Root()))
}

func cmdInfo(cfg *config.Config) {
	m, _, store := openEngine(cfg)
	defer store.Close()

	fmt.Printf("size:  %d\n", m.Size())
	fmt.Printf("peaks: %d\n", len(m.Peaks()))
	fmt.Printf("root:  %s\n", hex.EncodeToString(m.Root()))
}

func cmdProve(cfg *config.Config, posArg string, output string) {
	pos, err := strconv.ParseUint(posArg, 10, 64)
	if err != nil {
		fatal("parse position", err)
	}

	m, _, store := openEngine(cfg)
	defer store.Close()

	proof, err := m.GenerateProof(pos)
	if err != nil {
		fatal("generate proof", err)
	}

	cborCodec, err := codec.NewDeterministic()
	if err != nil {
		fatal("codec", err)
	}
	wire, err := cborCodec.EncodeProof(proof)
	if err != nil {
		fatal("encode proof", err)
	}

	if output == "" {
		fmt.Println(hex.EncodeToString(wire))
		return
	}
	if err = os.WriteFile(output, wire, 0o644); err != nil {
		fatal("write proof", err)
	}
	slog.Info("proof written", "position", pos, "file", output, "bytes", len(wire))
}

func cmdVerify(cfg *config.Config, proofPath string, dataArg string) {
	wire, err := os.ReadFile(proofPath)
	if err != nil {
		fatal("read proof", err)
	}

	cborCodec, err := codec.NewDeterministic()
	if err != nil {
		fatal("codec", err)
	}
	proof, err := cborCodec.DecodeProof(wire)
	if err != nil {
		fatal("decode proof", err)
	}

	data := []byte(dataArg)
	if strings.HasPrefix(dataArg, "@") {
		if data, err = os.ReadFile(dataArg[1:]); err != nil {
			fatal("read leaf file", err)
		}
	}

	// verification is pure, no store needed
	ok, err := mmr.VerifyInclusion(proof, newHasher(cfg), data)
	if err != nil {
		fatal("verify", err)
	}
	if !ok {
		fmt.Println("FAILED: proof does not commit this data")
		os.Exit(1)
	}
	fmt.Printf("OK: position %d of %d, root %s\n",
		proof.Position, proof.Size, hex.EncodeToString(proof.Root))
}
