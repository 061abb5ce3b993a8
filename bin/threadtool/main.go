// Command threadtool converts an exported comment thread between json and
// msgpack, or prints it as indented text.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arborhw/arbor/comment"
	"github.com/arborhw/arbor/logger"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func formatFromName(name string) comment.Format {
	if filepath.Ext(name) == ".json" {
		return comment.FormatJSON
	}
	return comment.FormatMsgpack
}

// closeOutput closes c and returns err, or the close error if err is nil.
func closeOutput(c io.Closer, name string, err error) error {
	cerr := c.Close()
	if err == nil && cerr != nil {
		return errors.Wrapf(cerr, "closing %s", name)
	}
	return err
}

func mainInner() error {
	inPtr := flag.String("in", "", "thread file")
	outPtr := flag.String("out", "", "output file (default stdout)")
	fromPtr := flag.String("from", "", "input format: json or msgpack (default from file extension)")
	toPtr := flag.String("to", "text", "output format: text, json or msgpack")
	statsPtr := flag.Bool("stats", false, "print reply count, depth and authors")
	dumpPtr := flag.Bool("dump", false, "dump the decoded record structure")
	indentPtr := flag.String("indent", comment.DefaultIndent, "indentation unit for text output")
	maxDepthPtr := flag.Int("max-depth", comment.DefaultMaxDecodeDepth, "deepest thread accepted")
	debugPtr := flag.Bool("debug", false, "debug logging")
	logStylePtr := flag.String("log-style", "plain", "log style: plain, fancy or file")
	logFilePtr := flag.String("log-file", "", "log file (default stderr)")
	flag.Parse()

	if *inPtr == "" {
		return fmt.Errorf("need --in")
	}

	log := logger.New("threadtool")
	if err := log.Configure(*logStylePtr, *debugPtr, *logFilePtr); err != nil {
		return err
	}
	ctx := logger.NewContext(logger.WithTag(context.TODO(), "in", *inPtr), log)

	cfg, err := comment.NewConfig(*indentPtr, *maxDepthPtr)
	if err != nil {
		return err
	}

	from := formatFromName(*inPtr)
	if *fromPtr != "" {
		from, err = comment.ParseFormat(*fromPtr)
		if err != nil {
			return err
		}
	}

	dat, err := os.ReadFile(*inPtr)
	if err != nil {
		return err
	}
	thread, err := comment.Decode(ctx, cfg, dat, from)
	if err != nil {
		return errors.Wrapf(err, "reading %s", *inPtr)
	}

	var w io.Writer = os.Stdout
	var outFile *os.File
	if *outPtr != "" {
		outFile, err = os.Create(*outPtr)
		if err != nil {
			return err
		}
		w = outFile
	}

	if *dumpPtr {
		spew.Fdump(os.Stderr, thread.Serialize())
	}

	if *toPtr == "text" {
		err = thread.Display(w, cfg)
	} else {
		to, perr := comment.ParseFormat(*toPtr)
		if perr != nil {
			return perr
		}
		var enc []byte
		enc, err = thread.Encode(to)
		if err == nil {
			_, err = w.Write(enc)
		}
		if err == nil {
			ctx.Info("wrote %d bytes of %v", len(enc), to)
		}
	}
	if outFile != nil {
		err = closeOutput(outFile, *outPtr, err)
	}
	if err != nil {
		return err
	}

	if *statsPtr {
		fmt.Fprintf(os.Stderr, "replies: %d\n", thread.CountReplies())
		fmt.Fprintf(os.Stderr, "max depth: %d\n", thread.MaxDepth())
		fmt.Fprintf(os.Stderr, "authors: %v\n", thread.Authors())
	}
	return nil
}

func main() {
	err := mainInner()
	if err != nil {
		panic(err.Error())
	}
}
