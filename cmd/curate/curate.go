package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/curate"
	"github.com/fwojciec/curate/fs"
	curslog "github.com/fwojciec/curate/slog"
	"github.com/google/uuid"
	"golang.org/x/net/html/charset"
	"golang.org/x/sync/errgroup"
)

// stdinName is the file argument that reads standard input.
const stdinName = "-"

// result is the outcome of curating one input.
type result struct {
	file        string
	source      string
	contentType string
	hash        string
	record      *curate.Record
	skipped     bool
	err         error
}

// Run executes the curate command. Inputs are loaded concurrently, checked
// for duplicates in argument order, then curated concurrently.
func (c *CurateCmd) Run(deps *Dependencies) error {
	results := make([]result, len(c.Files))

	c.each(func(i int) {
		results[i] = c.load(deps, c.Files[i])
	})

	if deps.Dedupe != nil {
		for i := range results {
			r := &results[i]
			if r.err == nil && deps.Dedupe.Seen(r.hash) {
				r.skipped = true
			}
		}
		deps.Logger.Debug("dedupe", "sources", deps.Dedupe.EstimatedCount())
	}

	c.each(func(i int) {
		if r := &results[i]; r.err == nil && !r.skipped {
			c.curate(deps, r)
		}
	})

	var (
		records []*curate.Record
		failed  int
	)
	for _, r := range results {
		switch {
		case r.err != nil:
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", r.file, errorText(r.err))
		case r.skipped:
			deps.Logger.Info("skip duplicate", "file", r.file)
		default:
			records = append(records, r.record)
		}
	}

	if err := c.emit(deps, records, failed > 0); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(c.Files))
	}
	return nil
}

// each calls fn for every input index with bounded concurrency.
func (c *CurateCmd) each(fn func(i int)) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i := range c.Files {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}

// load reads file and decodes it to UTF-8.
func (c *CurateCmd) load(deps *Dependencies, file string) result {
	res := result{file: file}

	raw, err := c.read(deps, file)
	if err != nil {
		res.err = err
		return res
	}

	res.contentType = c.ContentType
	if res.contentType == "" {
		res.contentType = deps.Sniffer.Sniff(raw)
	}

	res.source, err = decode(raw, res.contentType)
	if err != nil {
		res.err = err
		return res
	}
	res.hash = fmt.Sprintf("%016x", xxhash.Sum64String(res.source))
	return res
}

// curate runs a loaded input through the pipeline.
func (c *CurateCmd) curate(deps *Dependencies, res *result) {
	uri, err := c.uri(res.file)
	if err != nil {
		res.err = err
		return
	}

	content, err := deps.Pipeline.Flow(deps.Ctx,
		curate.Input{HTMLSource: res.source, URI: uri},
		curate.InitContext{ContentType: res.contentType},
	)
	if deps.Metrics != nil {
		deps.Metrics.ObserveRun(content, err)
	}
	if err != nil {
		res.err = err
		return
	}

	onError := curslog.SchemaErrorLogger(deps.Logger, uri)
	if deps.Metrics != nil {
		onError = deps.Metrics.SchemaErrorFunc(onError)
	}

	record := curate.NewRecord(content, curate.RecordOptions{
		Flatten: c.Flatten,
		OnError: onError,
	})
	record.ID = uuid.NewSHA1(uuid.NameSpaceURL, []byte(uri)).String()
	record.ContentHash = res.hash
	res.record = record
}

func (c *CurateCmd) read(deps *Dependencies, file string) ([]byte, error) {
	if file == stdinName {
		return io.ReadAll(deps.Stdin)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curate.Errorf(curate.ENOTFOUND, "file not found: %s", file)
		}
		return nil, err
	}
	return data, nil
}

// uri returns the record URI of file.
func (c *CurateCmd) uri(file string) (string, error) {
	if c.URI != "" {
		return c.URI, nil
	}
	if file == stdinName {
		return "stdin", nil
	}
	abs, err := filepath.Abs(file)
	if err != nil {
		return "", err
	}
	return "file://" + filepath.ToSlash(abs), nil
}

// decode converts raw to UTF-8 using the charset declared in contentType
// or in the document itself.
func decode(raw []byte, contentType string) (string, error) {
	r, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return "", curate.Errorf(curate.EINVALID, "decode input: %v", err)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// emit writes records to the store or to stdout. A failed batch is
// aborted when writing to a store.
func (c *CurateCmd) emit(deps *Dependencies, records []*curate.Record, failed bool) error {
	if deps.Store != nil {
		if failed {
			return deps.Store.Abort()
		}
		for _, r := range records {
			if err := deps.Store.Save(deps.Ctx, r); err != nil {
				_ = deps.Store.Abort()
				fmt.Fprintf(deps.Stderr, "error saving %s: %v\n", r.URI, err)
				return err
			}
		}
		if err := deps.Store.Commit(); err != nil {
			fmt.Fprintf(deps.Stderr, "error committing: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved %d records\n", len(records))
		return nil
	}

	if c.Format == "text" {
		if out := curate.FormatRecords(records); out != "" {
			fmt.Fprintln(deps.Stdout, out)
		}
		return nil
	}

	for i, r := range records {
		data, err := fs.MarshalRecord(r, c.Format)
		if err != nil {
			return err
		}
		if c.Format == fs.FormatYAML && i > 0 {
			fmt.Fprintln(deps.Stdout, "---")
		}
		if _, err := deps.Stdout.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// errorText returns the message of application errors and the full text of
// anything else.
func errorText(err error) string {
	if curate.ErrorCode(err) == curate.EINTERNAL {
		return err.Error()
	}
	return curate.ErrorMessage(err)
}
