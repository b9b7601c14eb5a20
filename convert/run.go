package convert

import (
	"archive/zip"
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync/atomic"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"csheet/archive"
	"csheet/callsheet"
	"csheet/common"
	"csheet/css"
	"csheet/state"
)

//go:embed default.css
var defaultStylesheet []byte

// prepareStylesheet appends sanitized user stylesheet (if any) to the built-in
// one.
func prepareStylesheet(path string, log *zap.Logger) ([]byte, error) {
	if len(path) == 0 {
		return defaultStylesheet, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read style css from %q: %w", path, err)
	}
	extra, problems, err := css.NewSanitizer(log).Sanitize(data, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if len(problems) > 0 {
		log.Warn("Some stylesheet rules were dropped", zap.String("file", path), zap.Int("count", len(problems)))
	}
	style := make([]byte, 0, len(defaultStylesheet)+len(extra)+1)
	style = append(style, defaultStylesheet...)
	style = append(style, '\n')
	return append(style, extra...), nil
}

// documentFunc handles single call sheet snapshot found in the source. "src"
// is part of the source path relative to the original path (always including
// file name), "baseDir" is used to resolve relative image references.
type documentFunc func(ctx context.Context, data []byte, src, baseDir string) error

// keeps report entry names unique when the same document is processed twice
var reportSeq atomic.Int64

// Render renders call sheets from files, directories, archives or from the
// snapshot store.
func Render(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	format, err := common.ParseOutputFmt(cmd.String("to"))
	if err != nil {
		log.Warn("Unknown output format requested, switching to xhtml", zap.Error(err))
		format = common.OutputFmtXhtml
	}
	env.Format = format

	if name := cmd.String("layout"); len(name) > 0 {
		mode, err := common.ParseLayoutMode(name)
		if err != nil {
			return fmt.Errorf("unable to use requested layout: %w", err)
		}
		env.Cfg.Document.Layout = mode
	}

	if env.DefaultStyle, err = prepareStylesheet(env.Cfg.Document.StylesheetPath, log); err != nil {
		return err
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	if ids := cmd.StringSlice("stored"); len(ids) > 0 {
		dst, err := destination(cmd.Args().Get(0))
		if err != nil {
			return err
		}
		if cmd.Args().Len() > 1 {
			log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
		}
		log.Info("Processing starting", zap.Strings("stored", ids), zap.String("destination", dst), zap.Stringer("format", format))
		defer func(start time.Time) {
			log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
		}(time.Now())

		return renderStored(ctx, ids, dst, log)
	}

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}
	dst, err := destination(cmd.Args().Get(1))
	if err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, func(ctx context.Context, data []byte, src, baseDir string) error {
		doc, err := loadDocument(data, src, log)
		if err != nil {
			return err
		}
		return renderDocument(ctx, doc, src, baseDir, dst, log)
	}, log)
}

// Import saves call sheets into the snapshot store.
func Import(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("import")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	s, err := env.Store()
	if err != nil {
		return err
	}

	log.Info("Import starting", zap.String("source", src), zap.String("store", env.Cfg.Store.Path))
	defer func(start time.Time) {
		log.Info("Import completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, func(ctx context.Context, data []byte, src, _ string) error {
		doc, err := loadDocument(data, src, log)
		if err != nil {
			return err
		}
		entry, err := s.Put(ctx, doc, src, data)
		if err != nil {
			return err
		}
		log.Info("Call sheet imported", zap.String("id", entry.ID), zap.Int64("revision", entry.Revision), zap.String("from", src))
		return nil
	}, log)
}

func destination(dst string) (string, error) {
	var err error
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return "", fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	return filepath.Abs(dst)
}

// process handles the core logic independently of CLI framework. It
// determines the input type (directory, archive, or single file) and processes
// accordingly.
func process(ctx context.Context, src string, fn documentFunc, log *zap.Logger) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := processDir(ctx, head, fn, log); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		archive, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if archive {
			// we need to look inside to see if path makes sense
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			if err := processArchive(ctx, head, filepath.ToSlash(tail), "", fn, log); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}

		sheet, err := isCallSheetFile(head)
		if err != nil {
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if sheet && len(tail) == 0 {
			data, err := os.ReadFile(head)
			if err != nil {
				log.Error("Unable to process file", zap.String("file", head), zap.Error(err))
				break
			}
			if err := fn(ctx, data, filepath.Base(head), filepath.Dir(head)); err != nil {
				log.Error("Unable to process file", zap.String("file", head), zap.Error(err))
			}
			break
		}
		return fmt.Errorf("input was not recognized as call sheet (%s)", head)
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return nil
}

// processDir walks directory tree finding call sheets and processes them.
func processDir(ctx context.Context, dir string, fn documentFunc, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		archive, err := isArchiveFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if archive {
			if err := processArchive(ctx, path, "", filepath.Dir(src), fn, log); err != nil {
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			return nil
		}

		sheet, err := isCallSheetFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if !sheet {
			log.Debug("Skipping file, not recognized as call sheet or archive", zap.String("file", path))
			return nil
		}

		count++

		data, err := os.ReadFile(path)
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			return nil
		}

		if err := fn(ctx, data, src, filepath.Dir(path)); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	return err
}

// processArchive walks all files inside archive, finds call sheets under
// "pathIn" and processes them.
func processArchive(ctx context.Context, path, pathIn, pathOut string, fn documentFunc, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("archive", path))
		}
	}()

	err = archive.Walk(ctx, path, pathIn, func(archive string, f *zip.File) error {
		sheet, err := isCallSheetInArchive(f)
		if err != nil {
			log.Warn("Skipping file in archive",
				zap.String("archive", archive), zap.String("path", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		if !sheet {
			log.Debug("Skipping file, not recognized as call sheet", zap.String("archive", archive), zap.String("file", f.FileHeader.Name))
			return nil
		}

		count++

		r, err := f.Open()
		if err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", archive), zap.String("file", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		data, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", archive), zap.String("file", f.FileHeader.Name), zap.Error(err))
			return nil
		}

		if err := fn(ctx, data, filepath.Join(pathOut, filepath.FromSlash(f.FileHeader.Name)), filepath.Dir(archive)); err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", archive), zap.String("file", f.FileHeader.Name), zap.Error(err))
		}
		return nil
	})
	return err
}

// loadDocument decodes and normalizes snapshot. Data problems are logged and
// never fail loading.
func loadDocument(data []byte, src string, log *zap.Logger) (*callsheet.Document, error) {
	doc, diags, err := callsheet.Parse(bytes.NewReader(data), log)
	if err != nil {
		return nil, fmt.Errorf("unable to parse call sheet (%s): %w", src, err)
	}
	if err := doc.Normalize(log); err != nil {
		return nil, err
	}
	diags.Log(log.With(zap.String("id", doc.ID)))
	return doc, nil
}

func renderStored(ctx context.Context, ids []string, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	s, err := env.Store()
	if err != nil {
		return err
	}

	var failed int
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		doc, diags, entry, err := s.Get(ctx, id)
		if err != nil {
			log.Error("Unable to load stored call sheet", zap.String("id", id), zap.Error(err))
			failed++
			continue
		}
		if err := doc.Normalize(log); err != nil {
			return err
		}
		diags.Log(log.With(zap.String("id", doc.ID)))

		if err := renderDocument(ctx, doc, "", filepath.Dir(entry.Source), dst, log); err != nil {
			log.Error("Unable to render stored call sheet", zap.String("id", id), zap.Error(err))
			failed++
		}
	}
	if failed == len(ids) {
		return errors.New("no stored call sheets were rendered")
	}
	return nil
}

// renderDocument composes and writes single call sheet. "src" is empty for
// stored documents.
func renderDocument(ctx context.Context, doc *callsheet.Document, src, baseDir, dst string, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var outputName string

	log.Info("Rendering starting", zap.String("id", doc.ID), zap.String("from", src))
	defer func(start time.Time) {
		// NOTE: image processing libraries may panic on broken data, when
		// many documents are being processed we do not want to stop.
		if r := recover(); r != nil {
			log.Error("Rendering ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("rendering panic: %v", r)
		} else if rerr == nil {
			log.Info("Rendering completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.String("id", doc.ID))
		}
	}(time.Now())

	p, diags := newComposer(env, baseDir, log).Compose(doc)
	diags.Log(log.With(zap.String("id", doc.ID)))

	outputName = buildOutputPath(doc, src, dst, env.Format, env)

	// Check if output file already exists
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := generate(ctx, p, env.Format, outputName, env, log); err != nil {
		return fmt.Errorf("unable to generate output: %w", err)
	}

	// Store rendering artifacts for debugging
	if env.Rpt != nil {
		seq := reportSeq.Add(1)
		env.Rpt.StoreData(fmt.Sprintf("documents/%s-%d.txt", doc.ID, seq), []byte(doc.String()))
		if len(diags) > 0 {
			if err := env.Rpt.StoreYAML(fmt.Sprintf("diagnostics/%s-%d.yaml", doc.ID, seq), diags); err != nil {
				log.Warn("Unable to store diagnostics in report", zap.Error(err))
			}
		}
		if err := env.Rpt.StoreCopy(fmt.Sprintf("results/%s%s", doc.ID, filepath.Ext(outputName)), outputName); err != nil {
			log.Warn("Unable to store result in report", zap.Error(err))
		}
	}
	return nil
}
