package convert

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"csheet/common"
	"csheet/convert/text"
	"csheet/convert/xhtml"
	"csheet/preview"
	"csheet/state"
	"csheet/utils/images"
)

// newComposer prepares composer from document configuration. Relative image
// references are resolved against baseDir.
func newComposer(env *state.LocalEnv, baseDir string, log *zap.Logger) *preview.Composer {
	dc := &env.Cfg.Document

	lang, err := language.Parse(dc.Language)
	if err != nil {
		log.Warn("Unable to parse document language, using English", zap.String("language", dc.Language), zap.Error(err))
		lang = language.English
	}

	opts := preview.Options{
		Mode: dc.Layout,
		Theme: preview.Theme{
			Primary:     dc.Theme.Primary,
			Accent:      dc.Theme.Accent,
			Text:        dc.Theme.Text,
			Background:  dc.Theme.Background,
			CenterShape: dc.Theme.CenterShape,
			Zoom:        dc.Theme.Zoom,
		},
		Deprecated: dc.DeprecatedTokens,
		Language:   lang,
	}
	if dc.Images.Embed {
		opts.Loader = images.NewLoader(baseDir, dc.Images.MaxHeight, dc.Images.JPEGQuality, log.Named("images"))
	}
	return preview.NewComposer(opts, log.Named("compose"))
}

// generate writes preview in the requested format.
func generate(ctx context.Context, p *preview.Preview, format common.OutputFmt, outputPath string, env *state.LocalEnv, log *zap.Logger) error {
	switch format {
	case common.OutputFmtXhtml:
		return xhtml.New(env.DefaultStyle, log.Named("xhtml")).Generate(ctx, p, outputPath)
	case common.OutputFmtText:
		return text.New(log.Named("text")).Generate(ctx, p, outputPath)
	default:
		return fmt.Errorf("unsupported output format requested: %s", format)
	}
}
