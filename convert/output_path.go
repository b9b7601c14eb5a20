package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"csheet/callsheet"
	"csheet/common"
	"csheet/config"
	"csheet/state"
)

// buildOutputPath returns constructed output file path/name. It uses either
// default naming scheme or user-defined template and takes into account
// whether to preserve source directory structure on the output. It cleans up
// path and if requested transliterates it. For stored documents src is empty.
func buildOutputPath(doc *callsheet.Document, src, dst string, format common.OutputFmt, env *state.LocalEnv) string {
	outDir := determineOutputDir(src, dst, env)
	defaultFile := buildDefaultFileName(doc, src, format, env)

	if env.Cfg.Document.OutputNameTemplate == "" {
		return filepath.Join(outDir, defaultFile)
	}

	expandedName := expandOutputNameTemplate(doc, src, format, env)
	if expandedName == "" {
		// fallback to default name if template expansion failed
		return filepath.Join(outDir, defaultFile)
	}

	return assemblePathWithSubdirs(outDir, expandedName, format, env)
}

func determineOutputDir(src, dst string, env *state.LocalEnv) string {
	if env.NoDirs || src == "" {
		return dst
	}
	return filepath.Join(dst, filepath.Dir(src))
}

// defaultBaseName prefers project and shooting day, then source file name,
// then document id.
func defaultBaseName(doc *callsheet.Document, src string) string {
	if name := strings.TrimSpace(doc.Project.Name); name != "" {
		if doc.Day.DayNumber > 0 {
			return fmt.Sprintf("%s day %d", name, doc.Day.DayNumber)
		}
		return name
	}
	if src != "" {
		return strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	}
	return doc.ID
}

func buildDefaultFileName(doc *callsheet.Document, src string, format common.OutputFmt, env *state.LocalEnv) string {
	return cleanPathSegment(defaultBaseName(doc, src), env) + format.Ext()
}

func expandOutputNameTemplate(doc *callsheet.Document, src string, format common.OutputFmt, env *state.LocalEnv) string {
	expandedName, err := expandTemplate(doc, src, config.OutputNameTemplateFieldName, env.Cfg.Document.OutputNameTemplate, format)
	if err != nil {
		env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		return ""
	}
	return filepath.FromSlash(strings.TrimSpace(expandedName))
}

// assemblePathWithSubdirs takes an expanded template name (which may contain
// path separators for subdirectories) and assembles it into a full output path,
// cleaning and transliterating segments as needed
func assemblePathWithSubdirs(outDir, expandedName string, format common.OutputFmt, env *state.LocalEnv) string {
	pathSegments := splitAndCleanPath(expandedName)

	if len(pathSegments) == 0 {
		return outDir
	}

	fileName := cleanPathSegment(pathSegments[len(pathSegments)-1], env) + format.Ext()
	dirParts := make([]string, 0, len(pathSegments)+1)
	dirParts = append(dirParts, outDir)

	for _, segment := range pathSegments[:len(pathSegments)-1] {
		dirParts = append(dirParts, cleanPathSegment(segment, env))
	}

	dirParts = append(dirParts, fileName)
	return filepath.Join(dirParts...)
}

func splitAndCleanPath(path string) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); tail != ""; head, tail = filepath.Split(head) {
		// ".." would escape destination
		if tail != ".." && tail != "." {
			segments = slices.Insert(segments, 0, tail)
		}
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" {
			break
		}
	}

	return segments
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Document.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
