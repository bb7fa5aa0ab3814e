package transcribe

import (
	"path/filepath"
	"strings"
)

// Variant is one argument-shape convention tried against the transcriber
// binary. Builds of whisper.cpp disagree about how an output target is
// specified, so the job walks a fixed, ordered list of conventions. Order is
// priority: the first entry matches the most common tool build.
type Variant struct {
	Name string

	// outputArgs yields the variant-specific output directive given the
	// canonical transcript path (without its .txt extension) and the
	// directory the transcript should land in.
	outputArgs func(outputBase, outputDir string) []string
}

// Args assembles the full argv for one attempt: input path, text-format
// flag, the variant's output directive, then the request's common flags.
func (v Variant) Args(audioPath, canonicalPath string, common []string) []string {
	outputBase := strings.TrimSuffix(canonicalPath, filepath.Ext(canonicalPath))
	args := []string{"-f", audioPath, "-otxt"}
	args = append(args, v.outputArgs(outputBase, filepath.Dir(canonicalPath))...)
	return append(args, common...)
}

// DefaultVariants returns the ordered conventions tried per job.
func DefaultVariants() []Variant {
	return []Variant{
		{
			Name: "of-flag",
			outputArgs: func(outputBase, _ string) []string {
				return []string{"-of", outputBase}
			},
		},
		{
			Name: "output-file-flag",
			outputArgs: func(outputBase, _ string) []string {
				return []string{"--output-file", outputBase}
			},
		},
		{
			Name: "output-dir-flag",
			outputArgs: func(_, outputDir string) []string {
				return []string{"--output-dir", outputDir}
			},
		},
		{
			Name: "no-directive",
			outputArgs: func(_, _ string) []string {
				return nil
			},
		},
	}
}

// commonFlags builds the flags shared by every variant, appended after the
// output directive.
func commonFlags(req Request) []string {
	var flags []string
	if req.ModelPath != "" {
		flags = append(flags, "-m", req.ModelPath)
	}
	if req.Language != "" {
		flags = append(flags, "-l", req.Language)
	}
	if req.NoTimestamps {
		flags = append(flags, "-nt")
	}
	return flags
}
