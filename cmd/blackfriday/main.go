// Command blackfriday converts Markdown files (or stdin) to HTML.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	blackfriday "github.com/ragodev/blackfriday"
)

var (
	flagExtras       []string
	flagSafe         string
	flagHTML4Tags    bool
	flagUseFileVars  bool
	flagOutput       string
	flagLinkPatterns string
	flagWatch        bool
	flagVerbose      bool
)

const version = "1.0.0"

func main() {
	root := &cobra.Command{
		Use:     "blackfriday [file...]",
		Short:   "Convert Markdown to HTML",
		Version: version,
		RunE:    run,
	}
	root.Flags().StringSliceVarP(&flagExtras, "extras", "x", nil, "extension name, optionally NAME=VALUE (repeatable)")
	root.Flags().StringVarP(&flagSafe, "safe", "s", "", "safe mode: escape or replace")
	root.Flags().BoolVar(&flagHTML4Tags, "html4tags", false, "use HTML4-style void tags")
	root.Flags().BoolVar(&flagUseFileVars, "use-file-vars", false, "honor Emacs-style file variables")
	root.Flags().StringVarP(&flagOutput, "output", "o", "", "write HTML to this path instead of stdout")
	root.Flags().StringVar(&flagLinkPatterns, "link-patterns-file", "", "path to a link-patterns definition file")
	root.Flags().BoolVarP(&flagWatch, "watch", "w", false, "re-convert on file change")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger, _ := zap.NewDevelopment()
		blackfriday.SetLogger(logger)
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	md, err := blackfriday.NewMarkdown(*opts)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return convertStdin(md)
	}

	for _, path := range args {
		if err := convertFile(md, path); err != nil {
			return err
		}
	}

	if flagWatch && len(args) > 0 {
		return watchAndReconvert(md, args)
	}
	return nil
}

func buildOptions() (*blackfriday.Options, error) {
	extras := map[string]string{}
	for _, e := range flagExtras {
		parts := strings.SplitN(e, "=", 2)
		name := strings.TrimSpace(parts[0])
		val := ""
		if len(parts) == 2 {
			val = parts[1]
		}
		extras[name] = val
	}

	var patterns []blackfriday.LinkPattern
	if flagLinkPatterns != "" {
		var err error
		patterns, err = readLinkPatternsFile(flagLinkPatterns)
		if err != nil {
			return nil, err
		}
	}

	return &blackfriday.Options{
		Extras:       extras,
		SafeMode:     blackfriday.SafeMode(flagSafe),
		HTML4Tags:    flagHTML4Tags,
		UseFileVars:  flagUseFileVars,
		LinkPatterns: patterns,
	}, nil
}

func readLinkPatternsFile(path string) ([]blackfriday.LinkPattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []blackfriday.LinkPattern
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 {
			continue
		}
		out = append(out, blackfriday.LinkPattern{Pattern: parts[0], Href: strings.TrimSpace(parts[1])})
	}
	return out, nil
}

func convertStdin(md *blackfriday.Markdown) error {
	data, err := readAll(os.Stdin)
	if err != nil {
		return err
	}
	return convertAndWrite(md, string(data), flagOutput)
}

func convertFile(md *blackfriday.Markdown, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out := flagOutput
	if out == "" {
		out = strings.TrimSuffix(path, ".md") + ".html"
	}
	return convertAndWrite(md, string(data), out)
}

func convertAndWrite(md *blackfriday.Markdown, text, outPath string) error {
	res, err := md.Convert(text)
	if err != nil {
		return err
	}
	if outPath == "" {
		_, err := fmt.Print(res.HTML)
		return err
	}
	return os.WriteFile(outPath, []byte(res.HTML), 0o644)
}

func readAll(f *os.File) ([]byte, error) {
	var buf []byte
	tmp := make([]byte, 4096)
	for {
		n, err := f.Read(tmp)
		if n > 0 {
			buf = append(buf, tmp[:n]...)
		}
		if err != nil {
			break
		}
	}
	return buf, nil
}

// watchAndReconvert re-runs the conversion for each path whenever
// fsnotify reports it changed, matching the CLI's optional --watch
// ergonomics (an enrichment over spec.md §6's documented CLI surface).
func watchAndReconvert(md *blackfriday.Markdown, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, p := range paths {
		if err := watcher.Add(p); err != nil {
			return err
		}
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if err := convertFile(md, event.Name); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
