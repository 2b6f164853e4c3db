package ingest

// Dataset source resolution for rtkgraph.
// Uses hashicorp/go-getter for flexible source handling including:
//   - Local paths
//   - HTTP(S) URLs
//   - GitHub shorthand (github.com/user/repo//file)
//   - Archives (zip, tar.gz) with auto-extraction

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter"
	"go.uber.org/zap"

	"github.com/teranos/rtkgraph/errors"
	"github.com/teranos/rtkgraph/logger"
)

// Source represents a resolved dataset source
type Source struct {
	// LocalPath is the path to the local file (either original or fetched)
	LocalPath string
	// OriginalInput is the original input (URL or path)
	OriginalInput string
	// IsFetched indicates if the file was fetched from a remote source
	IsFetched bool
	// cleanup function to call when done with the source
	cleanup func()
}

// Text reads the resolved file and returns its contents.
func (s *Source) Text() (string, error) {
	data, err := os.ReadFile(s.LocalPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read dataset %s", s.LocalPath)
	}
	return string(data), nil
}

// Close removes any temporary resources created for this source.
// Safe to call multiple times.
func (s *Source) Close() {
	if s.cleanup != nil {
		s.cleanup()
		s.cleanup = nil
	}
}

// Resolve resolves an input to a local dataset file using go-getter.
// Supports:
//   - Local paths: /path/to/data.csv, ./relative/path, ~/home/path
//   - URLs: https://example.com/kanji.csv
//   - Archives: https://example.com/data.tar.gz (auto-extracted)
//
// Remote sources are fetched under cacheDir. The returned Source must be
// closed when done.
func Resolve(input, cacheDir string, log *zap.SugaredLogger) (*Source, error) {
	if log == nil {
		log = logger.Logger
	}
	pwd, err := os.Getwd()
	if err != nil {
		pwd = "."
	}

	// Use go-getter's detection to identify source type
	detected, err := getter.Detect(input, pwd, getter.Detectors)
	if err != nil {
		return nil, errors.Wrap(err, "failed to detect source type")
	}

	log.Debugw("go-getter detected source",
		"input", input,
		"detected", detected,
	)

	parsedURL, err := url.Parse(detected)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse detected URL")
	}

	// For file:// URLs or local paths, use directly
	if parsedURL.Scheme == "file" || parsedURL.Scheme == "" {
		localPath := input
		if parsedURL.Scheme == "file" {
			localPath = parsedURL.Path
		}

		if strings.HasPrefix(localPath, "~/") {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, errors.Wrap(err, "failed to expand home directory")
			}
			localPath = filepath.Join(home, localPath[2:])
		}

		if !filepath.IsAbs(localPath) {
			localPath = filepath.Join(pwd, localPath)
		}

		if _, err := os.Stat(localPath); err != nil {
			return nil, errors.Wrapf(errors.ErrNotFound, "no dataset at %s", localPath)
		}

		return &Source{
			LocalPath:     localPath,
			OriginalInput: input,
			IsFetched:     false,
			cleanup:       func() {}, // No cleanup needed for local files
		}, nil
	}

	return fetch(input, detected, cacheDir, log)
}

// fetch downloads a remote dataset using go-getter.
func fetch(input, detected, cacheDir string, log *zap.SugaredLogger) (*Source, error) {
	name := datasetName(input)

	if cacheDir == "" {
		cacheDir = os.TempDir()
	}
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create cache directory")
	}

	dst, err := os.MkdirTemp(cacheDir, "rtk-"+name+"-*")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fetch directory")
	}
	target := filepath.Join(dst, name)

	log.Infow("Fetching dataset",
		"input", input,
		"detected", detected,
		"destination", target,
	)

	client := &getter.Client{
		Ctx:  context.Background(),
		Src:  detected,
		Dst:  target,
		Mode: getter.ClientModeFile,
		// Use default getters which include git, http, s3, gcs, etc.
		Getters: getter.Getters,
	}

	if err := client.Get(); err != nil {
		os.RemoveAll(dst)
		return nil, errors.Wrap(err, "failed to fetch dataset")
	}

	log.Infow("Fetch completed",
		"destination", target,
	)

	return &Source{
		LocalPath:     target,
		OriginalInput: input,
		IsFetched:     true,
		cleanup: func() {
			log.Debugw("Cleaning up fetched dataset", "path", dst)
			os.RemoveAll(dst)
		},
	}, nil
}

// datasetName extracts a clean file name from a URL or path, used for cache
// directory naming.
func datasetName(input string) string {
	input = strings.TrimSuffix(input, "/")
	if i := strings.IndexAny(input, "?#"); i >= 0 {
		input = input[:i]
	}

	name := input
	if strings.Contains(input, "/") {
		parts := strings.Split(input, "/")
		for i := len(parts) - 1; i >= 0; i-- {
			if parts[i] != "" {
				name = parts[i]
				break
			}
		}
	}

	replacer := strings.NewReplacer(":", "-", "@", "-", " ", "-")
	name = replacer.Replace(name)
	if name == "" {
		name = "dataset"
	}
	return name
}
