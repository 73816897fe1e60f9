package main

import (
	"bytes"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/DiscordGophers/docsite/render"
	"github.com/DiscordGophers/docsite/site"
	"github.com/pkg/errors"
)

// processDir rewrites every html page under dir in place. Pages that come out
// unchanged are not written back, and pages whose absolute path is in skip
// are left alone.
func processDir(dir string, opts render.Options, skip map[string]bool) (stats, error) {
	var st stats

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".html") {
			return nil
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if skip[abs] {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		in, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrap(err, "could not read page")
		}

		var out bytes.Buffer
		res, err := render.Process(bytes.NewReader(in), &out, opts)
		if err != nil {
			return errors.Wrapf(err, "could not process %s", path)
		}

		st.pages++
		st.bytes += uint64(len(in))
		st.anchors += res.Anchors
		st.credits += res.Credits

		if res.Anchors == 0 && res.Credits == 0 {
			return nil
		}
		if err := os.WriteFile(path, out.Bytes(), info.Mode().Perm()); err != nil {
			return errors.Wrap(err, "could not write page")
		}
		st.rewritten++
		log.Printf("Linkified %s (%d anchors)", path, res.Anchors)
		return nil
	})
	return st, err
}

// writeHome renders the home page to path and returns its absolute path, so
// the directory pass can leave it alone.
func writeHome(cfg site.Config, vars site.Variables, path, language string, opts render.Options) (string, render.Result, error) {
	page, res, err := render.Index(cfg, vars, language, time.Now(), opts)
	if err != nil {
		return "", res, errors.Wrap(err, "could not render home page")
	}
	if err := os.WriteFile(path, page, 0o644); err != nil {
		return "", res, errors.Wrap(err, "could not write home page")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", res, errors.Wrap(err, "could not resolve home page path")
	}
	return abs, res, nil
}
