package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/zen/cmds"
	"github.com/reusee/zen/zenlang"
)

var files []string

func addFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	files = append(files, path)
	return nil
}

func init() {
	cmds.Define("-file", cmds.Func(func(pattern string) {
		paths, err := filepath.Glob(pattern)
		if err != nil {
			// ignore
			files = append(files, pattern)
		} else {
			for _, path := range paths {
				info, err := os.Stat(path)
				if err != nil {
					continue
				}
				if info.IsDir() {
					continue
				}
				files = append(files, path)
			}
		}
	}).Desc("parse files matching the pattern"))

	cmds.Fallback(addFile)
}

var errNotText = errors.New("not a text file")

func readSource(path string) (*zenlang.Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if len(content) > 0 {
		mtype := mimetype.Detect(content)
		isText := false
		for t := mtype; t != nil; t = t.Parent() {
			if t.Is("text/plain") {
				isText = true
				break
			}
		}
		if !isText {
			return nil, fmt.Errorf("%s: %w (%s)", path, errNotText, mtype.String())
		}
	}

	return zenlang.NewSource(path, string(content)), nil
}
