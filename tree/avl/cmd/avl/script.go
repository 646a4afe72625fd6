package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.lepak.sg/avlset/tree/avl"
	"gopkg.in/yaml.v3"
)

// Script is a replayable sequence of set operations.
//
//	keys: [5, 3, 8]      # inserted first, in this order
//	ops:
//	  - {op: insert, key: 4}
//	  - {op: erase, key: 3}
//	  - {op: find, key: 3}
type Script struct {
	Keys []int `yaml:"keys"`
	Ops  []Op  `yaml:"ops"`
}

type Op struct {
	Op  string `yaml:"op"`
	Key int    `yaml:"key"`
}

var ErrUnknownOp = errors.New("unknown op")

// LoadScript reads a Script from a YAML file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes a Script and rejects unknown ops up front,
// so a bad script never leaves a half-applied tree behind.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	for i, op := range s.Ops {
		switch strings.ToLower(op.Op) {
		case "insert", "erase", "find":
		default:
			return nil, fmt.Errorf("%w %q at ops[%d]", ErrUnknownOp, op.Op, i)
		}
	}

	return &s, nil
}

// Run applies the script to tr, writing one line per op to w.
func (s *Script) Run(tr *avl.Tree[int], w io.Writer) error {
	for _, k := range s.Keys {
		tr.Insert(k)
	}

	for _, op := range s.Ops {
		var line string
		switch strings.ToLower(op.Op) {
		case "insert":
			line = fmt.Sprintf("insert %d: added=%t", op.Key, tr.Insert(op.Key))
		case "erase":
			line = fmt.Sprintf("erase %d: removed=%t", op.Key, tr.Erase(op.Key))
		case "find":
			if k, ok := tr.Find(op.Key); ok {
				line = fmt.Sprintf("find %d: found %d", op.Key, k)
			} else {
				line = fmt.Sprintf("find %d: not found", op.Key)
			}
		default:
			return fmt.Errorf("%w %q", ErrUnknownOp, op.Op)
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return tr.Check()
}
