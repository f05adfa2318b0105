// Package credentials resolves the SMTP password from the configured source.
package credentials

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Kind selects where the password comes from.
type Kind string

const (
	KindPrompt Kind = "prompt"
	KindEnv    Kind = "env"
	KindFile   Kind = "file"
)

var (
	ErrEmptyPassword = errors.New("password is empty")
	ErrUnknownSource = errors.New("unknown password source")
	ErrNotATerminal  = errors.New("stdin is not a terminal")
)

// Source describes a password source.
type Source struct {
	Kind Kind
	Env  string // variable name for KindEnv
	File string // path for KindFile
}

// PromptFunc reads a secret interactively.
type PromptFunc func() (string, error)

// Resolver turns a Source into a password.
type Resolver struct {
	prompt PromptFunc
	getenv func(string) string
}

// NewResolver creates a Resolver that prompts on the controlling terminal.
func NewResolver() *Resolver {
	return &Resolver{
		prompt: TerminalPrompt(os.Stdin, os.Stderr),
		getenv: os.Getenv,
	}
}

// WithPrompt replaces the interactive prompt.
func (r *Resolver) WithPrompt(p PromptFunc) *Resolver {
	r.prompt = p
	return r
}

// WithGetenv replaces the environment lookup.
func (r *Resolver) WithGetenv(fn func(string) string) *Resolver {
	r.getenv = fn
	return r
}

// Resolve returns the password described by src.
func (r *Resolver) Resolve(src Source) (string, error) {
	var (
		pwd string
		err error
	)

	switch src.Kind {
	case KindPrompt, "":
		pwd, err = r.prompt()
	case KindEnv:
		pwd = r.getenv(src.Env)
	case KindFile:
		pwd, err = readFirstLine(src.File)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSource, src.Kind)
	}

	if err != nil {
		return "", err
	}
	if pwd == "" {
		return "", fmt.Errorf("%s source: %w", kindOrDefault(src.Kind), ErrEmptyPassword)
	}

	return pwd, nil
}

// TerminalPrompt asks for the password on in without echoing it.
func TerminalPrompt(in *os.File, out io.Writer) PromptFunc {
	return func() (string, error) {
		fd := int(in.Fd())
		if !term.IsTerminal(fd) {
			return "", ErrNotATerminal
		}

		fmt.Fprint(out, "Password: ")
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}

		return string(b), nil
	}
}

func readFirstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open password file: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		return "", nil
	}

	return strings.TrimRight(sc.Text(), "\r"), nil
}

func kindOrDefault(k Kind) Kind {
	if k == "" {
		return KindPrompt
	}
	return k
}
