package main

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SergeyKozhin/yearly-calendar/internal/pkg/auth"
	"golang.org/x/term"
)

// hashPassword prints an EDIT_PASSWORD_HASH value for a password read from
// the terminal, or from the first line of in when it is not a terminal.
func hashPassword(in *os.File, out, prompts io.Writer) error {
	password, err := readPassword(in, prompts)
	if err != nil {
		return err
	}
	if password == "" {
		return errors.New("password must not be empty")
	}

	hash, err := auth.HashPassword(rand.Reader, password)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "EDIT_PASSWORD_HASH='%s'\n", hash)
	return err
}

func readPassword(in *os.File, prompts io.Writer) (string, error) {
	fd := int(in.Fd())

	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fmt.Fprint(prompts, "Enter password:   ")
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(prompts)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	fmt.Fprint(prompts, "Confirm password: ")
	confirm, err := term.ReadPassword(fd)
	fmt.Fprintln(prompts)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	if string(password) != string(confirm) {
		return "", errors.New("passwords do not match")
	}

	return string(password), nil
}
