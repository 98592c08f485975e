package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/procurement/backend/internal/domain/shared"
)

// readLine prints a prompt and returns the next trimmed input line.
// An io.EOF from the reader propagates so the shell can terminate.
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readInt64 prompts until it gets a parseable integer
func (s *Shell) readInt64(prompt string) (int64, error) {
	for {
		raw, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			fmt.Fprintln(s.out, "please enter a whole number")
			continue
		}
		return n, nil
	}
}

// readInt prompts until it gets a parseable int
func (s *Shell) readInt(prompt string) (int, error) {
	n, err := s.readInt64(prompt)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// readChoice prompts until the answer matches one of the allowed values,
// case-insensitively. Returns the matched allowed value.
func (s *Shell) readChoice(prompt string, allowed ...string) (string, error) {
	for {
		raw, err := s.readLine(prompt)
		if err != nil {
			return "", err
		}
		for _, a := range allowed {
			if strings.EqualFold(raw, a) {
				return a, nil
			}
		}
		fmt.Fprintf(s.out, "please enter one of: %s\n", strings.Join(allowed, ", "))
	}
}

// errorMessage renders a propagated error for the operator. Domain errors
// carry their own message; anything else is shown verbatim.
func errorMessage(err error) string {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return err.Error()
}
