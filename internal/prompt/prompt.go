// Package prompt collects the project name, package manager, and dev-server
// port from the user using plain line-based questions on a reader/writer pair.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/initvue/init-vue/internal/pkgmanager"
)

// ErrNoPackageManager is returned when the user cancels the package manager menu.
var ErrNoPackageManager = errors.New("no package manager selected")

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// Answers holds everything the scaffold flow needs from the user.
type Answers struct {
	ProjectName    string
	PackageManager pkgmanager.Manager
	Port           int
}

// Collect asks for every field left unset in preset and returns the merged
// answers. defaultPort is offered when the port question is left blank.
// When r is a *bufio.Reader it is read directly, so input after the last
// answer stays buffered in r for whoever reads it next.
func Collect(r io.Reader, w io.Writer, preset Answers, defaultPort int) (*Answers, error) {
	reader, ok := r.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(r)
	}
	answers := preset

	if answers.ProjectName == "" {
		name, err := ask(reader, w, "Project name: ")
		if err != nil {
			return nil, fmt.Errorf("reading project name: %w", err)
		}
		answers.ProjectName = name
	}
	if err := ValidateName(answers.ProjectName); err != nil {
		return nil, err
	}

	if answers.PackageManager == "" {
		pm, err := selectManager(reader, w)
		if err != nil {
			return nil, err
		}
		answers.PackageManager = pm
	}
	if !answers.PackageManager.Valid() {
		return nil, fmt.Errorf("unsupported package manager %q", answers.PackageManager)
	}

	if answers.Port == 0 {
		port, err := askPort(reader, w, defaultPort)
		if err != nil {
			return nil, err
		}
		answers.Port = port
	}
	if err := ValidatePort(answers.Port); err != nil {
		return nil, err
	}

	return &answers, nil
}

// ValidateName checks that name is usable as a directory and package name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must match pattern [a-zA-Z0-9][a-zA-Z0-9._-]*", name)
	}
	return nil
}

// ValidatePort checks that port is a usable TCP port.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}
	return nil
}

// selectManager presents the numbered package manager menu.
// 0, q, or an empty answer cancels with ErrNoPackageManager.
func selectManager(reader *bufio.Reader, w io.Writer) (pkgmanager.Manager, error) {
	items := pkgmanager.All()

	fmt.Fprintf(w, "\nSelect a package manager:\n")
	for i, item := range items {
		fmt.Fprintf(w, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(w, "  0) cancel\n")
	fmt.Fprintf(w, "Enter number [1-%d]: ", len(items))

	line, err := readLine(reader)
	if err != nil {
		return "", fmt.Errorf("reading selection: %w", err)
	}

	switch strings.ToLower(line) {
	case "", "0", "q":
		return "", ErrNoPackageManager
	}

	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(items) {
		return "", fmt.Errorf("invalid selection %q: choose 1-%d", line, len(items))
	}
	return items[num-1], nil
}

func askPort(reader *bufio.Reader, w io.Writer, defaultPort int) (int, error) {
	line, err := ask(reader, w, fmt.Sprintf("Dev server port (default %d): ", defaultPort))
	if err != nil {
		return 0, fmt.Errorf("reading port: %w", err)
	}
	if line == "" {
		return defaultPort, nil
	}
	port, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: must be an integer", line)
	}
	return port, nil
}

func ask(reader *bufio.Reader, w io.Writer, question string) (string, error) {
	fmt.Fprint(w, question)
	return readLine(reader)
}

// readLine reads one trimmed line. A final line without a newline is accepted.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
