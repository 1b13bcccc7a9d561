// Package open launches files with the user's editor or the system's default handler.
package open

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hueseek/hueseek/constant"
)

// Run opens input with the default system handler and waits for it.
func Run(input string) error {
	cmd, ok := command(input)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Run()
}

// Editor returns the command line from $VISUAL, falling back to $EDITOR.
func Editor() string {
	if visual := strings.TrimSpace(os.Getenv("VISUAL")); visual != "" {
		return visual
	}
	return strings.TrimSpace(os.Getenv("EDITOR"))
}

// Edit opens path in the user's editor attached to the terminal.
// Without an editor it falls back to the default handler.
func Edit(path string) error {
	editor := Editor()
	if editor == "" {
		return Run(path)
	}

	cmd, err := editorCommand(editor, path)
	if err != nil {
		return err
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// editorCommand allows editors with arguments, e.g. "code --wait".
func editorCommand(editor, path string) (*exec.Cmd, error) {
	fields := strings.Fields(editor)
	if len(fields) == 0 {
		return nil, errors.New("empty editor command")
	}

	return exec.Command(fields[0], append(fields[1:], path)...), nil
}

func command(input string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case constant.Darwin:
		return exec.Command("open", input), true
	case constant.Linux:
		return exec.Command("xdg-open", input), true
	case constant.Android:
		return exec.Command("termux-open", input), true
	default:
		return nil, false
	}
}
