package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spirit-labs/colcmp/errors"
)

func (r *runner) shell(vi bool) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return errors.WithStack(err)
	}
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:            filepath.Join(home, ".colcmp.history"),
		DisableAutoSaveHistory: true,
		VimMode:                vi,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		_ = rl.Close()
	}()
	for {
		// Gather multi-line expression terminated by a ;
		rl.SetPrompt("colcmp> ")
		var lines []string
		for {
			line, err := rl.Readline()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				if err == readline.ErrInterrupt {
					return nil
				}
				return errors.WithStack(err)
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			lines = append(lines, line)
			if strings.HasSuffix(line, ";") {
				break
			}
			rl.SetPrompt("        ")
		}
		statement := strings.Join(lines, " ")
		_ = rl.SaveHistory(statement)
		expression := strings.TrimSpace(strings.TrimSuffix(statement, ";"))
		if err := r.evaluate(expression); err != nil {
			// keep the shell open after a bad expression
			_, _ = fmt.Fprintln(r.out, err.Error())
		}
	}
}
