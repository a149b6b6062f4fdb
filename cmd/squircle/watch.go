package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

func (a *app) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE",
		Short: "Print the path data of a configuration file whenever it changes",
		Long: `watch prints the path data described by FILE, then waits for FILE to change
and prints the new path data, until interrupted. Flags override the file as
they do for the other commands. Errors in the file are reported without
stopping.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context(), cmd, args[0])
		},
	}
}

func (a *app) watch(ctx context.Context, cmd *cobra.Command, path string) error {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// Watch the directory so that a file replaced by a rename is still seen.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	var last string
	printed := false
	update := func() {
		f, err := a.settings(cmd, abs)
		if err != nil {
			printError(cmd.ErrOrStderr(), err)
			return
		}
		d, err := a.render(f)
		if err != nil {
			printError(cmd.ErrOrStderr(), err)
			return
		}
		// A single save can produce several events.
		if printed && d == last {
			return
		}
		last, printed = d, true
		fmt.Fprintln(cmd.OutOrStdout(), d)
	}

	update()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != filepath.Base(abs) {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				update()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}
}
