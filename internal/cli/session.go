package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tweenkit/internal/sqlite"
	"github.com/mesh-intelligence/tweenkit/pkg/types"
)

const sessionHelp = `Commands:
  add <hover|carousel|scroll>   add a default animation and select it
  list                          list animations (* marks the selection)
  select <n|id>                 select an animation; "select none" clears
  remove <n|id>                 remove an animation
  set key=value ...             edit the selected animation
  show                          print the selected animation's script
  code                          print the script for every animation
  state                         print the collection as JSON
  import <file>                 replace the collection from a file
  export [file]                 write the export document
  help                          show this help
  quit                          leave the session`

// errQuit ends the session loop.
var errQuit = errors.New("quit")

func newSessionCmd(a *app) *cobra.Command {
	var (
		prompt   string
		failFast bool
	)
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Edit animations interactively",
		Long:  "Start a line-driven editing session. Type help for the command list.\n\n" + sessionHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := sqlite.NewBackend(sqlite.WithLogger(a.logger))
			if err := b.Attach(a.config); err != nil {
				return sysError(fmt.Errorf("attach session: %w", err))
			}
			defer b.Detach()

			s := &session{
				backend: b,
				cmd:     cmd,
				out:     cmd.OutOrStdout(),
				now:     time.Now,
			}
			return s.run(cmd.InOrStdin(), prompt, failFast)
		},
	}
	cmd.Flags().StringVar(&prompt, "prompt", "tweenkit> ", "prompt printed before each command")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop at the first failing command")
	return cmd
}

// session executes REPL commands against a backend.
type session struct {
	backend *sqlite.Backend
	cmd     *cobra.Command
	out     io.Writer
	now     func() time.Time
}

func (s *session) run(in io.Reader, prompt string, failFast bool) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			break
		}
		fields, err := splitArgs(scanner.Text())
		if err == nil && len(fields) > 0 {
			err = s.exec(fields[0], fields[1:])
		}
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			if failFast {
				return err
			}
			fmt.Fprintf(s.cmd.ErrOrStderr(), "error: %v\n", err)
		}
	}
	fmt.Fprintln(s.out)
	if err := scanner.Err(); err != nil {
		return sysError(err)
	}
	return nil
}

func (s *session) exec(name string, args []string) error {
	switch name {
	case "help", "?":
		fmt.Fprintln(s.out, sessionHelp)
		return nil
	case "quit", "exit":
		return errQuit
	case "add":
		return s.add(args)
	case "list", "ls":
		return s.list()
	case "select":
		return s.selectAnimation(args)
	case "remove", "rm":
		return s.remove(args)
	case "set":
		return s.set(args)
	case "show":
		return s.print(s.backend.ActiveCode)
	case "code":
		return s.print(s.backend.AllCode)
	case "state":
		data, err := s.backend.StateJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, string(data))
		return nil
	case "import":
		return s.importFile(args)
	case "export":
		return s.export(args)
	}
	return userError(fmt.Errorf("unknown command %q (type help)", name))
}

func (s *session) add(args []string) error {
	if len(args) != 1 {
		return userError(errors.New("usage: add <hover|carousel|scroll>"))
	}
	a, err := s.backend.Add(types.AnimationType(strings.ToLower(args[0])))
	if err != nil {
		return userError(err)
	}
	fmt.Fprintf(s.out, "added %s %s\n", a.Common().Type, a.Common().ID)
	return nil
}

func (s *session) list() error {
	list, err := s.backend.List()
	if err != nil {
		return err
	}
	active, _, err := s.backend.Active()
	if err != nil {
		return err
	}
	activeID := ""
	if active != nil {
		activeID = active.Common().ID
	}

	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\tN\tID\tTYPE\tLABEL\tSELECTOR")
	for i, a := range list {
		base := a.Common()
		mark := ""
		if base.ID == activeID {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n", mark, i+1, base.ID, base.Type, base.Label, base.TargetSelector)
	}
	return w.Flush()
}

// resolve maps a 1-based position or an ID to an animation ID.
func (s *session) resolve(ref string) (string, error) {
	list, err := s.backend.List()
	if err != nil {
		return "", err
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(list) {
			return "", userError(fmt.Errorf("%w: no animation at position %d", types.ErrNotFound, n))
		}
		return list[n-1].Common().ID, nil
	}
	for _, a := range list {
		if a.Common().ID == ref {
			return ref, nil
		}
	}
	return "", userError(fmt.Errorf("%w: %s", types.ErrNotFound, ref))
}

func (s *session) selectAnimation(args []string) error {
	if len(args) != 1 {
		return userError(errors.New("usage: select <n|id|none>"))
	}
	if args[0] == "none" {
		return s.backend.SetActive("")
	}
	id, err := s.resolve(args[0])
	if err != nil {
		return err
	}
	return s.backend.SetActive(id)
}

func (s *session) remove(args []string) error {
	if len(args) != 1 {
		return userError(errors.New("usage: remove <n|id>"))
	}
	id, err := s.resolve(args[0])
	if err != nil {
		return err
	}
	if err := s.backend.Remove(id); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "removed %s\n", id)
	return nil
}

func (s *session) set(args []string) error {
	if len(args) == 0 {
		return userError(errors.New("usage: set key=value ..."))
	}
	active, ok, err := s.backend.Active()
	if err != nil {
		return err
	}
	if !ok {
		return userError(errors.New("no animation selected"))
	}
	assigns, err := parseAssignments(args)
	if err != nil {
		return userError(err)
	}
	patch, err := buildPatch(active, types.BasePatch{}, assigns)
	if err != nil {
		return userError(err)
	}
	if _, err := s.backend.Update(active.Common().ID, patch); err != nil {
		return userError(err)
	}
	return nil
}

func (s *session) print(view func() (string, error)) error {
	code, err := view()
	if err != nil {
		return err
	}
	if code != "" {
		fmt.Fprintln(s.out, code)
	}
	return nil
}

func (s *session) importFile(args []string) error {
	if len(args) != 1 {
		return userError(errors.New("usage: import <file>"))
	}
	list, err := readAnimations(s.cmd, args, formatAuto)
	if err != nil {
		return err
	}
	if err := s.backend.Replace(list); err != nil {
		return userError(err)
	}
	fmt.Fprintf(s.out, "imported %d animations\n", len(list))
	return nil
}

func (s *session) export(args []string) error {
	if len(args) > 1 {
		return userError(errors.New("usage: export [file]"))
	}
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		p, err := s.backend.ExportPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := s.backend.WriteExport(path, s.now()); err != nil {
		return sysError(err)
	}
	fmt.Fprintf(s.out, "exported to %s\n", path)
	return nil
}

// splitArgs splits a command line on whitespace, honoring single and double
// quotes.
func splitArgs(line string) ([]string, error) {
	var (
		args  []string
		cur   strings.Builder
		quote rune
		inArg bool
	)
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			cur.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, cur.String())
				cur.Reset()
				inArg = false
			}
		default:
			cur.WriteRune(r)
			inArg = true
		}
	}
	if quote != 0 {
		return nil, userError(errors.New("unterminated quote"))
	}
	if inArg {
		args = append(args, cur.String())
	}
	return args, nil
}
