package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/aretw0/paramlink/pkg/domain"
)

var commands = []string{"target", "sub", "param", "set", "label", "enable", "disable", "refresh", "show", "save", "help", "quit"}

const helpText = `commands:
  target <id>    select the target object ("-" clears)
  sub <id>       select the sub-component ("-" clears)
  param <name>   select the parameter ("-" clears)
  set <value>    edit the value
  label <text>   change the label
  enable         show the widget
  disable        hide the widget
  refresh        re-read the bound parameter
  show           print the control state
  save           persist the control
  quit           leave`

// RunREPL drives the session from line commands on in until quit or EOF.
func RunREPL(ctx context.Context, s *Session, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	fmt.Fprintln(out, `type "help" for commands`)
	printState(out, s.Control.State())

	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]
		arg := strings.Join(args, " ")

		switch cmd {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(out, helpText)
		case "show":
			printState(out, s.Control.State())
		case "target":
			selectLevel(out, s, domain.LevelTarget, arg)
		case "sub":
			selectLevel(out, s, domain.LevelSubTarget, arg)
		case "param":
			selectLevel(out, s, domain.LevelParameter, arg)
		case "set":
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				fmt.Fprintf(out, "not a number: %q\n", arg)
				continue
			}
			s.Control.SetValue(v)
			printState(out, s.Control.State())
		case "label":
			s.Control.SetLabel(arg)
		case "enable":
			s.Control.Enable()
		case "disable":
			s.Control.Disable()
		case "refresh":
			s.Control.Refresh()
			printState(out, s.Control.State())
		case "save":
			if err := s.Control.Save(ctx); err != nil {
				fmt.Fprintf(out, "save failed: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "saved")
		default:
			fmt.Fprintf(out, "unknown command %q", cmd)
			if hint := closest(cmd, commands); hint != "" {
				fmt.Fprintf(out, ", did you mean %q?", hint)
			}
			fmt.Fprintln(out)
		}
	}
}

func selectLevel(out io.Writer, s *Session, level domain.Level, value string) {
	if value == "-" {
		value = ""
	}
	sel := levelSelection(s.Control.State(), level)
	if !slices.Contains(sel.Choices, value) {
		fmt.Fprintf(out, "%s %q is not available", level, value)
		if hint := closest(value, sel.Choices); hint != "" {
			fmt.Fprintf(out, ", did you mean %q?", hint)
		}
		fmt.Fprintln(out)
		return
	}
	s.Control.Select(level, value)
	printState(out, s.Control.State())
}

func levelSelection(st domain.ControlState, level domain.Level) domain.Selection {
	switch level {
	case domain.LevelSubTarget:
		return st.SubTarget
	case domain.LevelParameter:
		return st.Parameter
	default:
		return st.Target
	}
}

// closest returns the candidate nearest to s, if it is within two edits or a third of its length.
func closest(s string, candidates []string) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		if c == "" {
			continue
		}
		d := levenshtein.ComputeDistance(s, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(s)/3) {
		return ""
	}
	return best
}

func printState(out io.Writer, st domain.ControlState) {
	show := func(sel domain.Selection) string {
		v := sel.Value
		if v == "" {
			v = "-"
		}
		return fmt.Sprintf("%s %v", v, sel.Choices[1:])
	}
	fmt.Fprintf(out, "target:    %s\n", show(st.Target))
	fmt.Fprintf(out, "subtarget: %s\n", show(st.SubTarget))
	fmt.Fprintf(out, "parameter: %s\n", show(st.Parameter))
	fmt.Fprintf(out, "value:     %s = "+domain.DefaultFormat+" [%g, %g] %s, widget %s\n",
		st.Value.Label, st.Value.Value, st.Value.Min, st.Value.Max, st.Mode, st.Lifecycle)
}
