package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"strings"
)

// commandList collects repeated -e flags.
type commandList []string

func (c *commandList) String() string { return strings.Join(*c, "; ") }

func (c *commandList) Set(v string) error {
	*c = append(*c, v)
	return nil
}

type interactiveCmd struct {
	r     *root
	fs    *flag.FlagSet
	execs commandList
	child *root
}

func (i *interactiveCmd) FlagSet() *flag.FlagSet {
	return i.fs
}

func (i *interactiveCmd) Program() string {
	return i.r.Program()
}

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	fs := r.newFlagSet("interactive")
	i := &interactiveCmd{r: r, fs: fs}
	fs.Usage = usageFunc(i)
	fs.Var(&i.execs, "e", "execute a command and exit (may be specified multiple times)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return i, nil
}

// session returns the root that runs each line. Flag errors are returned
// rather than exiting, and the notification flags given on the command line
// carry over.
func (i *interactiveCmd) session() *root {
	if i.child != nil {
		return i.child
	}
	c := i.r.subcommand("")
	c.handling = flag.ContinueOnError
	c.initFlags()
	c.saveAlerts, c.loadAlerts, c.exportAlert, c.copyAlerts = i.r.saveAlerts, i.r.loadAlerts, i.r.exportAlert, i.r.copyAlerts
	i.child = c
	return c
}

// executeLine runs one command. done is true when the line ends the session.
func (i *interactiveCmd) executeLine(line string) (done bool, err error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	switch args[0] {
	case "exit", "quit":
		return true, nil
	case "interactive":
		return false, nil
	case "help":
		fmt.Fprint(i.r.stdout, (&UsageError{of: i.r}).Error())
		return false, nil
	}
	err = i.session().Run(args)
	if errors.Is(err, flag.ErrHelp) {
		err = nil
	}
	return false, err
}

func (i *interactiveCmd) Run() error {
	if len(i.execs) > 0 {
		for _, line := range i.execs {
			done, err := i.executeLine(line)
			if err != nil {
				return err
			}
			if done {
				break
			}
		}
		return nil
	}

	fmt.Fprintln(i.r.stdout, "Enter commands (type 'exit' to quit)")
	scanner := bufio.NewScanner(i.r.stdin)
	for {
		fmt.Fprint(i.r.stdout, "> ")
		if !scanner.Scan() {
			break
		}
		done, err := i.executeLine(scanner.Text())
		if err != nil {
			fmt.Fprintln(i.r.stderr, err)
		}
		if done {
			break
		}
	}
	return scanner.Err()
}
