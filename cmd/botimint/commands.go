package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kodylow/botimint/internal/catalog"
	"github.com/Kodylow/botimint/internal/command"
	"github.com/Kodylow/botimint/internal/ui"
)

var commandsFlags struct {
	json bool
}

var commandsCmd = &cobra.Command{
	Use:   "commands [name]",
	Short: "List the command catalog",
	Long: `List every command the bot publishes, or the parameters of one command.
The catalog is built locally; no running bot is needed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCommands,
}

func init() {
	commandsCmd.Flags().BoolVar(&commandsFlags.json, "json", false, "Print machine-readable JSON")
}

// commandJSON is the --json form of a descriptor.
type commandJSON struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Local       bool        `json:"local,omitempty"`
	Params      []paramJSON `json:"params"`
}

type paramJSON struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Kind        string   `json:"kind"`
	Required    bool     `json:"required"`
	Description string   `json:"description"`
	Default     string   `json:"default,omitempty"`
	Choices     []string `json:"choices,omitempty"`
}

func runCommands(cmd *cobra.Command, args []string) error {
	registry, err := catalog.NewRegistry()
	if err != nil {
		return err
	}

	descs := registry.Descriptors()
	if len(args) == 1 {
		desc, err := registry.Get(args[0])
		if err != nil {
			return err
		}
		descs = []*command.Descriptor{desc}
	}

	out := cmd.OutOrStdout()
	if commandsFlags.json {
		return writeCommandsJSON(out, descs)
	}
	if len(args) == 1 {
		writeCommandDetail(out, descs[0])
		return nil
	}

	rows := make([][]string, 0, len(descs))
	for _, d := range descs {
		rows = append(rows, []string{d.Name, strconv.Itoa(len(d.Params)), d.Description})
	}
	fmt.Fprint(out, ui.Table([]string{"COMMAND", "PARAMS", "DESCRIPTION"}, rows))
	return nil
}

func writeCommandsJSON(w io.Writer, descs []*command.Descriptor) error {
	list := make([]commandJSON, 0, len(descs))
	for _, d := range descs {
		c := commandJSON{Name: d.Name, Description: d.Description, Local: d.Reply != nil, Params: []paramJSON{}}
		for _, p := range d.Params {
			c.Params = append(c.Params, paramJSON{
				Name:        p.Name,
				Type:        p.Type,
				Kind:        p.Kind.String(),
				Required:    p.Required,
				Description: p.Description,
				Default:     p.Default,
				Choices:     p.Choices,
			})
		}
		list = append(list, c)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

func writeCommandDetail(w io.Writer, d *command.Descriptor) {
	fmt.Fprintln(w, title(d.Name))
	fmt.Fprintln(w, "  "+d.Description)
	if len(d.Params) == 0 {
		fmt.Fprintln(w, subtle("  No parameters."))
		return
	}
	fmt.Fprintln(w)

	rows := make([][]string, 0, len(d.Params))
	for _, p := range d.Params {
		req := "no"
		if p.Required {
			req = "yes"
		}
		typ := p.Type
		if len(p.Choices) > 0 {
			typ = strings.Join(p.Choices, " | ")
		}
		rows = append(rows, []string{p.Name, typ, req, p.Default, p.Description})
	}
	fmt.Fprint(w, ui.Table([]string{"PARAMETER", "TYPE", "REQUIRED", "DEFAULT", "DESCRIPTION"}, rows))
}
