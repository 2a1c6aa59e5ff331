package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// theme paints help and error text. The plain theme leaves text untouched.
type theme struct {
	heading func(string) string
	example func(string) string
	danger  func(string) string
}

func newTheme(color bool) theme {
	if !color {
		plain := func(s string) string { return s }
		return theme{heading: plain, example: plain, danger: plain}
	}
	heading := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	example := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	danger := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	return theme{
		heading: func(s string) string { return heading.Render(s) },
		example: func(s string) string { return example.Render(s) },
		danger:  func(s string) string { return danger.Render(s) },
	}
}

type flagHelp struct {
	names   string
	lines   []string
	example string
}

var flagHelps = []flagHelp{
	{
		names:   "-o | --include-only",
		lines:   []string{"Output only the given fields in the table. A comma separated list must be passed."},
		example: "tfmdcli <file_path> -o name,default",
	},
	{
		names:   "-b | --breaks",
		lines:   []string{"Add line breaks to the 'default' field of a variable file or the 'value' field of an output file."},
		example: "tfmdcli <file_path> -b",
	},
	{
		names:   "-a | --add-columns",
		lines:   []string{"Add additional empty columns to the table. A comma separated list must be passed."},
		example: "tfmdcli <file_path> -a notes,owner",
	},
	{
		names: "-m | --module",
		lines: []string{
			"The module name to use when creating an example module from a variables file. A string is required.",
			"This must be used with --source and cannot be used with any other flags.",
		},
		example: "tfmdcli <file_path> -m example -s ./module/example",
	},
	{
		names: "-s | --source",
		lines: []string{
			"The file path to use when creating an example module from a variables file. A string is required.",
			"This must be used with --module and cannot be used with any other flags.",
		},
		example: "tfmdcli <file_path> -m example -s ./module/example",
	},
	{
		names:   "-t | --tfvars",
		lines:   []string{"Create a tfvars from a variables file. This cannot be used with any flags other than -i."},
		example: "tfmdcli <file_path> -t",
	},
	{
		names: "-i | --ignore-defaults",
		lines: []string{
			"Ignore defaults when creating a tfvars file. This will create an empty tfvar variable for each",
			"of the variables in the file. Can only be used with -t.",
		},
		example: "tfmdcli <file_path> -t -i",
	},
	{
		names:   "-y | --yaml",
		lines:   []string{"Export the extracted blocks as YAML instead of a table. Accepts -o, -a and -b."},
		example: "tfmdcli <file_path> -y",
	},
	{
		names:   "--log-level",
		lines:   []string{"Set the logging level. Options: 'debug', 'info', 'warn', 'error'. Logs go to stderr."},
		example: "tfmdcli <file_path> --log-level=debug",
	},
	{
		names:   "--log-format",
		lines:   []string{"Log output format. Options: 'text' or 'json'."},
		example: "tfmdcli <file_path> --log-format=json",
	},
}

const banner = `###############################################################################
################################### tfmdcli ###################################
###############################################################################`

// Help returns the full usage text.
func Help(color bool) string {
	th := newTheme(color)

	var b strings.Builder
	b.WriteString("\n")
	for _, line := range strings.Split(banner, "\n") {
		b.WriteString(th.heading(line) + "\n")
	}
	b.WriteString("\nTerraform Markdown CLI is a tool to convert your terraform variables or outputs\n")
	b.WriteString("into a markdown table.\n\n")
	b.WriteString(th.heading("Usage: tfmdcli <file_path> <flags>") + "\n\n")
	b.WriteString(th.heading("File Path:") + "\n")
	b.WriteString("  The file path to a '.tf' file containing either only variables or only outputs.\n\n")
	b.WriteString(th.heading("Flags:") + "\n")
	for _, f := range flagHelps {
		b.WriteString("  " + f.names + ":\n")
		for _, line := range f.lines {
			b.WriteString("    " + line + "\n")
		}
		b.WriteString("    Example Usage:\n")
		b.WriteString("    " + th.example(f.example) + "\n")
	}
	return b.String()
}

// FormatError renders msg the way the CLI reports failures.
func FormatError(msg string, color bool) string {
	th := newTheme(color)
	return "\ntfmdcli Error: " + th.danger(msg) +
		"\n\nFor more information on usage run " + th.example("tfmdcli --help") + "\n"
}
