package command

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/codepoints"
)

const (
	keyDirection = "direction"
	keyOffset    = "offset"
	keyLimit     = "limit"
)

// InspectCmd holds the inspect command configuration.
type InspectCmd struct {
	cc *CodepointsCommand
}

// AddInspectCommand adds the inspect subcommand to the root command.
func AddInspectCommand(root *cobra.Command, cc *CodepointsCommand) {
	ic := &InspectCmd{cc: cc}
	root.AddCommand(ic.createCommand())
}

func (ic *InspectCmd) createCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [text...]",
		Short: "Print the properties of each code point",
		Long: `Print a table with the category, script, case mappings and classification
flags of every code point of the text.

Lone surrogates are skipped the way the code point walker skips them: a lone
high surrogate when walking forward, a lone low surrogate when walking
backward.

Examples:
  # Inspect a string
  codepoints inspect 'Dž😀'

  # Walk backward from the end of a UTF-16LE file
  codepoints inspect --input notes.txt --encoding utf-16le --direction backward`,
		RunE: ic.runInspect,
	}
	cmd.Flags().String(keyDirection, "forward", "Walking direction: forward or backward")
	cmd.Flags().Int(keyOffset, -1, "UTF-16 offset to start at (default: start or end of the text)")
	cmd.Flags().Int(keyLimit, 0, "Stop after this many code points (0 means no limit)")
	return cmd
}

func (ic *InspectCmd) runInspect(cmd *cobra.Command, args []string) error {
	v := ic.cc.v
	text, err := ic.cc.readText(args)
	if err != nil {
		return err
	}

	direction, err := parseDirection(v.GetString(keyDirection))
	if err != nil {
		return err
	}
	offset := v.GetInt(keyOffset)
	if offset < 0 {
		offset = 0
		if direction == codepoints.Backward {
			offset = len(text)
		}
	}
	if offset > len(text) {
		return &codepoints.IndexError{Index: offset, Length: len(text)}
	}

	ic.cc.logger.Debug("inspecting", "units", len(text), "offset", offset, "direction", direction)
	return writeInspectTable(cmd.OutOrStdout(), codepoints.Default(), text, offset, direction, v.GetInt(keyLimit))
}

func parseDirection(s string) (codepoints.Direction, error) {
	switch strings.ToLower(s) {
	case "forward", "f":
		return codepoints.Forward, nil
	case "backward", "b":
		return codepoints.Backward, nil
	}
	return codepoints.Forward, fmt.Errorf("invalid direction %q: want forward or backward", s)
}

// writeInspectTable renders one row per code point.
func writeInspectTable(w io.Writer, cl *codepoints.Classifier, text []uint16, offset int, direction codepoints.Direction, limit int) error {
	table := tablewriter.NewWriter(w)
	table.Header("Code Point", "Char", "Category", "Script", "Upper", "Lower", "Flags")

	n := 0
	for c := range codepoints.Codepoints(text, offset, direction) {
		if limit > 0 && n == limit {
			break
		}
		n++
		if err := table.Append([]string{
			c.String(),
			printable(cl, c),
			cl.Category(c).String(),
			cl.Script(c).String(),
			cl.ToUpperCase(c).String(),
			cl.ToLowerCase(c).String(),
			strings.Join(flagNames(cl, c), " "),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

// printable returns the character itself, or its escaped form for controls,
// separators and surrogates.
func printable(cl *codepoints.Classifier, c codepoints.Codepoint) string {
	switch cl.Category(c) {
	case codepoints.Cs:
		// strconv would substitute U+FFFD.
		return fmt.Sprintf("'\\u%04x'", int32(c))
	case codepoints.Cc, codepoints.Cf, codepoints.Cn, codepoints.Zl, codepoints.Zp:
		return strconv.QuoteRuneToASCII(rune(c))
	}
	return string(rune(c))
}

// flagNames lists the classification predicates that hold for c.
func flagNames(cl *codepoints.Classifier, c codepoints.Codepoint) []string {
	checks := []struct {
		name string
		ok   bool
	}{
		{"letter", cl.IsLetter(c)},
		{"digit", cl.IsDigit(c)},
		{"upper", cl.IsUpperCase(c)},
		{"lower", cl.IsLowerCase(c)},
		{"space", cl.IsSpaceChar(c)},
		{"whitespace", cl.IsWhitespace(c)},
		{"ideographic", cl.IsIdeographic(c)},
		{"ignorable", cl.IsIdentifierIgnorable(c)},
		{"control", codepoints.IsISOControl(c)},
		{"id-start", cl.IsUnicodeIdentifierStart(c)},
		{"id-part", cl.IsUnicodeIdentifierPart(c)},
		{"java-start", cl.IsJavaIdentifierStart(c)},
		{"java-part", cl.IsJavaIdentifierPart(c)},
	}
	var names []string
	for _, check := range checks {
		if check.ok {
			names = append(names, check.name)
		}
	}
	return names
}
