package command

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/codepoints"
)

const (
	keyUTF8  = "utf8"
	keyUTF16 = "utf16"
)

// OffsetCmd holds the offset command configuration.
type OffsetCmd struct {
	cc *CodepointsCommand
}

// AddOffsetCommand adds the offset subcommand to the root command.
func AddOffsetCommand(root *cobra.Command, cc *CodepointsCommand) {
	oc := &OffsetCmd{cc: cc}
	root.AddCommand(oc.createCommand())
}

func (oc *OffsetCmd) createCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offset [text...]",
		Short: "Convert between UTF-8 and UTF-16 offsets",
		Long: `Convert a UTF-8 byte offset into a UTF-16 code unit offset of the text, or
the other way around.

Examples:
  # UTF-16 offset of the sixth byte
  codepoints offset --utf8 6 'aé€'

  # UTF-8 offset of the second code unit
  codepoints offset --utf16 2 'aé€'`,
		RunE: oc.runOffset,
	}
	cmd.Flags().Int(keyUTF8, -1, "UTF-8 byte offset to convert")
	cmd.Flags().Int(keyUTF16, -1, "UTF-16 code unit offset to convert")
	return cmd
}

func (oc *OffsetCmd) runOffset(cmd *cobra.Command, args []string) error {
	v := oc.cc.v
	text, err := oc.cc.readText(args)
	if err != nil {
		return err
	}

	utf8Offset, utf16Offset := v.GetInt(keyUTF8), v.GetInt(keyUTF16)
	switch {
	case utf8Offset >= 0 && utf16Offset >= 0:
		return errors.New("--utf8 and --utf16 are mutually exclusive")
	case utf8Offset >= 0:
		result := codepoints.Offset8To16(text, utf8Offset)
		oc.cc.logger.Debug("converted", "utf8", utf8Offset, "utf16", result)
		_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
	case utf16Offset >= 0:
		result := codepoints.Offset16To8(text, utf16Offset)
		oc.cc.logger.Debug("converted", "utf16", utf16Offset, "utf8", result)
		_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
	default:
		return errors.New("one of --utf8 or --utf16 is required")
	}
	return err
}
