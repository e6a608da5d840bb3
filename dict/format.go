// format.go
package dict

import (
	"fmt"
	"strings"

	"github.com/edgewater/fixwire/fixmsg"
)

var (
	ColourReset = "\033[0m"
	ColourLine  = "\033[38;5;244m"
	ColourTag   = "\033[38;5;81m"
	ColourName  = "\033[38;5;151m"
	ColourValue = "\033[38;5;228m"
	ColourEnum  = "\033[38;5;214m"
	ColourFile  = "\033[95m"
	ColourError = "\033[31m"
	ColourMsg   = "\033[97m"
	ColourTitle = "\033[31m"
)

func DisableColours() {
	ColourReset = ""
	ColourLine = ""
	ColourTag = ""
	ColourName = ""
	ColourValue = ""
	ColourEnum = ""
	ColourFile = ""
	ColourError = ""
	ColourMsg = ""
	ColourTitle = ""
}

// FormatMessage renders a decoded message one field per line, with
// the tag name and enum description resolved from d.
func FormatMessage(m *fixmsg.Message, d *Dictionary) string {
	var sb strings.Builder

	for f := range m.All() {
		value := string(f.Value)
		name := d.TagName(f.Tag)
		desc := d.EnumDescription(f.Tag, value)

		sb.WriteString(fmt.Sprintf("    %s%4d%s (%s%s%s): %s%s%s",
			ColourTag, f.Tag, ColourReset,
			ColourName, name, ColourReset,
			ColourValue, value, ColourReset,
		))

		if desc != "" {
			sb.WriteString(fmt.Sprintf(" (%s%s%s)", ColourEnum, desc, ColourReset))
		}

		sb.WriteString("\n")
	}

	return sb.String()
}
