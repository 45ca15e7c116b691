package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/matzehuels/tianzige/pkg/errors"
	"github.com/matzehuels/tianzige/pkg/layout"
)

// FormatError renders err for the terminal, with a hint when one applies.
func FormatError(err error) string {
	msg := styleIconError.Render(iconError) + " " + errors.UserMessage(err)

	var mbe *layout.MinimumBoxesError
	if stderrors.As(err, &mbe) {
		msg = styleIconError.Render(iconError) + " " + mbe.Error()
		msg += "\n  " + StyleDim.Render(fmt.Sprintf("try: --size %s", formatSize(mbe.MaxSquareSize)))
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidPageSize:
		msg += "\n  " + StyleDim.Render("run 'tianzige generate --help' for the list of page sizes")
	case errors.ErrCodeInvalidColor:
		msg += "\n  " + StyleDim.Render("colors are six hex digits, e.g. #808080")
	}
	return msg
}

// formatSize rounds a suggested square size down to 0.1mm so that it
// still satisfies the minimums.
func formatSize(mm float64) string {
	return fmt.Sprintf("%.1f", float64(int(mm*10))/10)
}
