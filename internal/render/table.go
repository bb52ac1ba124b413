package render

import (
	"fmt"

	"github.com/evoterm/gamescape/internal/dynamics"
)

// PayoffTable renders the matrix as a Cooperate/Defect table from
// the focal player's point of view.
func PayoffTable(m dynamics.PayoffMatrix, st Styles) string {
	header := fmt.Sprintf("%12s%12s%12s", "", "Cooperate", "Defect")
	rowC := fmt.Sprintf("%12s%s%s", "Cooperate",
		st.Stable.Render(fmt.Sprintf("%12.1f", m.A)),
		st.Unstable.Render(fmt.Sprintf("%12.1f", m.B)))
	rowD := fmt.Sprintf("%12s%s%s", "Defect",
		st.Left.Render(fmt.Sprintf("%12.1f", m.C)),
		st.Right.Render(fmt.Sprintf("%12.1f", m.D)))
	return "  " + header + "\n  " + rowC + "\n  " + rowD
}
