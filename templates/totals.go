package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// TotalsFragment renders the cost breakdown table swapped into the edit
// page whenever a totals-changed event fires.
func TotalsFragment(data TotalsData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="totals"><h2>Quote Totals</h2>`); err != nil {
			return err
		}

		if len(data.Lines) == 0 {
			if _, err := io.WriteString(w, `<p class="empty-state">Nothing priced yet.</p></div>`); err != nil {
				return err
			}
			return nil
		}

		if _, err := io.WriteString(w,
			`<table class="data-table"><thead><tr><th>Category</th><th>Details</th><th>Amount</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, line := range data.Lines {
			if _, err := io.WriteString(w,
				`<tr><td>`+templ.EscapeString(line.Category)+`</td>`+
					`<td>`+templ.EscapeString(line.Details)+`</td>`+
					`<td class="amount">`+templ.EscapeString(line.Amount)+`</td></tr>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tbody><tfoot>`); err != nil {
			return err
		}

		if _, err := io.WriteString(w,
			`<tr><td colspan="2">Subtotal</td><td class="amount">`+templ.EscapeString(data.Subtotal)+`</td></tr>`); err != nil {
			return err
		}
		if data.HasModifier {
			if _, err := io.WriteString(w,
				`<tr><td colspan="2">Adjustment (`+templ.EscapeString(data.ModifierPercent)+`%)</td>`+
					`<td class="amount">`+templ.EscapeString(data.Adjustment)+`</td></tr>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w,
			`<tr class="grand-total"><td colspan="2">Grand Total</td><td class="amount">`+
				templ.EscapeString(data.GrandTotal)+`</td></tr>`); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</tfoot></table></div>`)
		return err
	})
}
