package reporting

import (
	"fmt"
	"strings"

	"lending-rate-lab/internal/domain"
)

// timestampFormat is the naive-clock layout used in rendered tables.
const timestampFormat = "2006-01-02 15:04:05"

// RenderCSV renders a finalized equity curve as a CSV string. Token value
// columns appear in the given order between fee and total.
func RenderCSV(curve []domain.EquityPoint, tokens []string) string {
	var sb strings.Builder

	// Header
	sb.WriteString("date,cash,fee")
	for _, token := range tokens {
		sb.WriteString(",")
		sb.WriteString(token)
	}
	sb.WriteString(",total,returns,equity_curve\n")

	// Rows
	for _, p := range curve {
		sb.WriteString(p.Datetime.Format(timestampFormat))
		sb.WriteString(fmt.Sprintf(",%.6f,%.6f", p.Cash, p.Fee))
		for _, token := range tokens {
			sb.WriteString(fmt.Sprintf(",%.6f", p.Values[token]))
		}
		sb.WriteString(fmt.Sprintf(",%.6f,%.8f,%.8f\n", p.Total, p.Returns, p.EquityCurve))
	}

	return sb.String()
}
