package validation

import (
	"strconv"
	"strings"

	"github.com/venturelens/venturelens/internal/models"
)

// currencyKeys are known monetary metrics that arrive as formatted strings
// from spreadsheet exports ("$1,500,000"). Keys with a _usd suffix are
// treated the same way.
var currencyKeys = map[string]bool{
	"current_mrr": true,
}

// SanitizeMetrics normalizes monetary string values to floats, returning a
// new metric set. Unparseable or empty currency strings become nil so the
// schema flags them instead of a misleading zero flowing into the model.
func SanitizeMetrics(m models.MetricSet) models.MetricSet {
	clean := make(models.MetricSet, len(m))
	for k, v := range m {
		if currencyKeys[k] || strings.HasSuffix(k, "_usd") {
			clean[k] = normalizeCurrency(v)
			continue
		}
		clean[k] = v
	}
	return clean
}

func normalizeCurrency(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	s = strings.TrimSpace(strings.NewReplacer("$", "", ",", "").Replace(s))
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return f
}
