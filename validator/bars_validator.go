package validator

import (
	"fmt"
	"strings"

	"stockdock/customerrors"
	"stockdock/model"
	"stockdock/util"

	"github.com/Oudwins/zog"
)

var symbolSchema = zog.String().Required(zog.Message("symbol cannot be null or blank"))

var timeframeSchema = zog.String().
	Required(zog.Message("timeframe cannot be null or blank")).
	OneOf(model.SupportedTimeframes, zog.Message("supported values: "+strings.Join(model.SupportedTimeframes, ", ")))

var dateSchema = zog.String().Required(zog.Message("start and end dates cannot be null or blank"))

// ValidateBarsQuery trims q in place and checks it field by field, returning
// the first failure wrapped in the matching sentinel error.
func ValidateBarsQuery(q *model.BarsQuery) error {
	q.Symbol = strings.ToUpper(strings.TrimSpace(q.Symbol))
	q.Timeframe = strings.TrimSpace(q.Timeframe)
	q.Start = strings.TrimSpace(q.Start)
	q.End = strings.TrimSpace(q.End)

	if issues := symbolSchema.Validate(&q.Symbol); len(issues) > 0 {
		return fmt.Errorf("%s: %w", issues[0].Message, customerrors.ErrInvalidSymbol)
	}
	if issues := timeframeSchema.Validate(&q.Timeframe); len(issues) > 0 {
		return fmt.Errorf("%s: %w", issues[0].Message, customerrors.ErrUnsupportedTimeframe)
	}
	for _, d := range []*string{&q.Start, &q.End} {
		if issues := dateSchema.Validate(d); len(issues) > 0 {
			return fmt.Errorf("%s: %w", issues[0].Message, customerrors.ErrMissingParameter)
		}
	}

	start, err := util.ParseMarketDate(q.Start)
	if err != nil {
		return fmt.Errorf("start: %v: %w", err, customerrors.ErrInvalidDateRange)
	}
	end, err := util.ParseMarketDate(q.End)
	if err != nil {
		return fmt.Errorf("end: %v: %w", err, customerrors.ErrInvalidDateRange)
	}
	if start.After(end) {
		return fmt.Errorf("start %s is after end %s: %w", q.Start, q.End, customerrors.ErrInvalidDateRange)
	}
	return nil
}
