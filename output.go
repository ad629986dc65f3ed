package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/llehouerou/dataslider/internal/errmsg"
	"github.com/llehouerou/dataslider/internal/interaction"
	"github.com/llehouerou/dataslider/internal/ui/slider"
)

// result is what the command prints on exit.
type result struct {
	Value float64 `json:"value"`
	Text  string  `json:"text"`
	Tick  string  `json:"tick,omitempty"`
}

func newResult(c *interaction.Controller) result {
	r := result{
		Value: c.Value(),
		Text:  slider.FormatValue(c.Value(), c.Transform().Range().Decimals),
	}
	if i := c.Selected(); i >= 0 && i < len(c.Labels()) {
		r.Tick = c.Labels()[i].Label
	}
	return r
}

// writeResult prints the formatted value, or the whole result as one line
// of JSON.
func writeResult(w io.Writer, r result, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprintln(w, r.Text)
		return err
	}
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpEncode, err)
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
