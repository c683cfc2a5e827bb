package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/drip/glance"
	md "github.com/nao1215/markdown"
)

// GlanceMarkdown renders the reduced view shown by widgets.
func GlanceMarkdown(v glance.View, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(fmt.Sprintf("Drip on %s", v.On))
	if !v.Available {
		doc.PlainText(md.Italic("No data"))
		return doc.String()
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Left today", "Main savings"},
		Rows:      [][]string{{md.Bold(M(v.RemainingAllowance, currency).String()), M(v.MainSavings, currency).String()}},
	})
	return doc.String()
}
