package ui

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Per-calculator guide content, authored as markdown and rendered
// server-side onto each calculator page.
var guides = map[string]string{
	"descriptive": `## Descriptive statistics

Paste up to 100 numbers separated by spaces or commas. The calculator
reports the five-number summary, the sample variance (n−1 denominator),
and the IQR outlier fences at **Q1 − 1.5·IQR** and **Q3 + 1.5·IQR**.
Quartiles use linear interpolation at index p·(n−1).

Add a lower class boundary and class width to build a frequency table;
values outside the range clip into the first or last class.`,

	"binomial": `## Binomial distribution

For *n* independent trials with success probability *p*, the calculator
answers **exact**, **at most** and **at least** queries. At-least is
computed as 1 − CDF(x−1). Mean is *np* and variance is *np(1−p)*.`,

	"poisson": `## Poisson distribution

For events arriving at average rate λ, the calculator answers the same
three query modes. Mean and variance both equal λ; a rate of zero or
less yields a zero-probability result by definition.`,

	"normal": `## Normal distribution

Choose a region — left tail, right tail, between, outside — or invert a
cumulative probability back to a value. Every bound is also reported as
a z-score, z = (x−μ)/σ.`,

	"hypothesis": `## Hypothesis testing

One-sample tests for a **proportion** or a **mean**. Mean tests use the
z distribution when the population σ is known and Student's t with
n−1 degrees of freedom otherwise. The decision compares the test
statistic against the critical value; the reported p-value gives the
same decision against α.`,

	"probability": `## Probability tools

Counting rules (factorials, combinations, permutations, with or without
replacement), two-event probability algebra with an optional
mutual-exclusivity assumption, and a dice simulator that tracks the
empirical face frequencies over its last 100 rolls.`,
}

// renderGuide converts a calculator's markdown guide to HTML. Unknown
// kinds render empty.
func renderGuide(kind string) template.HTML {
	source, ok := guides[kind]
	if !ok {
		return ""
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	rendered := markdown.ToHTML([]byte(source), p, renderer)

	return template.HTML(rendered)
}
