package present

import "github.com/kerlenton/system-eye/internal/metric"

// Modes bundles the per-domain display-mode values a presenter may need to
// consult when deciding whether a metric is visible this frame.
type Modes struct {
	CPU     metric.CPUMode
	GPU     metric.GPUMode
	Swap    metric.ToggleMode
	Network metric.ToggleMode
	Disk    metric.ToggleMode
	Power   metric.PowerMode
	Memory  metric.MemoryMode
}

// SortKey orders rows within a domain's block of the display. Group ranks
// clusters (or device groups) relative to each other; Rank separates a
// group's summary row from its leaf rows; Order breaks ties within a rank.
type SortKey struct {
	Group int
	Rank  int
	Order int
}

// Less reports whether k sorts before other.
func (k SortKey) Less(other SortKey) bool {
	if k.Group != other.Group {
		return k.Group < other.Group
	}
	if k.Rank != other.Rank {
		return k.Rank < other.Rank
	}
	return k.Order < other.Order
}

// RankTotal and RankLeaf are the two standard Rank values presenters use to
// place a group's summary row ahead of its detail rows.
const (
	RankTotal = 0
	RankLeaf  = 1
)

// Row is a display-ready line: a title, the raw value it was derived from,
// its formatted string, nesting depth and sort position. The horizon
// renderer consumes Rows without needing to know about metric domains.
type Row struct {
	Name    metric.Name
	Title   string
	Value   string
	Indent  int
	SortKey SortKey
}

// Presenter turns one metric domain's raw series into display rows.
// Implementations are pure data transforms: they never touch the store or
// the terminal.
type Presenter interface {
	// Domain reports which metric domain this presenter handles.
	Domain() metric.Domain

	// DisplayName returns the row title for name under the given modes, and
	// false when the metric is hidden entirely (e.g. individual cores under
	// by_cluster, VRAM under load_only).
	DisplayName(name metric.Name, modes Modes) (title string, ok bool)

	// Format renders value using scaleMax for context (e.g. bucket choice).
	Format(name metric.Name, value, scaleMax float64) string

	// ScalePolicy returns the renderer's intensity denominator for a series.
	ScalePolicy(name metric.Name, series []float64) float64

	// Indent returns the nesting depth of name's row (e.g. per-core lines
	// indent under their cluster's total line).
	Indent(name metric.Name) int

	// SortKey returns the stable ordering key for name's row.
	SortKey(name metric.Name) SortKey
}

// Registry is the ordered, platform-independent list of presenters: an
// explicit startup-time table rather than decorator-based registration.
func Registry() []Presenter {
	return []Presenter{
		CPUPresenter{},
		MemoryPresenter{},
		SwapPresenter{},
		DiskPresenter{},
		NetworkPresenter{},
		GPUPresenter{},
		PowerPresenter{},
		AccelPresenter{},
	}
}

// ForDomain looks up the presenter registered for a domain, if any.
func ForDomain(reg []Presenter, d metric.Domain) (Presenter, bool) {
	for _, p := range reg {
		if p.Domain() == d {
			return p, true
		}
	}
	return nil, false
}
