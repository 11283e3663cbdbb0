package domain

import "fmt"

type SegmentLabel struct {
	ID   int    `json:"id"`
	Icon string `json:"icon"`
	Name string `json:"name"`
}

func (l SegmentLabel) String() string {
	if l.Icon == "" {
		return l.Name
	}
	return fmt.Sprintf("%s %s", l.Icon, l.Name)
}

var segmentLabels = [...]SegmentLabel{
	{ID: 0, Icon: "🧊", Name: "Low-Value"},
	{ID: 1, Icon: "🔥", Name: "High-Value"},
	{ID: 2, Icon: "⏳", Name: "At Risk"},
	{ID: 3, Icon: "🆕", Name: "New Customers"},
	{ID: 4, Icon: "🧪", Name: "Others"},
}

// UnknownSegment is returned by LabelFor for ids outside the table.
const UnknownSegment = "Unknown Segment"

// LabelFor maps a cluster id to its display label.
func LabelFor(id int) SegmentLabel {
	if id >= 0 && id < len(segmentLabels) {
		return segmentLabels[id]
	}
	return SegmentLabel{ID: id, Name: UnknownSegment}
}

// SegmentLabels returns a copy of the label table in id order.
func SegmentLabels() []SegmentLabel {
	out := make([]SegmentLabel, len(segmentLabels))
	copy(out, segmentLabels[:])
	return out
}

// SegmentResult is what the dashboard shows after a successful prediction.
type SegmentResult struct {
	Segment int
	Label   SegmentLabel
}

func (r SegmentResult) Message() string {
	return fmt.Sprintf("Predicted Segment: %s (Cluster %d)", r.Label, r.Segment)
}
