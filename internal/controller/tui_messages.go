package controller

import (
	m "github.com/mouse-blink/selfprint/internal/model"
	"github.com/mouse-blink/selfprint/internal/rawio"
)

// Message types.
type fragmentsMsg struct {
	quine m.Quine
}

// List item types.
type fragmentItem struct {
	table m.TableName
	index int
	text  string
}

func (f fragmentItem) FilterValue() string {
	return f.text
}

func (f fragmentItem) literal() string {
	return `"` + rawio.Escape(f.text) + `"`
}

// fragmentItems lists the stored fragments of both tables in print order.
func fragmentItems(q m.Quine) []fragmentItem {
	items := make([]fragmentItem, 0, len(q.Code.Fragments)+len(q.Rest.Fragments))

	for i, f := range q.Code.Fragments {
		items = append(items, fragmentItem{table: m.TableCode, index: i, text: string(f)})
	}

	for i, f := range q.Rest.Fragments {
		items = append(items, fragmentItem{table: m.TableRest, index: i, text: string(f)})
	}

	return items
}
