// Package terminal renders the lookup flows to a text output.
package terminal

import (
	"fmt"
	"io"

	"github.com/qdm12/gotree"
	"github.com/qdm12/ip-locator/internal/view"
)

type Display struct {
	writer io.Writer
}

func New(writer io.Writer) *Display {
	return &Display{writer: writer}
}

func (d *Display) ShowStatus(message string) {
	fmt.Fprintln(d.writer, message)
}

func (d *Display) HideStatus() {}

func (d *Display) ShowError(message string) {
	fmt.Fprintln(d.writer, "Error: "+message)
}

func (d *Display) ClearError() {}

func (d *Display) Render(viewModel view.ViewModel) {
	fmt.Fprintln(d.writer, toLinesNode(viewModel).String())
}

func toLinesNode(viewModel view.ViewModel) *gotree.Node {
	node := gotree.New("IP address %s", viewModel.IP)
	fields := []struct {
		name  string
		value string
	}{
		{name: "Version", value: viewModel.Version},
		{name: "ISP", value: viewModel.ISP},
		{name: "Organization", value: viewModel.Org},
		{name: "ASN", value: viewModel.ASN},
		{name: "Country", value: viewModel.Country},
		{name: "Region", value: viewModel.Region},
		{name: "City", value: viewModel.City},
		{name: "Postal", value: viewModel.Postal},
		{name: "Latitude", value: viewModel.Latitude},
		{name: "Longitude", value: viewModel.Longitude},
		{name: "Timezone", value: viewModel.Timezone},
		{name: "UTC offset", value: viewModel.UTCOffset},
	}
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		node.Appendf("%s: %s", field.name, field.value)
	}
	if viewModel.ShowMap {
		node.Appendf("Map: %s", viewModel.MapLink)
	}
	return node
}
