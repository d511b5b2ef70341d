package config

import (
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Metrics struct {
	Enabled *bool
}

func (m *Metrics) setDefaults() {
	m.Enabled = gosettings.DefaultPointer(m.Enabled, true)
}

func (m Metrics) Validate() (err error) {
	return nil
}

func (m Metrics) String() string {
	return m.toLinesNode().String()
}

func (m Metrics) toLinesNode() *gotree.Node {
	if !*m.Enabled {
		return gotree.New("Metrics: disabled")
	}
	node := gotree.New("Metrics")
	node.Appendf("Path: /metrics")
	return node
}

func (m *Metrics) read(r *reader.Reader) (err error) {
	m.Enabled, err = r.BoolPtr("METRICS_ENABLED")
	return err
}
