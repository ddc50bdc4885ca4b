package alloc

import (
	"github.com/golang/protobuf/proto"
	prom "github.com/prometheus/client_model/go"
)

// Metrics reports the pool state as gauge families named <prefix>_used,
// <prefix>_free and <prefix>_fragments.
func (p *Pool) Metrics(prefix string) []*prom.MetricFamily {
	return []*prom.MetricFamily{
		gauge(prefix+"_used", "Number of ids currently allocated.", float64(p.used)),
		gauge(prefix+"_free", "Number of ids available for allocation.", float64(p.Free())),
		gauge(prefix+"_fragments", "Number of free id ranges.", float64(len(p.free))),
	}
}

func gauge(name, help string, v float64) *prom.MetricFamily {
	return &prom.MetricFamily{
		Name: proto.String(name),
		Help: proto.String(help),
		Type: prom.MetricType_GAUGE.Enum(),
		Metric: []*prom.Metric{{
			Gauge: &prom.Gauge{Value: proto.Float64(v)},
		}},
	}
}
