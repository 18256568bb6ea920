package write

import (
	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// Outbound is the part of the InfluxDB write API used to emit points.
type Outbound interface {
	WritePoint(point *write.Point)
}
