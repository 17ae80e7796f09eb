package telemetry

// Tracer and span names used for instrumentation.
const (
	TracerName = "github.com/usvmap/usvmap"

	SpanDatasetBuild = "dataset.build"
	SpanRecordsLoad  = "records.load"
	SpanResolve      = "resolver.resolve"
	SpanGeocode      = "resolver.geocode"
	SpanJitter       = "layout.jitter"
)

// Span attribute keys.
const (
	AttrCountry  = "usv.country"
	AttrProvider = "usv.geocoder"
	AttrRecords  = "usv.records"
	AttrDropped  = "usv.dropped"
	AttrEncoding = "usv.encoding"
	AttrDataset  = "usv.dataset.path"
)
