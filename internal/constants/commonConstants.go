package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixRankedPairings CachePrefix = "RANKED_"
	CachePrefixSchedules      CachePrefix = "SCHEDULES_"
	CachePrefixShareToken     CachePrefix = "SHARE_JTI_"
)

// DisplayRankedLimit caps how many ranked pairings a single response
// carries; the presentation layer truncates further as it sees fit.
const DisplayRankedLimit = 100

// AssistantSampleLimit caps how many ranked pairings are serialized into
// the assistant prompt payload.
const AssistantSampleLimit = 30
