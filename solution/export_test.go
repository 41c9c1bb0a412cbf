package solution

// SegmentCrossAt exposes segmentCross with a fixed segment for tests.
var SegmentCrossAt = segmentCross
