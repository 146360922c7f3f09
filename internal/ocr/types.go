package ocr

// Box is one positioned text fragment reported by the OCR engine.
// Coordinates are page-local pixels; Conf is the engine's 0-100 word
// confidence, or -1 when the engine did not report one.
type Box struct {
	Text   string `json:"text"`
	Page   int    `json:"page"`
	Left   int    `json:"left"`
	Top    int    `json:"top"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Conf   int    `json:"conf"`
}

// RawText is the pipeline input: the full extracted text plus optional
// bounding boxes in reading order. Boxes are a hint, not a guarantee;
// the text alone must be enough to drive extraction.
type RawText struct {
	Text  string
	Boxes []Box
}
