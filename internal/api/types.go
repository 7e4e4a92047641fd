package api

// HeaderRecord is the JSON view of one decoded upload.
type HeaderRecord struct {
	ID              string `json:"id"`
	Object          string `json:"object"`
	CreatedAt       int64  `json:"created_at"`
	Name            string `json:"name,omitempty"`
	Size            int    `json:"size"`
	Width           uint32 `json:"width"`
	Height          uint32 `json:"height"`
	Pixels          uint64 `json:"pixels"`
	Channels        uint8  `json:"channels"`
	ChannelsLabel   string `json:"channels_label"`
	Colorspace      uint8  `json:"colorspace"`
	ColorspaceLabel string `json:"colorspace_label"`
	Report          string `json:"report"`
}

type HeaderList struct {
	Object string         `json:"object"`
	Data   []HeaderRecord `json:"data"`
}

type DeletedRecord struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

type ErrorBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Value   *uint8 `json:"value,omitempty"`
}

type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
