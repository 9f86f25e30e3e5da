package models

// RawRecord is one JSON object returned by the museum's object endpoint:
// one artifact plus its nested color breakdown. Only the fields the
// pipeline consumes are mapped; everything else in the payload is ignored.
type RawRecord struct {
	ID              *int       `json:"id"`
	Title           *string    `json:"title"`
	Culture         *string    `json:"culture"`
	Period          *string    `json:"period"`
	Century         *string    `json:"century"`
	Medium          *string    `json:"medium"`
	Dimensions      *string    `json:"dimensions"`
	Description     *string    `json:"description"`
	Department      *string    `json:"department"`
	Classification  *string    `json:"classification"`
	AccessionYear   *int       `json:"accessionyear"`
	AccessionMethod *string    `json:"accessionmethod"`
	ImageCount      *int       `json:"imagecount"`
	MediaCount      *int       `json:"mediacount"`
	ColorCount      *int       `json:"colorcount"`
	Rank            *int       `json:"rank"`
	DateBegin       *int       `json:"datebegin"`
	DateEnd         *int       `json:"dateend"`
	Colors          []RawColor `json:"colors"`
}

// RawColor is one entry of a record's color sub-list.
type RawColor struct {
	Color    *string  `json:"color"`
	Spectrum *string  `json:"spectrum"`
	Hue      *string  `json:"hue"`
	Percent  *float64 `json:"percent"`
	CSS3     *string  `json:"css3"`
}
